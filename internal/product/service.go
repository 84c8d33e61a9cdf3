package product

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"craftlink-be/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheTTL = time.Minute

type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	cache *redis.Client
}

// NewService builds the catalog service. cache may be nil, in which case all
// reads go straight to the repository.
func NewService(repo Repository, cache *redis.Client) Service {
	return &service{repo: repo, cache: cache}
}

func cacheKey(id uuid.UUID) string {
	return "product:" + id.String()
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error) {
	if input.Name == "" || input.Category == "" || input.ArtisanName == "" ||
		input.Price <= 0 || input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: name, category, artisan name, price, and quantity are required", ErrValidation)
	}

	p := &Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		ArtisanName: input.ArtisanName,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Image:       input.Image,
		Currency:    "KES",
	}

	if err := s.repo.Create(ctx, p); err != nil {
		logger.FromCtx(ctx).Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// GetProduct serves reads through the cache when one is configured.
func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey(id)).Result()
		if err == nil {
			var p Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(p); err == nil {
			s.cache.Set(ctx, cacheKey(id), data, cacheTTL)
		}
	}

	return p, nil
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.ArtisanName != nil {
		p.ArtisanName = *input.ArtisanName
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
		}
		p.Price = *input.Price
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
		}
		p.Quantity = *input.Quantity
	}
	if input.Image != nil {
		p.Image = *input.Image
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *service) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache != nil {
		s.cache.Del(ctx, cacheKey(id))
	}
}
