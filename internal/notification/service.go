package notification

import (
	"context"
	"fmt"

	"craftlink-be/internal/events"
	"craftlink-be/internal/logger"
	"craftlink-be/internal/user"
	"craftlink-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultListLimit = 50

type Service interface {
	Send(ctx context.Context, input SendInput) (*Notification, error)
	ListForUser(ctx context.Context, limit int, unreadOnly bool) ([]*Notification, error)
	ListAll(ctx context.Context, limit int) ([]*Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*Notification, error)
	MarkAllRead(ctx context.Context) error
}

type service struct {
	repo      Repository
	publisher events.Publisher
}

func NewService(repo Repository, publisher events.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

func (s *service) Send(ctx context.Context, input SendInput) (*Notification, error) {
	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if input.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}
	if input.Category == "" {
		input.Category = "general"
	}

	n := &Notification{
		ID:       uuid.New(),
		UserID:   input.UserID,
		Title:    input.Title,
		Message:  input.Message,
		Category: input.Category,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, "notification.sent", n); err != nil {
			logger.FromCtx(ctx).Warn("failed to publish notification event", zap.Error(err))
		}
	}
	return n, nil
}

func (s *service) ListForUser(ctx context.Context, limit int, unreadOnly bool) ([]*Notification, error) {
	actorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrForbidden
	}
	if limit <= 0 || limit > 200 {
		limit = defaultListLimit
	}
	return s.repo.ListByUser(ctx, actorID, limit, unreadOnly)
}

func (s *service) ListAll(ctx context.Context, limit int) ([]*Notification, error) {
	role := utils.GetUserRoleFromContext(ctx)
	if role != string(user.RoleAdmin) && role != string(user.RoleSupervisor) {
		return nil, fmt.Errorf("%w: admin only", ErrForbidden)
	}
	if limit <= 0 || limit > 200 {
		limit = defaultListLimit
	}
	return s.repo.ListAll(ctx, limit)
}

func (s *service) MarkRead(ctx context.Context, id uuid.UUID) (*Notification, error) {
	actorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrForbidden
	}

	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.UserID != actorID {
		return nil, fmt.Errorf("%w: notification belongs to another user", ErrForbidden)
	}

	if err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	n.Read = true
	return n, nil
}

func (s *service) MarkAllRead(ctx context.Context) error {
	actorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrForbidden
	}
	return s.repo.MarkAllRead(ctx, actorID)
}
