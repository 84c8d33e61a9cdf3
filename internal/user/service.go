package user

import (
	"context"
	"fmt"

	"craftlink-be/internal/logger"
	"craftlink-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the role directory consumed by the order workflow and the
// admin user-management surface.
type Service interface {
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	ListUsersByStatus(ctx context.Context, status Status) ([]*User, error)
	ListDrivers(ctx context.Context) ([]*User, error)
	ListSuppliers(ctx context.Context) ([]*User, error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, status Status) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func isAdminOrSupervisor(role string) bool {
	return role == string(RoleAdmin) || role == string(RoleSupervisor)
}

// GetUser allows admins and supervisors to look up anyone; other actors may
// only look up themselves.
func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	actorID, _ := utils.GetUserIDFromContext(ctx)
	role := utils.GetUserRoleFromContext(ctx)

	if !isAdminOrSupervisor(role) && actorID != id {
		return nil, ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	if !isAdminOrSupervisor(utils.GetUserRoleFromContext(ctx)) {
		return nil, ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *service) ListUsersByStatus(ctx context.Context, status Status) ([]*User, error) {
	if !isAdminOrSupervisor(utils.GetUserRoleFromContext(ctx)) {
		return nil, ErrForbidden
	}
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *service) ListDrivers(ctx context.Context) ([]*User, error) {
	return s.repo.ListActiveByRole(ctx, RoleDriver)
}

func (s *service) ListSuppliers(ctx context.Context) ([]*User, error) {
	return s.repo.ListActiveByRole(ctx, RoleSupplier)
}

func (s *service) UpdateUserStatus(ctx context.Context, id uuid.UUID, status Status) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "UpdateUserStatus"),
		zap.String("target_user_id", id.String()),
		zap.String("status", string(status)),
	)

	if !isAdminOrSupervisor(utils.GetUserRoleFromContext(ctx)) {
		log.Warn("status update denied")
		return nil, ErrForbidden
	}
	if !ValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		log.Error("failed to update user status", zap.Error(err))
		return nil, err
	}

	log.Info("user status updated")
	return s.repo.FindByID(ctx, id)
}
