package service

import (
	"context"
	"log/slog"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	apperrors "github.com/SowvikSuvo/chefbazaar-gateway/internal/errors"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
)

// UserAdminServiceOptions groups dependencies for UserAdminService.
type UserAdminServiceOptions struct {
	Backends ports.BackendProvider
	Roles    *RoleService
	Logger   *slog.Logger
}

// UserAdminService serves the admin user directory: listing accounts
// and flagging fraudulent ones.
type UserAdminService struct {
	backends ports.BackendProvider
	roles    *RoleService
	logger   *slog.Logger
}

// NewUserAdminService constructs a UserAdminService.
func NewUserAdminService(opts UserAdminServiceOptions) *UserAdminService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &UserAdminService{backends: opts.Backends, roles: opts.Roles, logger: logger}
}

// List pages through marketplace users.
func (s *UserAdminService) List(ctx context.Context, sess *domainauth.Session, q model.ListQuery) ([]model.User, int, error) {
	return s.backends.For(sess).Users.List(ctx, q.Normalize())
}

// Profile fetches the session user's own profile record.
func (s *UserAdminService) Profile(ctx context.Context, sess *domainauth.Session) (model.User, error) {
	return s.backends.For(sess).Users.Profile(ctx, sess.Email)
}

// MarkFraud flags a user account as fraudulent. Admin accounts cannot
// be flagged, and flagging an already-fraud account is a conflict.
// A fraud-flagged chef's meals are hidden by the backend; the cached
// role for the account is invalidated so their session loses chef
// capabilities on the next check.
func (s *UserAdminService) MarkFraud(ctx context.Context, sess *domainauth.Session, email string) error {
	if email == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if email == sess.Email {
		return apperrors.Conflict("cannot flag your own account")
	}

	backend := s.backends.For(sess)
	target, err := backend.Users.Profile(ctx, email)
	if err != nil {
		return err
	}
	if domainauth.ParseRole(target.Role) == domainauth.RoleAdmin {
		return apperrors.Conflict("admin accounts cannot be flagged as fraud")
	}
	if target.Status == model.UserFraud {
		return apperrors.Conflictf("user %s is already flagged as fraud", email)
	}

	if markErr := backend.Users.MarkFraud(ctx, email); markErr != nil {
		return markErr
	}

	if s.roles != nil {
		s.roles.Invalidate(email)
	}
	s.logger.Info("user flagged as fraud", "email", email, "by", sess.Email)
	return nil
}
