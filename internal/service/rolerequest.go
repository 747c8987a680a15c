package service

import (
	"context"
	"log/slog"
	"time"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	apperrors "github.com/SowvikSuvo/chefbazaar-gateway/internal/errors"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
)

// RoleRequestServiceOptions groups dependencies for RoleRequestService.
type RoleRequestServiceOptions struct {
	Backends ports.BackendProvider
	Roles    *RoleService
	Logger   *slog.Logger
}

// RoleRequestService handles role-upgrade requests: users asking to
// become chefs or admins, and admins deciding those requests.
type RoleRequestService struct {
	backends ports.BackendProvider
	roles    *RoleService
	logger   *slog.Logger
}

// NewRoleRequestService constructs a RoleRequestService.
func NewRoleRequestService(opts RoleRequestServiceOptions) *RoleRequestService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &RoleRequestService{backends: opts.Backends, roles: opts.Roles, logger: logger}
}

// Submit files a role-upgrade request for the session user.
// Requests that would not change anything are rejected: chefs cannot
// ask to become chefs again, and admins already hold every capability.
func (s *RoleRequestService) Submit(ctx context.Context, sess *domainauth.Session, reqType model.RequestType) error {
	switch {
	case sess.Role == domainauth.RoleAdmin:
		return apperrors.Conflict("admins cannot request a role change")
	case reqType == model.RequestChef && sess.Role == domainauth.RoleChef:
		return apperrors.Conflict("you are already a chef")
	}

	req := model.RoleRequest{
		UserName:    sess.Name,
		UserEmail:   sess.Email,
		RequestType: reqType,
		Status:      model.RequestPending,
		RequestedAt: time.Now().UTC(),
	}
	return s.backends.For(sess).Requests.Create(ctx, req)
}

// List pages through role-upgrade requests for admin moderation.
func (s *RoleRequestService) List(ctx context.Context, sess *domainauth.Session, q model.ListQuery) ([]model.RoleRequest, int, error) {
	return s.backends.For(sess).Requests.List(ctx, q.Normalize())
}

// Decide accepts or rejects a pending request. On accept the backend
// updates the user's role, so the cached role for the requester is
// invalidated; their next request observes the new role.
func (s *RoleRequestService) Decide(ctx context.Context, sess *domainauth.Session, id string, action model.RequestAction, requesterEmail string) error {
	if id == "" {
		return apperrors.ValidationField("id", "request id is required")
	}

	if err := s.backends.For(sess).Requests.Decide(ctx, id, action); err != nil {
		return err
	}

	if action == model.ActionAccept && s.roles != nil && requesterEmail != "" {
		s.roles.Invalidate(requesterEmail)
	}
	s.logger.Info("role request decided", "request_id", id, "action", action, "by", sess.Email)
	return nil
}
