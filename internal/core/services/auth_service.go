package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/BDF-Tech/BDF-Mobile/internal/apperrors"
	"github.com/BDF-Tech/BDF-Mobile/internal/core/domain"
	portsrepo "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/repositories"
	portssvc "github.com/BDF-Tech/BDF-Mobile/internal/core/ports/services"
	"github.com/BDF-Tech/BDF-Mobile/internal/utils"
)

// authService authenticates portal users against ERP-held credentials.
type authService struct {
	BaseService
	customerRepo portsrepo.CustomerRepository
}

// NewAuthService creates a new auth service.
func NewAuthService(customerRepo portsrepo.CustomerRepository) portssvc.AuthSvc {
	return &authService{customerRepo: customerRepo}
}

var _ portssvc.AuthSvc = (*authService)(nil)

// Login verifies the credentials. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.PortalUser, error) {
	user, err := s.customerRepo.FindPortalUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		s.LogError(ctx, err, "Portal user lookup failed", slog.String("email", email))
		return nil, fmt.Errorf("failed to look up portal user: %w", err)
	}

	if !utils.VerifyPassword(user.PasswordHash, password) {
		s.LogWarn(ctx, "Password check failed", slog.String("email", email))
		return nil, apperrors.ErrUnauthenticated
	}

	if !user.Enabled {
		s.LogWarn(ctx, "Login rejected for disabled account", slog.String("email", email))
		return nil, apperrors.ErrUnauthenticated
	}

	return user, nil
}
