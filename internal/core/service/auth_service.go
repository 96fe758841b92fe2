package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fancyapps/users-service/internal/api/metrics"
	"github.com/fancyapps/users-service/internal/core/domain"
	"github.com/fancyapps/users-service/internal/core/ports"
)

// AuthService orchestrates registration, login and role revalidation over
// the credential store, the password policy, the hasher and the token
// issuer. It holds no mutable state of its own: everything mutable lives in
// the store or in the signed token the caller keeps.
type AuthService struct {
	users    ports.UserRepository
	policy   *PasswordPolicy
	hasher   ports.PasswordHasher
	issuer   ports.TokenIssuer
	throttle ports.LoginThrottle
	audit    ports.AuditLogger
	logger   zerolog.Logger
}

// NewAuthService wires the auth core. throttle may be nil when no rate
// limiting backend is configured.
func NewAuthService(
	users ports.UserRepository,
	policy *PasswordPolicy,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	throttle ports.LoginThrottle,
	audit ports.AuditLogger,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		policy:   policy,
		hasher:   hasher,
		issuer:   issuer,
		throttle: throttle,
		audit:    audit,
		logger:   logger,
	}
}

// Register creates a new CLIENT account. The role is fixed server-side so a
// caller cannot self-escalate at registration.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrEmailExists
	}

	if err := s.policy.Check(password); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleClient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The store's unique email index is what makes this race-safe: a
	// concurrent duplicate surfaces here as ErrEmailExists.
	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		}
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.audit.Record(ports.AuditEvent{
		Action: "user.registered",
		UserID: created.ID,
		Email:  created.Email,
	})
	return created.Public(), nil
}

// Login verifies credentials and issues a signed access token embedding
// {sub, role}. An unknown email surfaces as ErrUserNotFound and a bad
// password as ErrInvalidCredentials, matching the upstream contract even
// though it lets callers tell the two apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if s.throttle != nil {
		allowed, err := s.throttle.Allowed(ctx, email)
		if err != nil {
			// Fail open: a throttle backend outage must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if !allowed {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("unknown_email").Inc()
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		if s.throttle != nil {
			if err := s.throttle.RecordFailure(ctx, email); err != nil {
				s.logger.Warn().Err(err).Msg("failed to record login failure")
			}
		}
		s.audit.Record(ports.AuditEvent{
			Action: "user.login_failed",
			UserID: user.ID,
			Email:  email,
		})
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Sign(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.audit.Record(ports.AuditEvent{
		Action: "user.logged_in",
		UserID: user.ID,
		Email:  email,
	})
	return token, nil
}

// ValidateRoleClaim re-checks a token's embedded role against the current
// record. A mismatch means the role was changed after the token was issued;
// the returned error names both roles for the audit sink.
func (s *AuthService) ValidateRoleClaim(ctx context.Context, userID, claimedRole string) (*domain.PublicUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role != claimedRole {
		metrics.RoleRevalidationsTotal.WithLabelValues("stale").Inc()
		s.audit.Record(ports.AuditEvent{
			Action: "user.stale_role",
			UserID: user.ID,
			Email:  user.Email,
			Detail: fmt.Sprintf("token role %q, current role %q", claimedRole, user.Role),
		})
		return nil, fmt.Errorf("%w: user %s presented role %q but current role is %q",
			domain.ErrStaleRole, user.ID, claimedRole, user.Role)
	}

	metrics.RoleRevalidationsTotal.WithLabelValues("ok").Inc()
	return user.Public(), nil
}
