package service

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/fancyapps/users-service/internal/api/metrics"
	"github.com/fancyapps/users-service/internal/core/domain"
)

const policySymbols = "!@#$%^&*"

// Acceptable is the pure strength predicate: 6 to 16 characters drawn only
// from letters, digits and !@#$%^&*, containing at least one digit and at
// least one of those symbols.
func Acceptable(password string) bool {
	if len(password) < 6 || len(password) > 16 {
		return false
	}
	var hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(policySymbols, r):
			hasSymbol = true
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return hasDigit && hasSymbol
}

// PasswordPolicy gates registration on password strength. With enforcement
// off, weak passwords are accepted with a warning in the log instead of being
// rejected.
type PasswordPolicy struct {
	enforced bool
	logger   zerolog.Logger
}

func NewPasswordPolicy(enforced bool, logger zerolog.Logger) *PasswordPolicy {
	return &PasswordPolicy{enforced: enforced, logger: logger}
}

// Check returns domain.ErrWeakPassword when the password fails the rule and
// enforcement is on. The candidate password itself is never logged.
func (p *PasswordPolicy) Check(password string) error {
	if Acceptable(password) {
		return nil
	}
	if !p.enforced {
		p.logger.Warn().Msg("weak password accepted: policy enforcement is disabled")
		return nil
	}
	metrics.PolicyRejectionsTotal.Inc()
	return domain.ErrWeakPassword
}
