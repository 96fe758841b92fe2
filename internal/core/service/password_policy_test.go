package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fancyapps/users-service/internal/core/domain"
)

func TestAcceptable(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"digit and symbol, length 7", "abc123!", true},
		{"no digit no symbol", "abcdefg", false},
		{"digit but no symbol", "abc1234", false},
		{"symbol but no digit", "abcdef!", false},
		{"too short", "a1!", false},
		{"too long", strings.Repeat("a", 14) + "1!@", false},
		{"max length ok", strings.Repeat("a", 14) + "1!", true},
		{"min length ok", "abcd1!", true},
		{"disallowed character", "abc123!?", false},
		{"space not allowed", "abc 123!", false},
		{"all required classes mixed", "A9$zzzz", true},
		{"symbols only from set", "12345(", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Acceptable(tc.password); got != tc.want {
				t.Fatalf("Acceptable(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}

func TestPasswordPolicy_Enforced(t *testing.T) {
	policy := NewPasswordPolicy(true, zerolog.Nop())

	if err := policy.Check("abc123!"); err != nil {
		t.Fatalf("strong password rejected: %v", err)
	}
	if err := policy.Check("abcdefg"); !errors.Is(err, domain.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestPasswordPolicy_Disabled(t *testing.T) {
	policy := NewPasswordPolicy(false, zerolog.Nop())

	// A weak password passes with enforcement off; it is only logged.
	if err := policy.Check("abcdefg"); err != nil {
		t.Fatalf("expected weak password accepted when policy disabled, got %v", err)
	}
}
