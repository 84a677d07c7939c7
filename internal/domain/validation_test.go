package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateParticipantName(t *testing.T) {
	t.Parallel()

	t.Run("valid name", func(t *testing.T) {
		if err := ValidateParticipantName("zorglub"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		err := ValidateParticipantName("   ")
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("name too long", func(t *testing.T) {
		tooLong := strings.Repeat("a", MaxParticipantNameLength+1)
		err := ValidateParticipantName(tooLong)
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})
}

func TestValidateWeight(t *testing.T) {
	t.Parallel()

	if err := ValidateWeight(decimal.RequireFromString("0.5")); err != nil {
		t.Fatalf("expected fractional weight to be valid, got %v", err)
	}

	if err := ValidateWeight(decimal.Zero); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight for zero, got %v", err)
	}

	if err := ValidateWeight(decimal.NewFromInt(-1)); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight for negative, got %v", err)
	}
}
