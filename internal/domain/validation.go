package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxParticipantNameLength = 255
	MinParticipantNameLength = 1
)

// ValidateParticipantName validates participant display name
func ValidateParticipantName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinParticipantNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > MaxParticipantNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxParticipantNameLength)
	}

	return nil
}

// ValidateWeight validates a participant share weight
func ValidateWeight(weight decimal.Decimal) error {
	if weight.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: got %s", ErrInvalidWeight, weight.String())
	}

	return nil
}
