package domain

import "github.com/shopspring/decimal"

// DefaultWeight is the share multiplier of a participant created without one.
var DefaultWeight = decimal.NewFromInt(1)

// Participant is a member of a project who can pay bills and owe shares.
type Participant struct {
	ID     string
	Name   string
	Weight decimal.Decimal
	Active bool
}

// NewParticipant creates an active participant with the default weight.
func NewParticipant(id, name string) *Participant {
	return &Participant{
		ID:     id,
		Name:   name,
		Weight: DefaultWeight,
		Active: true,
	}
}

// Validate checks the participant name and weight.
func (p *Participant) Validate() error {
	if err := ValidateParticipantName(p.Name); err != nil {
		return err
	}
	return ValidateWeight(p.Weight)
}

// IsWeighted reports whether the participant's weight differs from the default.
func (p *Participant) IsWeighted() bool {
	return !p.Weight.Equal(DefaultWeight)
}

// WeightsByID returns a participant id to weight lookup.
func WeightsByID(participants []*Participant) map[string]decimal.Decimal {
	weights := make(map[string]decimal.Decimal, len(participants))
	for _, p := range participants {
		weights[p.ID] = p.Weight
	}
	return weights
}
