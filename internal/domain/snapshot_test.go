package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestSnapshot() *Snapshot {
	zorglub := NewParticipant("1", "zorglub")
	fred := NewParticipant("2", "fred")
	fred.Weight = decimal.NewFromInt(2)
	tata := NewParticipant("3", "tata")
	tata.Active = false
	pepe := NewParticipant("4", "pépé")

	return &Snapshot{
		ProjectID:    "raclette",
		Name:         "raclette",
		Participants: []*Participant{zorglub, fred, tata, pepe},
		Bills: []*Bill{
			{ID: "b1", PayerID: "1", OwerIDs: []string{"1", "2"}, Amount: decimal.NewFromInt(10)},
			{ID: "b2", PayerID: "2", OwerIDs: []string{"3"}, Amount: decimal.NewFromInt(20)},
		},
	}
}

func TestSnapshot_ActiveParticipants(t *testing.T) {
	s := newTestSnapshot()

	active := s.ActiveParticipants()
	if len(active) != 3 {
		t.Fatalf("expected 3 active participants, got %d", len(active))
	}

	for _, p := range active {
		if p.ID == "3" {
			t.Fatal("inactive participant returned as active")
		}
	}
}

func TestSnapshot_UsesWeights(t *testing.T) {
	s := newTestSnapshot()
	if !s.UsesWeights() {
		t.Fatal("expected weighted project")
	}

	s.Participants[1].Weight = DefaultWeight
	if s.UsesWeights() {
		t.Fatal("expected unweighted project")
	}
}

func TestSnapshot_RemovalAction(t *testing.T) {
	s := newTestSnapshot()

	tests := []struct {
		id     string
		expect RemovalAction
	}{
		{"1", RemovalDeactivate},
		{"3", RemovalDeactivate},
		{"4", RemovalDelete},
	}

	for _, tt := range tests {
		got, err := s.RemovalAction(tt.id)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.id, err)
		}
		if got != tt.expect {
			t.Errorf("participant %s: expected %s, got %s", tt.id, tt.expect, got)
		}
	}

	if _, err := s.RemovalAction("missing"); !errors.Is(err, ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}
}

func TestSnapshot_Validate(t *testing.T) {
	t.Run("valid snapshot", func(t *testing.T) {
		if err := newTestSnapshot().Validate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("duplicate participant", func(t *testing.T) {
		s := newTestSnapshot()
		s.Participants = append(s.Participants, NewParticipant("1", "again"))
		if err := s.Validate(); !errors.Is(err, ErrDuplicateParticipant) {
			t.Fatalf("expected ErrDuplicateParticipant, got %v", err)
		}
	})

	t.Run("non positive weight", func(t *testing.T) {
		s := newTestSnapshot()
		s.Participants[0].Weight = decimal.NewFromInt(-1)
		if err := s.Validate(); !errors.Is(err, ErrInvalidWeight) {
			t.Fatalf("expected ErrInvalidWeight, got %v", err)
		}
	})

	t.Run("unknown payer", func(t *testing.T) {
		s := newTestSnapshot()
		s.Bills[0].PayerID = "ghost"
		if err := s.Validate(); !errors.Is(err, ErrUnknownPayer) {
			t.Fatalf("expected ErrUnknownPayer, got %v", err)
		}
	})

	t.Run("unknown ower", func(t *testing.T) {
		s := newTestSnapshot()
		s.Bills[1].OwerIDs = []string{"ghost"}
		if err := s.Validate(); !errors.Is(err, ErrUnknownOwer) {
			t.Fatalf("expected ErrUnknownOwer, got %v", err)
		}
	})

	t.Run("repeated ower", func(t *testing.T) {
		s := newTestSnapshot()
		s.Bills[0].OwerIDs = []string{"1", "2", "2"}
		if err := s.Validate(); !errors.Is(err, ErrDuplicateOwer) {
			t.Fatalf("expected ErrDuplicateOwer, got %v", err)
		}
	})

	t.Run("duplicate bill", func(t *testing.T) {
		s := newTestSnapshot()
		s.Bills[1].ID = "b1"
		if err := s.Validate(); !errors.Is(err, ErrDuplicateBill) {
			t.Fatalf("expected ErrDuplicateBill, got %v", err)
		}
	})

	t.Run("bill without owers is valid", func(t *testing.T) {
		s := newTestSnapshot()
		s.Bills[1].OwerIDs = nil
		if err := s.Validate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}
