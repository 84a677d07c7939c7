package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name        string
		owerID      string
		receiverID  string
		amount      decimal.Decimal
		expectError error
	}{
		{
			name:        "valid transaction",
			owerID:      "fred",
			receiverID:  "zorglub",
			amount:      decimal.NewFromInt(6),
			expectError: nil,
		},
		{
			name:        "same participant",
			owerID:      "fred",
			receiverID:  "fred",
			amount:      decimal.NewFromInt(6),
			expectError: ErrSameParticipant,
		},
		{
			name:        "zero amount",
			owerID:      "fred",
			receiverID:  "zorglub",
			amount:      decimal.Zero,
			expectError: ErrInvalidAmount,
		},
		{
			name:        "negative amount",
			owerID:      "fred",
			receiverID:  "zorglub",
			amount:      decimal.NewFromInt(-6),
			expectError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &Transaction{
				OwerID:     tt.owerID,
				ReceiverID: tt.receiverID,
				Amount:     tt.amount,
			}

			err := tx.Validate()
			if err != tt.expectError {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestTransaction_IsDust(t *testing.T) {
	dust := &Transaction{OwerID: "a", ReceiverID: "b", Amount: decimal.RequireFromString("0.0033333333")}
	if !dust.IsDust(DisplayPlaces) {
		t.Fatal("expected 0.0033 to round to zero")
	}

	cent := &Transaction{OwerID: "a", ReceiverID: "b", Amount: decimal.RequireFromString("0.006")}
	if cent.IsDust(DisplayPlaces) {
		t.Fatal("expected 0.006 to round to one cent")
	}
}

func TestApplyTransactions(t *testing.T) {
	result := ApplyTransactions([]Transaction{
		{OwerID: "c", ReceiverID: "a", Amount: decimal.NewFromInt(10)},
		{OwerID: "d", ReceiverID: "a", Amount: decimal.NewFromInt(5)},
		{OwerID: "d", ReceiverID: "b", Amount: decimal.NewFromInt(1)},
	})

	expected := map[string]decimal.Decimal{
		"a": decimal.NewFromInt(15),
		"b": decimal.NewFromInt(1),
		"c": decimal.NewFromInt(-10),
		"d": decimal.NewFromInt(-6),
	}

	for id, want := range expected {
		if !result[id].Equal(want) {
			t.Errorf("participant %s: expected %s, got %s", id, want, result[id])
		}
	}
}
