package domain

import "fmt"

// RemovalAction is what happens to a participant removed from a project.
type RemovalAction string

const (
	// RemovalDelete drops a participant no bill refers to.
	RemovalDelete RemovalAction = "delete"
	// RemovalDeactivate keeps a participant referenced by bills but hides
	// them from new bills.
	RemovalDeactivate RemovalAction = "deactivate"
)

// Snapshot is a consistent read of one project's participants and bills.
type Snapshot struct {
	ProjectID    string
	Name         string
	Participants []*Participant
	Bills        []*Bill
}

// Participant returns the participant with the given id.
func (s *Snapshot) Participant(id string) (*Participant, error) {
	for _, p := range s.Participants {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrParticipantNotFound, id)
}

// ActiveParticipants returns participants that can be added to new bills.
func (s *Snapshot) ActiveParticipants() []*Participant {
	active := make([]*Participant, 0, len(s.Participants))
	for _, p := range s.Participants {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// UsesWeights reports whether any participant has a non-default weight.
func (s *Snapshot) UsesWeights() bool {
	for _, p := range s.Participants {
		if p.IsWeighted() {
			return true
		}
	}
	return false
}

// HasBills reports whether participantID paid or owes on any bill.
func (s *Snapshot) HasBills(participantID string) bool {
	for _, b := range s.Bills {
		if b.Involves(participantID) {
			return true
		}
	}
	return false
}

// RemovalAction decides how participantID leaves the project: participants
// with bill history are deactivated so historical balances stay correct.
func (s *Snapshot) RemovalAction(participantID string) (RemovalAction, error) {
	if _, err := s.Participant(participantID); err != nil {
		return "", err
	}

	if s.HasBills(participantID) {
		return RemovalDeactivate, nil
	}
	return RemovalDelete, nil
}

// Validate checks referential integrity of the snapshot.
func (s *Snapshot) Validate() error {
	known := make(map[string]bool, len(s.Participants))
	for _, p := range s.Participants {
		if known[p.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, p.ID)
		}
		known[p.ID] = true

		if err := p.Validate(); err != nil {
			return fmt.Errorf("participant %s: %w", p.ID, err)
		}
	}

	bills := make(map[string]bool, len(s.Bills))
	for _, b := range s.Bills {
		if b.ID != "" {
			if bills[b.ID] {
				return fmt.Errorf("%w: %s", ErrDuplicateBill, b.ID)
			}
			bills[b.ID] = true
		}

		if !known[b.PayerID] {
			return fmt.Errorf("%w: bill %s payer %s", ErrUnknownPayer, b.ID, b.PayerID)
		}

		owers := make(map[string]bool, len(b.OwerIDs))
		for _, id := range b.OwerIDs {
			if !known[id] {
				return fmt.Errorf("%w: bill %s ower %s", ErrUnknownOwer, b.ID, id)
			}
			if owers[id] {
				return fmt.Errorf("%w: bill %s ower %s", ErrDuplicateOwer, b.ID, id)
			}
			owers[id] = true
		}
	}

	return nil
}
