package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
)

const dateLayout = "2006-01-02"

type document struct {
	Projects []projectRecord `json:"projects"`
}

type projectRecord struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Participants []participantRecord `json:"participants"`
	Bills        []billRecord        `json:"bills"`
}

type participantRecord struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Weight *decimal.Decimal `json:"weight,omitempty"`
	Active *bool            `json:"active,omitempty"`
}

type billRecord struct {
	ID     string          `json:"id"`
	Date   string          `json:"date,omitempty"`
	What   string          `json:"what,omitempty"`
	Payer  string          `json:"payer"`
	Owers  []string        `json:"owers"`
	Amount decimal.Decimal `json:"amount"`
}

// SnapshotRepository implements usecase.SnapshotRepository on top of a JSON
// document holding one or more projects. The file is read on every call so
// each snapshot reflects the file at that moment.
type SnapshotRepository struct {
	path string
}

// NewSnapshotRepository creates a new SnapshotRepository reading path.
func NewSnapshotRepository(path string) *SnapshotRepository {
	return &SnapshotRepository{path: path}
}

// GetSnapshot loads the project with the given id. An empty id selects the
// only project of a single-project document.
func (r *SnapshotRepository) GetSnapshot(ctx context.Context, projectID string) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot file %s: %w", r.path, err)
	}

	if projectID == "" && len(doc.Projects) == 1 {
		return recordToSnapshot(doc.Projects[0])
	}

	for _, p := range doc.Projects {
		if p.ID == projectID {
			return recordToSnapshot(p)
		}
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrProjectNotFound, projectID)
}

func recordToSnapshot(rec projectRecord) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{
		ProjectID:    rec.ID,
		Name:         rec.Name,
		Participants: make([]*domain.Participant, 0, len(rec.Participants)),
		Bills:        make([]*domain.Bill, 0, len(rec.Bills)),
	}

	for _, p := range rec.Participants {
		participant := domain.NewParticipant(p.ID, p.Name)
		if p.Weight != nil {
			participant.Weight = *p.Weight
		}
		if p.Active != nil {
			participant.Active = *p.Active
		}
		snapshot.Participants = append(snapshot.Participants, participant)
	}

	for _, b := range rec.Bills {
		bill := &domain.Bill{
			ID:      b.ID,
			What:    b.What,
			PayerID: b.Payer,
			OwerIDs: b.Owers,
			Amount:  b.Amount,
		}

		if b.Date != "" {
			date, err := time.Parse(dateLayout, b.Date)
			if err != nil {
				return nil, fmt.Errorf("bill %s: invalid date %q: %w", b.ID, b.Date, err)
			}
			bill.Date = date
		}

		snapshot.Bills = append(snapshot.Bills, bill)
	}

	return snapshot, nil
}
