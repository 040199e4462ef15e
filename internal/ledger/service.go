// Package ledger coordinates the donation/supporter pairing. The backend has
// no cross-resource transaction, so every supporter write is a sequence of
// single-resource calls with named failure modes per step.
package ledger

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"coopweb/internal/api"
	"coopweb/internal/infra"
)

// CoOpTag is the cooperative every donation made through this UI belongs to.
const CoOpTag = "STUDIO-MATIC"

// Backend is the slice of the api client the ledger needs.
type Backend interface {
	ListDonations(ctx context.Context, sess api.Session) ([]api.Donation, error)
	ListSupporters(ctx context.Context, sess api.Session) ([]api.Supporter, error)
	GetSupporter(ctx context.Context, sess api.Session, id int64) (*api.Supporter, error)
	CreateDonation(ctx context.Context, sess api.Session, p api.DonationPayload) (*api.Donation, error)
	CreateSupporter(ctx context.Context, sess api.Session, p api.SupporterPayload) (*api.Supporter, error)
	UpdateSupporter(ctx context.Context, sess api.Session, id int64, p api.SupporterPayload) (*api.Supporter, error)
}

// Service orchestrates multi-call sequences across the two collections.
type Service struct {
	backend Backend
	logger  *infra.Logger
}

// NewService constructs the ledger service.
func NewService(backend Backend, logger *infra.Logger) *Service {
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Service{backend: backend, logger: logger}
}

// ConsistencyError reports that a donation was created but the supporter that
// should reference it was not. The donation stays behind as an orphan; no
// rollback is attempted.
type ConsistencyError struct {
	DonationID int64
	Err        error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("ledger: donation %d was created but its supporter was not: %v", e.DonationID, e.Err)
}

func (e *ConsistencyError) Unwrap() error {
	return e.Err
}

// CreateSupporterWithDonation backs a new supporter with a fresh zero-coin
// donation carrying the pledged income. The donation is created first; if that
// fails no supporter call is made. If the supporter call fails afterwards the
// error is a *ConsistencyError naming the orphaned donation.
func (s *Service) CreateSupporterWithDonation(ctx context.Context, sess api.Session, name string, incomeEUR float64) (*api.Supporter, error) {
	donation, err := s.backend.CreateDonation(ctx, sess, api.DonationPayload{
		Coins:     0,
		IncomeEUR: incomeEUR,
		CoOp:      CoOpTag,
	})
	if err != nil {
		return nil, fmt.Errorf("ledger: create backing donation: %w", err)
	}

	supporter, err := s.backend.CreateSupporter(ctx, sess, api.SupporterPayload{
		Name:       name,
		DonationID: donation.ID,
	})
	if err != nil {
		s.logger.Warn().
			Int64("donation_id", donation.ID).
			Err(err).
			Msg("supporter creation failed, donation left orphaned")
		return nil, &ConsistencyError{DonationID: donation.ID, Err: err}
	}
	return supporter, nil
}

// UpdateSupporterName renames a supporter. The current donation_id is read
// back from the supporter record and resent unchanged; a name edit can never
// move the supporter to another donation. If the read fails nothing is written.
func (s *Service) UpdateSupporterName(ctx context.Context, sess api.Session, id int64, name string) (*api.Supporter, error) {
	current, err := s.backend.GetSupporter(ctx, sess, id)
	if err != nil {
		return nil, fmt.Errorf("ledger: fetch supporter %d: %w", id, err)
	}
	updated, err := s.backend.UpdateSupporter(ctx, sess, id, api.SupporterPayload{
		Name:       name,
		DonationID: current.DonationID,
	})
	if err != nil {
		return nil, fmt.Errorf("ledger: update supporter %d: %w", id, err)
	}
	return updated, nil
}

// SupporterOverview fetches both collections and joins each supporter to its
// donation. One unresolvable reference never blocks the rest of the table.
func (s *Service) SupporterOverview(ctx context.Context, sess api.Session) ([]JoinedSupporter, error) {
	donations, err := s.backend.ListDonations(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("ledger: list donations: %w", err)
	}
	supporters, err := s.backend.ListSupporters(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("ledger: list supporters: %w", err)
	}
	return Join(donations, supporters), nil
}

// JoinedSupporter combines a supporter with the display fields of its
// donation. When Resolved is false the donation fields are zero values.
type JoinedSupporter struct {
	Supporter api.Supporter
	Donation  api.Donation
	Resolved  bool
}

// Join maps each supporter to its donation through an id lookup scoped to this
// call. Ids are unique within a collection, so the map is a plain overwrite.
func Join(donations []api.Donation, supporters []api.Supporter) []JoinedSupporter {
	byID := make(map[int64]api.Donation, len(donations))
	for _, d := range donations {
		byID[d.ID] = d
	}
	joined := make([]JoinedSupporter, 0, len(supporters))
	for _, sp := range supporters {
		d, ok := byID[sp.DonationID]
		joined = append(joined, JoinedSupporter{Supporter: sp, Donation: d, Resolved: ok})
	}
	return joined
}
