package credits

import (
	"context"
	"errors"

	"github.com/rickai0118/OpenLovart/internal/logging"
)

// Service implements the first-load credit bootstrap: read the balance,
// create it with DefaultBalance when the row is missing.
type Service struct {
	repo Repository
	log  logging.Logger
}

func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Ensure returns the user's balance, creating the row on first load.
// The read strictly precedes the conditional insert. Any failure other
// than the missing-row signal degrades silently: it is logged and ok is
// false, leaving the balance unset for the caller.
func (s *Service) Ensure(ctx context.Context, userID string) (balance int64, ok bool) {
	balance, err := s.repo.GetBalance(ctx, userID)
	if err == nil {
		return balance, true
	}
	if !errors.Is(err, ErrNotFound) {
		s.log.Error(ctx, "failed to load credits", "user_id", userID, "err", err)
		return 0, false
	}

	balance, err = s.repo.InitBalance(ctx, userID, DefaultBalance)
	if err != nil {
		s.log.Error(ctx, "failed to init credits", "user_id", userID, "err", err)
		return 0, false
	}
	return balance, true
}
