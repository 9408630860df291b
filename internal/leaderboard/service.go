package leaderboard

import (
	"sort"

	"github.com/octofit/octofit-backend/internal/apperrors"
)

const DefaultTopLimit = 10

type LeaderboardService struct {
	store SnapshotStore
}

func NewLeaderboardService(store SnapshotStore) *LeaderboardService {
	return &LeaderboardService{store: store}
}

// List returns the active snapshot ordered by ascending rank.
func (s *LeaderboardService) List() ([]Entry, error) {
	entries, err := s.store.Active()
	if err != nil {
		return nil, err
	}

	sortByRank(entries)
	return entries, nil
}

func (s *LeaderboardService) ByTeam(teamID string) ([]Entry, error) {
	entries, err := s.store.Active()
	if err != nil {
		return nil, err
	}

	filtered := []Entry{}
	for _, e := range entries {
		if e.TeamID == teamID {
			filtered = append(filtered, e)
		}
	}

	sortByRank(filtered)
	return filtered, nil
}

// TopPerformers returns the first limit entries by ascending rank. A
// non-positive limit yields an empty list; a limit past the end yields
// everything.
func (s *LeaderboardService) TopPerformers(limit int) ([]Entry, error) {
	if limit <= 0 {
		return []Entry{}, nil
	}

	entries, err := s.List()
	if err != nil {
		return nil, err
	}

	if limit > len(entries) {
		limit = len(entries)
	}
	return entries[:limit], nil
}

// CreateEntry appends a manual entry to the snapshot through the same
// copy-then-swap path a recompute uses.
func (s *LeaderboardService) CreateEntry(e Entry) (*Entry, error) {
	if e.UserID == "" {
		return nil, apperrors.NewAppError(400, "user_id is required", nil)
	}

	entries, err := s.store.Active()
	if err != nil {
		return nil, err
	}

	if e.Rank == 0 {
		e.Rank = len(entries) + 1
	}
	entries = append(entries, e)
	sortByRank(entries)

	if err := s.store.Publish(entries); err != nil {
		return nil, err
	}

	return &e, nil
}

// GetByUser finds the entry for one user; entries have no identity of
// their own beyond the user they summarize.
func (s *LeaderboardService) GetByUser(userID string) (*Entry, error) {
	entries, err := s.store.Active()
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.UserID == userID {
			return &e, nil
		}
	}

	return nil, apperrors.NewNotFoundError("leaderboard entry")
}

// DeleteEntry removes a user's entry and republishes the snapshot.
func (s *LeaderboardService) DeleteEntry(userID string) error {
	entries, err := s.store.Active()
	if err != nil {
		return err
	}

	remaining := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.UserID != userID {
			remaining = append(remaining, e)
		}
	}
	if len(remaining) == len(entries) {
		return apperrors.NewNotFoundError("leaderboard entry")
	}

	return s.store.Publish(remaining)
}

// Rebuild replaces the snapshot with a freshly computed entry set.
func (s *LeaderboardService) Rebuild(entries []Entry) error {
	return s.store.Publish(entries)
}

func (s *LeaderboardService) Clear() error {
	return s.store.Clear()
}

func (s *LeaderboardService) Count() (int64, error) {
	entries, err := s.store.Active()
	if err != nil {
		return 0, err
	}

	return int64(len(entries)), nil
}

func sortByRank(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
}
