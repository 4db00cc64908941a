package storage

import (
	"fmt"
	"strconv"
	"time"
)

// BestScoreKey is the slot holding the best score as a decimal string.
const BestScoreKey = "bestScore"

// BestScore adapts a Store to the session's best-score persistence.
type BestScore struct {
	store *Store
}

// NewBestScore returns the best-score slot backed by store.
func NewBestScore(store *Store) *BestScore {
	return &BestScore{store: store}
}

// LoadBest returns the stored best score, or 0 if none has been recorded.
func (b *BestScore) LoadBest() (int, error) {
	raw, ok, err := b.store.Get(BestScoreKey)
	if err != nil || !ok {
		return 0, err
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("storage: malformed best score %q: %w", raw, err)
	}
	return score, nil
}

// SaveBest records score as the best score.
func (b *BestScore) SaveBest(score int) error {
	return b.store.Set(BestScoreKey, strconv.Itoa(score))
}

// Reset clears the best score.
func (b *BestScore) Reset() error {
	return b.store.Delete(BestScoreKey)
}

// UpdatedAt returns when the best score was last written, zero if never.
func (b *BestScore) UpdatedAt() (time.Time, error) {
	e, err := b.store.Entry(BestScoreKey)
	if err != nil || e == nil {
		return time.Time{}, err
	}
	return e.UpdatedAt, nil
}
