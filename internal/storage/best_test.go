package storage

import "testing"

func TestBestScoreEmpty(t *testing.T) {
	best := NewBestScore(openTestStore(t))

	got, err := best.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if got != 0 {
		t.Errorf("LoadBest() on empty store = %d, want 0", got)
	}

	at, err := best.UpdatedAt()
	if err != nil || !at.IsZero() {
		t.Errorf("UpdatedAt() = %v, %v; want zero time", at, err)
	}
}

func TestBestScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	best := NewBestScore(store)

	if err := best.SaveBest(2048); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	raw, ok, _ := store.Get(BestScoreKey)
	if !ok || raw != "2048" {
		t.Errorf("raw slot = %q (present %v), want decimal string 2048", raw, ok)
	}

	got, err := best.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if got != 2048 {
		t.Errorf("LoadBest() = %d, want 2048", got)
	}
}

func TestBestScoreMalformed(t *testing.T) {
	store := openTestStore(t)
	store.Set(BestScoreKey, "lots")

	if _, err := NewBestScore(store).LoadBest(); err == nil {
		t.Error("LoadBest() accepted a non-numeric value")
	}
}

func TestBestScoreReset(t *testing.T) {
	best := NewBestScore(openTestStore(t))
	best.SaveBest(512)

	if err := best.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if got, _ := best.LoadBest(); got != 0 {
		t.Errorf("LoadBest() after Reset = %d, want 0", got)
	}
}
