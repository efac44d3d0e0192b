package rebalance

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Snapshot is a consistent, read-only view of a Store.
type Snapshot struct {
	Holdings []Holding
	Config   Config
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{Holdings: slices.Clone(s.Holdings), Config: s.Config}
}

// Store is the single owner of the holdings and the configuration.
//
// Every mutation replaces the holdings collection or the configuration as a
// whole, so a Snapshot never observes a partially applied change.
type Store struct {
	mu        sync.RWMutex
	holdings  []Holding
	config    Config
	listeners []func(Snapshot)
	newID     func() string
	log       zerolog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used to trace mutations.
func WithLogger(log zerolog.Logger) StoreOption {
	return func(s *Store) { s.log = log }
}

// WithIDGenerator replaces the uuid generator used for new holdings.
func WithIDGenerator(gen func() string) StoreOption {
	return func(s *Store) { s.newID = gen }
}

// NewStore creates a Store initialized from snap.
func NewStore(snap Snapshot, opts ...StoreOption) *Store {
	s := &Store{
		holdings: slices.Clone(snap.Holdings),
		config:   snap.Config,
		newID:    uuid.NewString,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Holdings: slices.Clone(s.holdings), Config: s.config}
}

// Analyze computes the report for the current state.
func (s *Store) Analyze() *Report {
	r := Analyze(s.Snapshot())
	ev := s.log.Debug().
		Stringer("total", r.TotalPortfolioValue).
		Int("recommendations", len(r.Recommendations))
	if r.BestBuy != nil {
		ev = ev.Str("best_buy", r.BestBuy.Ticker)
	}
	ev.Msg("portfolio analyzed")
	return r
}

// Holding returns the holding with the given id.
func (s *Store) Holding(id string) (Holding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(id)
	if i < 0 {
		return Holding{}, false
	}
	return s.holdings[i], true
}

// OnChange registers fn to be called with the new state after every mutation.
func (s *Store) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// AddHolding appends a new holding with a fresh id and returns it.
// Duplicate tickers are allowed.
func (s *Store) AddHolding(spec HoldingSpec) Holding {
	h := newHolding(s.newID(), spec)
	s.mutate(func() bool {
		holdings := make([]Holding, len(s.holdings), len(s.holdings)+1)
		copy(holdings, s.holdings)
		s.holdings = append(holdings, h)
		return true
	})
	s.log.Debug().Str("id", h.ID).Str("ticker", h.Ticker).Stringer("category", h.Category).Msg("holding added")
	return h
}

// UpdateHolding merges u into the holding with the given id. It reports
// whether the holding exists; an unknown id is not an error.
func (s *Store) UpdateHolding(id string, u HoldingUpdate) bool {
	found := false
	s.mutate(func() bool {
		i := s.index(id)
		if i < 0 {
			return false
		}
		found = true
		holdings := slices.Clone(s.holdings)
		holdings[i] = holdings[i].apply(u)
		s.holdings = holdings
		return true
	})
	s.log.Debug().Str("id", id).Bool("found", found).Msg("holding updated")
	return found
}

// RemoveHolding deletes the holding with the given id. It reports whether
// the holding existed.
func (s *Store) RemoveHolding(id string) bool {
	found := false
	s.mutate(func() bool {
		i := s.index(id)
		if i < 0 {
			return false
		}
		found = true
		s.holdings = slices.Delete(slices.Clone(s.holdings), i, i+1)
		return true
	})
	s.log.Debug().Str("id", id).Bool("found", found).Msg("holding removed")
	return found
}

// UpdateConfig merges u into the configuration.
func (s *Store) UpdateConfig(u ConfigUpdate) {
	s.mutate(func() bool {
		s.config = s.config.Merge(u)
		return true
	})
	s.log.Debug().Msg("config updated")
}

// SetCategoryTarget sets the target share of variable income for one category.
func (s *Store) SetCategoryTarget(c Category, p Percent) {
	s.mutate(func() bool {
		s.config.CategoryTargets.Set(c, p)
		return true
	})
	s.log.Debug().Stringer("category", c).Float64("target", float64(p)).Msg("category target set")
}

// mutate applies f under the write lock then, if f reports a change, notifies
// listeners with the resulting snapshot.
func (s *Store) mutate(f func() bool) {
	s.mu.Lock()
	if !f() {
		s.mu.Unlock()
		return
	}
	snap := Snapshot{Holdings: slices.Clone(s.holdings), Config: s.config}
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap.Clone())
	}
}

// index returns the position of the holding with the given id, or -1.
// The caller must hold the lock.
func (s *Store) index(id string) int {
	return slices.IndexFunc(s.holdings, func(h Holding) bool { return h.ID == id })
}
