package investwise

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/Welly0007/InvestWise/logger"
)

const portfolioStoreFormat = "investwise/portfolios"

// PortfolioStore specializes the generic store for portfolios. Every asset
// mutation goes through it so that the backing file is rewritten after each
// change; a portfolio never exists only in memory.
type PortfolioStore struct {
	store *Store[*Portfolio]
}

func portfolioCodec() lineCodec[*Portfolio] {
	return lineCodec[*Portfolio]{
		format:  portfolioStoreFormat,
		marshal: func(p *Portfolio) ([]byte, error) { return json.Marshal(p) },
		unmarshal: func(b []byte) (*Portfolio, error) {
			var p Portfolio
			if err := json.Unmarshal(b, &p); err != nil {
				return nil, err
			}
			return &p, nil
		},
	}
}

// OpenPortfolioStore loads the portfolio store backed by fileName, creating
// an empty file if none exists.
func OpenPortfolioStore(fileName string) *PortfolioStore {
	return &PortfolioStore{store: openStore(fileName, portfolioCodec())}
}

// Create builds an empty portfolio for owner and persists it immediately.
// It returns false when the owner already has a portfolio with this name.
func (s *PortfolioStore) Create(owner User, name string) (*Portfolio, bool) {
	p := &Portfolio{Owner: owner, Name: name}
	if !s.store.Add(p) {
		logger.Get().Warnw("portfolio already exists", "owner", owner.UserName, "name", name)
		return nil, false
	}
	return p, true
}

// Add inserts p unless an equality match (same owner, same name) exists.
func (s *PortfolioStore) Add(p *Portfolio) bool { return s.store.Add(p) }

// Delete removes p from the store.
func (s *PortfolioStore) Delete(p *Portfolio) bool { return s.store.Delete(p) }

// Edit replaces old with new via delete-then-add; see Store.Edit.
func (s *PortfolioStore) Edit(old, new *Portfolio) bool { return s.store.Edit(old, new) }

// Portfolios returns every portfolio in insertion order.
func (s *PortfolioStore) Portfolios() []*Portfolio { return s.store.Items() }

// Len returns the number of portfolios held.
func (s *PortfolioStore) Len() int { return s.store.Len() }

// UserPortfolios returns the portfolios whose owner equality-matches owner,
// preserving insertion order. Plain O(n) scan, the whole set lives in
// memory anyway.
func (s *PortfolioStore) UserPortfolios(owner User) []*Portfolio {
	var found []*Portfolio
	for _, p := range s.store.Items() {
		if p.Owner.Equal(owner) {
			found = append(found, p)
		}
	}
	return found
}

// Find returns the owner's portfolio with this name.
func (s *PortfolioStore) Find(owner User, name string) (*Portfolio, bool) {
	for _, p := range s.UserPortfolios(owner) {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// AddAsset appends a to p's asset list and rewrites the store. It returns
// false, without touching the portfolio, when a's currency differs from the
// currency of the assets already held: amounts of different currencies
// must never meet in a valuation.
func (s *PortfolioStore) AddAsset(p *Portfolio, a Asset) bool {
	if held, incoming := p.Currency(), a.PurchasePrice().Currency(); held != "" && incoming != "" && held != incoming {
		logger.Get().Warnw("rejecting asset with mismatched currency",
			"portfolio", p.Name, "asset", a.Name(), "held", held, "incoming", incoming)
		return false
	}
	p.Assets = append(p.Assets, a)
	s.store.Edit(p, p)
	return true
}

// RemoveAsset removes the named asset from p and rewrites the store. It
// returns false when no asset with this name is present.
func (s *PortfolioStore) RemoveAsset(p *Portfolio, name string) bool {
	for i, a := range p.Assets {
		if a.Name() == name {
			p.Assets = slices.Delete(p.Assets, i, i+1)
			s.store.Edit(p, p)
			return true
		}
	}
	logger.Get().Warnw("asset not found in portfolio", "portfolio", p.Name, "asset", name)
	return false
}

// EditAsset rewrites the named asset's common fields, runs its variant
// hook, then rewrites the store.
func (s *PortfolioStore) EditAsset(p *Portfolio, name string, src FieldSource) error {
	a, ok := p.Asset(name)
	if !ok {
		return fmt.Errorf("asset %q not found in portfolio %q", name, p.Name)
	}
	if err := EditAsset(a, src); err != nil {
		return err
	}
	s.store.Edit(p, p)
	return nil
}
