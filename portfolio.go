package investwise

import (
	"encoding/json"
)

// Portfolio is an ordered collection of assets owned by one investor.
// Identity is the owner's user name plus the portfolio name.
type Portfolio struct {
	Owner  User    `json:"owner"`
	Name   string  `json:"name"`
	Assets []Asset `json:"assets"`
}

// Equal reports whether o is the same record: same owner, same name.
func (p *Portfolio) Equal(o *Portfolio) bool {
	return o != nil && p.Owner.Equal(o.Owner) && p.Name == o.Name
}

// UnmarshalJSON decodes the polymorphic asset list through the type
// discriminator of each element.
func (p *Portfolio) UnmarshalJSON(data []byte) error {
	var temp struct {
		Owner  User              `json:"owner"`
		Name   string            `json:"name"`
		Assets []json.RawMessage `json:"assets"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	assets := make([]Asset, 0, len(temp.Assets))
	for _, raw := range temp.Assets {
		a, err := decodeAsset(raw)
		if err != nil {
			return err
		}
		assets = append(assets, a)
	}
	p.Owner, p.Name, p.Assets = temp.Owner, temp.Name, assets
	return nil
}

// Asset returns the asset with this name, scanning in order.
func (p *Portfolio) Asset(name string) (Asset, bool) {
	for _, a := range p.Assets {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// Currency returns the currency of the assets held, or "" for an empty
// portfolio. All assets of a portfolio share one currency; AddAsset
// enforces it.
func (p *Portfolio) Currency() string {
	for _, a := range p.Assets {
		if c := a.PurchasePrice().Currency(); c != "" {
			return c
		}
	}
	return ""
}

// TotalValue sums the valuation of every asset in the portfolio.
func (p *Portfolio) TotalValue() Money {
	var total Money
	for _, a := range p.Assets {
		total = total.Add(a.Valuation())
	}
	return total
}
