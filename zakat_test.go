package investwise

import "testing"

func TestAssetZakat(t *testing.T) {
	tests := []struct {
		label string
		asset Asset
		want  Money
	}{
		{
			"applicable stock: 2 x 1000 at 2.5%",
			NewStock("Apple", 2, testDay, USD(1000), true, "AAPL", "NASDAQ"),
			USD(50),
		},
		{
			"applicable gold",
			NewGold("Bars", 1, testDay, USD(2500), true, "24K", 100),
			USD(62.5),
		},
		{
			"non-applicable asset owes nothing",
			NewRealEstate("Flat", 1, testDay, USD(250000), false, "Cairo", "Apartment"),
			USD(0),
		},
		{
			"zero quantity owes nothing",
			NewStock("Empty", 0, testDay, USD(1000), true, "X", "Y"),
			USD(0),
		},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			got := AssetZakat(tc.asset)
			if !got.Equal(tc.want) {
				t.Errorf("AssetZakat() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestPortfolioZakat(t *testing.T) {
	p := &Portfolio{Owner: ahmed, Name: "Retirement", Assets: []Asset{
		NewStock("Apple", 2, testDay, USD(1000), true, "AAPL", "NASDAQ"),
		NewRealEstate("Flat", 1, testDay, USD(250000), false, "Cairo", "Apartment"),
		NewGold("Bars", 1, testDay, USD(2500), true, "24K", 100),
	}}
	// 50 from the stock, 0 from the flat, 62.5 from the gold.
	if got := PortfolioZakat(p); !got.Equal(USD(112.5)) {
		t.Errorf("PortfolioZakat() = %s, want 112.50", got)
	}

	empty := &Portfolio{Owner: ahmed, Name: "Empty"}
	if got := PortfolioZakat(empty); !got.IsZero() {
		t.Errorf("PortfolioZakat(empty) = %s, want zero", got)
	}
}
