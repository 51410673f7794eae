package investwise

import (
	"encoding/json"
	"testing"
	"time"
)

func testClock() time.Time { return testDay }

func TestParseAssetType(t *testing.T) {
	tests := []struct {
		in   string
		want AssetType
	}{
		{"stock", AssetStock},
		{"Stocks", AssetStock},
		{"crypto", AssetCrypto},
		{"real estate", AssetRealEstate},
		{"Real-Estate", AssetRealEstate},
		{"realestate", AssetRealEstate},
		{" gold ", AssetGold},
	}
	for _, tc := range tests {
		got, err := ParseAssetType(tc.in)
		if err != nil {
			t.Errorf("ParseAssetType(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAssetType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if _, err := ParseAssetType("bond"); err == nil {
		t.Error("ParseAssetType(bond) = nil error, want error")
	}
}

func TestCreateAsset_Stock(t *testing.T) {
	src := script("stock", "Apple", "10", "150.5", "true", "AAPL", "NASDAQ")
	a, err := CreateAsset(src, "USD", testClock)
	if err != nil {
		t.Fatalf("CreateAsset() error = %v", err)
	}
	s, ok := a.(*Stock)
	if !ok {
		t.Fatalf("CreateAsset() = %T, want *Stock", a)
	}
	if s.Name() != "Apple" || s.Quantity() != 10 || !s.ZakatApplicable() {
		t.Errorf("common fields = %q %d %v", s.Name(), s.Quantity(), s.ZakatApplicable())
	}
	if !s.PurchasePrice().Equal(USD(150.5)) {
		t.Errorf("PurchasePrice() = %s", s.PurchasePrice())
	}
	if !s.PurchaseDate().Equal(testDay) {
		t.Errorf("PurchaseDate() = %s, want the clock value", s.PurchaseDate())
	}
	if s.Symbol != "AAPL" || s.Exchange != "NASDAQ" {
		t.Errorf("details = %q %q", s.Symbol, s.Exchange)
	}
	if !s.Valuation().Equal(USD(1505)) {
		t.Errorf("Valuation() = %s, want 1505", s.Valuation())
	}
}

func TestCreateAsset_Gold(t *testing.T) {
	src := script("gold", "Wedding set", "1", "5000", "true", "21K", "52.5")
	a, err := CreateAsset(src, "USD", testClock)
	if err != nil {
		t.Fatalf("CreateAsset() error = %v", err)
	}
	g, ok := a.(*Gold)
	if !ok {
		t.Fatalf("CreateAsset() = %T, want *Gold", a)
	}
	if g.Karat != "21K" || g.WeightInGrams != 52.5 {
		t.Errorf("details = %q %v", g.Karat, g.WeightInGrams)
	}
	if g.Details() != "21K, 52.5g" {
		t.Errorf("Details() = %q", g.Details())
	}
}

func TestCreateAsset_RealEstate(t *testing.T) {
	src := script("real estate", "Downtown flat", "1", "2500000", "false", "Cairo", "Apartment")
	a, err := CreateAsset(src, "EGP", testClock)
	if err != nil {
		t.Fatalf("CreateAsset() error = %v", err)
	}
	r, ok := a.(*RealEstate)
	if !ok {
		t.Fatalf("CreateAsset() = %T, want *RealEstate", a)
	}
	if r.Location != "Cairo" || r.PropertyType != "Apartment" {
		t.Errorf("details = %q %q", r.Location, r.PropertyType)
	}
	if r.ZakatApplicable() {
		t.Error("ZakatApplicable() = true, want false")
	}
	if r.PurchasePrice().Currency() != "EGP" {
		t.Errorf("Currency() = %q, want EGP", r.PurchasePrice().Currency())
	}
}

func TestCreateAsset_Rejects(t *testing.T) {
	tests := []struct {
		label string
		src   *scriptSource
	}{
		{"unknown type aborts before other prompts", script("bond")},
		{"negative quantity", script("stock", "Apple", "-1")},
		{"negative price", script("stock", "Apple", "10", "-5")},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			if _, err := CreateAsset(tc.src, "USD", testClock); err == nil {
				t.Error("CreateAsset() = nil error, want error")
			}
		})
	}
}

func TestEditAsset_OrderAndFields(t *testing.T) {
	s := NewStock("Apple", 10, testDay, USD(150), true, "AAPL", "NASDAQ")
	// Common fields first, then the variant details.
	src := script("Apple Inc", "12", "160", "false", "AAPL", "XNAS")
	if err := EditAsset(s, src); err != nil {
		t.Fatalf("EditAsset() error = %v", err)
	}
	if s.Name() != "Apple Inc" || s.Quantity() != 12 || s.ZakatApplicable() {
		t.Errorf("common fields after edit = %q %d %v", s.Name(), s.Quantity(), s.ZakatApplicable())
	}
	if !s.PurchasePrice().Equal(USD(160)) {
		t.Errorf("PurchasePrice() = %s, want 160", s.PurchasePrice())
	}
	if s.Exchange != "XNAS" {
		t.Errorf("Exchange = %q, want XNAS", s.Exchange)
	}
}

func TestAssetEqual(t *testing.T) {
	apple := NewStock("Apple", 10, testDay, USD(150), true, "AAPL", "NASDAQ")
	sameName := NewStock("Apple", 99, testDay, USD(1), false, "OTHER", "LSE")
	if !apple.Equal(sameName) {
		t.Error("Equal() = false for same type and name, want true")
	}
	goldApple := NewGold("Apple", 10, testDay, USD(150), true, "24K", 10)
	if apple.Equal(goldApple) {
		t.Error("Equal() = true across types, want false")
	}
	other := NewStock("Tesla", 10, testDay, USD(150), true, "TSLA", "NASDAQ")
	if apple.Equal(other) {
		t.Error("Equal() = true for different names, want false")
	}
}

func TestDecodeAsset(t *testing.T) {
	assets := []Asset{
		NewStock("Apple", 10, testDay, USD(150.5), true, "AAPL", "NASDAQ"),
		NewCrypto("Bitcoin", 2, testDay, USD(64000), true, "BTC", "Binance"),
		NewRealEstate("Flat", 1, testDay, USD(250000), false, "Cairo", "Apartment"),
		NewGold("Bars", 3, testDay, USD(2500), true, "24K", 100),
	}
	for _, a := range assets {
		raw, err := json.Marshal(a)
		if err != nil {
			t.Fatalf("Marshal(%s) error = %v", a.Name(), err)
		}
		got, err := decodeAsset(raw)
		if err != nil {
			t.Fatalf("decodeAsset(%s) error = %v", a.Name(), err)
		}
		if got.What() != a.What() || got.Name() != a.Name() {
			t.Errorf("decodeAsset() = %s %q, want %s %q", got.What(), got.Name(), a.What(), a.Name())
		}
		if !got.Valuation().Equal(a.Valuation()) {
			t.Errorf("Valuation() = %s, want %s", got.Valuation(), a.Valuation())
		}
		if got.Details() != a.Details() {
			t.Errorf("Details() = %q, want %q", got.Details(), a.Details())
		}
	}

	if _, err := decodeAsset([]byte(`{"type":"bond","name":"x"}`)); err == nil {
		t.Error("decodeAsset(unknown type) = nil error, want error")
	}
}
