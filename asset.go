package investwise

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AssetType is a typed string identifying the concrete asset variant.
type AssetType string

// Asset types recognized by the creation entry point and the codec.
const (
	AssetStock      AssetType = "stock"
	AssetCrypto     AssetType = "crypto"
	AssetRealEstate AssetType = "real-estate"
	AssetGold       AssetType = "gold"
)

// ParseAssetType normalizes an operator-entered tag into an AssetType.
// It accepts a few historical spellings ("stocks", "real estate").
func ParseAssetType(s string) (AssetType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stock", "stocks":
		return AssetStock, nil
	case "crypto":
		return AssetCrypto, nil
	case "real estate", "real-estate", "realestate":
		return AssetRealEstate, nil
	case "gold":
		return AssetGold, nil
	}
	return "", fmt.Errorf("unknown asset type %q", s)
}

// FieldSource supplies field values during asset creation and editing.
// The console prompter in the cmd package is the usual implementation;
// tests use a scripted one.
type FieldSource interface {
	String(prompt string) (string, error)
	Int(prompt string) (int, error)
	Decimal(prompt string) (decimal.Decimal, error)
	Bool(prompt string) (bool, error)
}

// Asset is the common interface of all asset variants. It is a closed set:
// the unexported hooks keep implementations inside this package, so no bare
// asset can exist without a concrete variant.
type Asset interface {
	What() AssetType
	Name() string
	Quantity() int
	PurchaseDate() time.Time
	PurchasePrice() Money
	ZakatApplicable() bool
	// Valuation is purchase price times quantity, used everywhere an asset
	// value is needed.
	Valuation() Money
	// Details is a one-line summary of the variant-specific fields.
	Details() string
	Equal(Asset) bool

	editCommon(src FieldSource) error
	editDetails(src FieldSource) error
}

// assetHeader carries the fields shared by every variant.
type assetHeader struct {
	Type        AssetType       `json:"type"`
	Label       string          `json:"name"`
	Count       int             `json:"quantity"`
	PurchasedOn time.Time       `json:"purchaseDate"`
	Price       decimal.Decimal `json:"purchasePrice"`
	Cur         string          `json:"currency,omitempty"`
	Zakat       bool            `json:"zakatApplicable"`
}

func (h assetHeader) What() AssetType         { return h.Type }
func (h assetHeader) Name() string            { return h.Label }
func (h assetHeader) Quantity() int           { return h.Count }
func (h assetHeader) PurchaseDate() time.Time { return h.PurchasedOn }
func (h assetHeader) PurchasePrice() Money    { return M(h.Price, h.Cur) }
func (h assetHeader) ZakatApplicable() bool   { return h.Zakat }
func (h assetHeader) Valuation() Money        { return h.PurchasePrice().MulInt(h.Count) }

// editCommon rewrites all base fields from the source. Variant hooks run
// after it, never instead of it.
func (h *assetHeader) editCommon(src FieldSource) error {
	name, err := src.String("New name")
	if err != nil {
		return err
	}
	count, err := src.Int("New quantity")
	if err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("quantity must not be negative, got %d", count)
	}
	price, err := src.Decimal("New purchase price")
	if err != nil {
		return err
	}
	if price.IsNegative() {
		return fmt.Errorf("purchase price must not be negative, got %s", price)
	}
	zakat, err := src.Bool("Is Zakat applicable (true/false)")
	if err != nil {
		return err
	}
	h.Label, h.Count, h.Price, h.Zakat = name, count, price, zakat
	return nil
}

// sameAsset is the equality-match rule for assets: same variant, same name.
func sameAsset(a, b Asset) bool {
	return a.What() == b.What() && a.Name() == b.Name()
}

// Stock is a listed equity position.
type Stock struct {
	assetHeader
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
}

// NewStock creates a stock asset.
func NewStock(name string, quantity int, purchased time.Time, price Money, zakat bool, symbol, exchange string) *Stock {
	return &Stock{
		assetHeader: assetHeader{Type: AssetStock, Label: name, Count: quantity, PurchasedOn: purchased, Price: price.Amount(), Cur: price.Currency(), Zakat: zakat},
		Symbol:      symbol,
		Exchange:    exchange,
	}
}

func (s *Stock) Details() string    { return fmt.Sprintf("%s @ %s", s.Symbol, s.Exchange) }
func (s *Stock) Equal(o Asset) bool { return sameAsset(s, o) }

func (s *Stock) editDetails(src FieldSource) error {
	symbol, err := src.String("New stock symbol")
	if err != nil {
		return err
	}
	exchange, err := src.String("New exchange")
	if err != nil {
		return err
	}
	s.Symbol, s.Exchange = symbol, exchange
	return nil
}

// Crypto is a cryptocurrency position.
type Crypto struct {
	assetHeader
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
}

// NewCrypto creates a crypto asset.
func NewCrypto(name string, quantity int, purchased time.Time, price Money, zakat bool, symbol, exchange string) *Crypto {
	return &Crypto{
		assetHeader: assetHeader{Type: AssetCrypto, Label: name, Count: quantity, PurchasedOn: purchased, Price: price.Amount(), Cur: price.Currency(), Zakat: zakat},
		Symbol:      symbol,
		Exchange:    exchange,
	}
}

func (c *Crypto) Details() string    { return fmt.Sprintf("%s @ %s", c.Symbol, c.Exchange) }
func (c *Crypto) Equal(o Asset) bool { return sameAsset(c, o) }

func (c *Crypto) editDetails(src FieldSource) error {
	symbol, err := src.String("New crypto symbol")
	if err != nil {
		return err
	}
	exchange, err := src.String("New exchange")
	if err != nil {
		return err
	}
	c.Symbol, c.Exchange = symbol, exchange
	return nil
}

// RealEstate is a property holding.
type RealEstate struct {
	assetHeader
	Location     string `json:"location"`
	PropertyType string `json:"propertyType"`
}

// NewRealEstate creates a real-estate asset.
func NewRealEstate(name string, quantity int, purchased time.Time, price Money, zakat bool, location, propertyType string) *RealEstate {
	return &RealEstate{
		assetHeader:  assetHeader{Type: AssetRealEstate, Label: name, Count: quantity, PurchasedOn: purchased, Price: price.Amount(), Cur: price.Currency(), Zakat: zakat},
		Location:     location,
		PropertyType: propertyType,
	}
}

func (r *RealEstate) Details() string    { return fmt.Sprintf("%s, %s", r.Location, r.PropertyType) }
func (r *RealEstate) Equal(o Asset) bool { return sameAsset(r, o) }

func (r *RealEstate) editDetails(src FieldSource) error {
	location, err := src.String("New location")
	if err != nil {
		return err
	}
	propertyType, err := src.String("New property type")
	if err != nil {
		return err
	}
	r.Location, r.PropertyType = location, propertyType
	return nil
}

// Gold is a physical gold holding.
type Gold struct {
	assetHeader
	Karat         string  `json:"karat"`
	WeightInGrams float64 `json:"weightInGrams"`
}

// NewGold creates a gold asset.
func NewGold(name string, quantity int, purchased time.Time, price Money, zakat bool, karat string, weightInGrams float64) *Gold {
	return &Gold{
		assetHeader:   assetHeader{Type: AssetGold, Label: name, Count: quantity, PurchasedOn: purchased, Price: price.Amount(), Cur: price.Currency(), Zakat: zakat},
		Karat:         karat,
		WeightInGrams: weightInGrams,
	}
}

func (g *Gold) Details() string    { return fmt.Sprintf("%s, %.1fg", g.Karat, g.WeightInGrams) }
func (g *Gold) Equal(o Asset) bool { return sameAsset(g, o) }

func (g *Gold) editDetails(src FieldSource) error {
	karat, err := src.String("New karat")
	if err != nil {
		return err
	}
	weight, err := src.Decimal("New weight in grams")
	if err != nil {
		return err
	}
	g.Karat, g.WeightInGrams = karat, weight.InexactFloat64()
	return nil
}

// CreateAsset is the single creation entry point for assets. It reads a type
// tag first, then the common fields, then delegates to the variant hook for
// the variant-specific fields. An unknown tag aborts creation. The purchase
// date is captured from the clock at creation time; a nil clock means
// time.Now.
func CreateAsset(src FieldSource, currency string, clock func() time.Time) (Asset, error) {
	if clock == nil {
		clock = time.Now
	}
	tag, err := src.String("Asset type (stock, crypto, real-estate, gold)")
	if err != nil {
		return nil, err
	}
	typ, err := ParseAssetType(tag)
	if err != nil {
		return nil, err
	}
	name, err := src.String("Asset name")
	if err != nil {
		return nil, err
	}
	count, err := src.Int("Asset quantity")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("quantity must not be negative, got %d", count)
	}
	price, err := src.Decimal("Asset purchase price")
	if err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("purchase price must not be negative, got %s", price)
	}
	zakat, err := src.Bool("Is Zakat applicable (true/false)")
	if err != nil {
		return nil, err
	}

	header := assetHeader{Type: typ, Label: name, Count: count, PurchasedOn: clock(), Price: price, Cur: currency, Zakat: zakat}
	var a Asset
	switch typ {
	case AssetStock:
		a = &Stock{assetHeader: header}
	case AssetCrypto:
		a = &Crypto{assetHeader: header}
	case AssetRealEstate:
		a = &RealEstate{assetHeader: header}
	case AssetGold:
		a = &Gold{assetHeader: header}
	}
	if err := a.editDetails(src); err != nil {
		return nil, err
	}
	return a, nil
}

// EditAsset rewrites all common fields of a and then delegates to the
// variant-specific hook, always in that order.
func EditAsset(a Asset, src FieldSource) error {
	if err := a.editCommon(src); err != nil {
		return err
	}
	return a.editDetails(src)
}

// decodeAsset decodes one JSON object into its concrete variant by probing
// the "type" discriminator.
func decodeAsset(raw []byte) (Asset, error) {
	var probe struct {
		Type AssetType `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("could not identify asset type in %q: %w", string(raw), err)
	}
	switch probe.Type {
	case AssetStock:
		var a Stock
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		return &a, nil
	case AssetCrypto:
		var a Crypto
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		return &a, nil
	case AssetRealEstate:
		var a RealEstate
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		return &a, nil
	case AssetGold:
		var a Gold
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		return &a, nil
	default:
		return nil, fmt.Errorf("unknown asset type %q", probe.Type)
	}
}
