package entities

import "strings"

// Catalog reference data: read-only lookup tables consumed by the pricing
// engine. Treated as an injected snapshot so pricing stays a pure function of
// (request, catalog); the tables are never re-fetched mid-computation.

type ShirtSize struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type ShirtType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PrintType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PrintPrice is the unit price of one (print type, size) combination, bound
// to the shirt type it was quoted for.
type PrintPrice struct {
	ID            string  `json:"id"`
	PrintTypeName string  `json:"print_type_name"`
	SizeLabel     string  `json:"size_label"`
	ShirtTypeName string  `json:"shirt_type_name"`
	Amount        float64 `json:"amount"`
}

// DefaultDesignerID keys the fallback pricing record applied when a designer
// has no personal record or a zero fee.
const DefaultDesignerID = "default"

// DesignerPrice is a designer's personal pricing record.
type DesignerPrice struct {
	ID           string  `json:"id"`
	DesignerID   string  `json:"designer_id"`
	NormalAmount float64 `json:"normal_amount"`
	RevisionFee  float64 `json:"revision_fee"`
}

// Textile is a fabric with its current stock, in yards.
type Textile struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	StockYards float64 `json:"stock_yards"`
}

// CatalogSnapshot is a point-in-time read of the pricing tables.
type CatalogSnapshot struct {
	PrintPrices    []PrintPrice
	DesignerPrices []DesignerPrice
}

// FindPrintPrice resolves the entry matching (print type, size label), both
// compared after trimming. The second return is false when absent.
func (c CatalogSnapshot) FindPrintPrice(printType, sizeLabel string) (PrintPrice, bool) {
	printType = strings.TrimSpace(printType)
	sizeLabel = strings.TrimSpace(sizeLabel)
	for _, p := range c.PrintPrices {
		if strings.TrimSpace(p.PrintTypeName) == printType && strings.TrimSpace(p.SizeLabel) == sizeLabel {
			return p, true
		}
	}
	return PrintPrice{}, false
}

// DesignerPriceFor resolves a designer's pricing record, falling back to the
// required default record when the designer has none or a zero normal fee.
// The second return is false when not even a default record exists.
func (c CatalogSnapshot) DesignerPriceFor(designerID string) (DesignerPrice, bool) {
	var fallback DesignerPrice
	var hasFallback bool
	for _, d := range c.DesignerPrices {
		if d.DesignerID == designerID && d.NormalAmount > 0 {
			return d, true
		}
		if d.DesignerID == DefaultDesignerID {
			fallback = d
			hasFallback = true
		}
	}
	return fallback, hasFallback
}
