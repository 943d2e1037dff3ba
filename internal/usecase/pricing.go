package usecase

import (
	"errors"
	"strings"

	"atelier-service/internal/domain/entities"
)

var (
	ErrPrintPriceNotFound    = errors.New("print price not found")
	ErrShirtTypeMismatch     = errors.New("print price shirt type mismatch")
	ErrDesignerPriceNotFound = errors.New("designer price not found")
)

// bulkThreshold splits small orders (flat designer fee, every revision paid)
// from bulk orders (no designer fee, first two revisions free). A count of
// exactly 15 gets the designer fee and the free revision tier.
const bulkThreshold = 15

// freeRevisionsBulk is how many revisions a bulk order gets at no charge.
const freeRevisionsBulk = 2

// yardsPerSize estimates fabric consumption per garment by size label.
var yardsPerSize = map[string]float64{
	"XS":  0.8,
	"S":   1.0,
	"M":   1.2,
	"L":   1.4,
	"XL":  1.6,
	"XXL": 1.8,
}

const defaultYardsPerShirt = 1.2

// EstimateYardage is the single yardage-vs-stock policy shared by intake and
// assignment, so the two call sites cannot drift apart.
func EstimateYardage(sizes []entities.RequestedSize) float64 {
	total := 0.0
	for _, s := range sizes {
		per, ok := yardsPerSize[strings.ToUpper(strings.TrimSpace(s.Label))]
		if !ok {
			per = defaultYardsPerShirt
		}
		total += per * float64(s.Quantity)
	}
	return total
}

// PriceBreakdown is the pricing-engine output that seeds a billing record.
type PriceBreakdown struct {
	PrintFee       float64
	DesignerFee    float64
	RevisionFee    float64
	StartingAmount float64
}

// ComputeStartingAmount prices a design at client approval. It is a pure
// function of the request, the accumulated revision count and the injected
// catalog snapshot.
//
// Fee policy:
//   - print fee: unit print price per (print type, size) times quantity; the
//     matched entry's shirt type must equal the request's (trimmed).
//   - designer fee: flat NormalAmount (personal record, default fallback)
//     when the order is at most bulkThreshold shirts; bulk orders carry none.
//   - revision fee: bulk orders get freeRevisionsBulk revisions free and pay
//     RevisionFee for each one beyond that; small orders pay for every one.
func ComputeStartingAmount(req entities.DesignRequest, designerID string, revisionCount int, catalog entities.CatalogSnapshot) (PriceBreakdown, error) {
	var out PriceBreakdown

	for _, s := range req.Sizes {
		entry, ok := catalog.FindPrintPrice(req.PrintType, s.Label)
		if !ok {
			return PriceBreakdown{}, ErrPrintPriceNotFound
		}
		if strings.TrimSpace(entry.ShirtTypeName) != strings.TrimSpace(req.ShirtTypeName) {
			return PriceBreakdown{}, ErrShirtTypeMismatch
		}
		out.PrintFee += entry.Amount * float64(s.Quantity)
	}

	pricing, ok := catalog.DesignerPriceFor(designerID)
	if !ok {
		return PriceBreakdown{}, ErrDesignerPriceNotFound
	}

	shirtCount := req.ShirtCount()
	if shirtCount <= bulkThreshold {
		out.DesignerFee = pricing.NormalAmount
	}

	if shirtCount >= bulkThreshold {
		if paid := revisionCount - freeRevisionsBulk; paid > 0 {
			out.RevisionFee = float64(paid) * pricing.RevisionFee
		}
	} else {
		out.RevisionFee = float64(revisionCount) * pricing.RevisionFee
	}

	out.StartingAmount = out.PrintFee + out.DesignerFee + out.RevisionFee
	return out, nil
}

// PriceAddOnSizes prices the quantity component of an add-on against the
// current print-pricing table, by size label.
func PriceAddOnSizes(printType string, sizes []entities.AddOnSize, catalog entities.CatalogSnapshot) (float64, error) {
	total := 0.0
	for _, s := range sizes {
		entry, ok := catalog.FindPrintPrice(printType, s.Label)
		if !ok {
			return 0, ErrPrintPriceNotFound
		}
		total += entry.Amount * float64(s.Quantity)
	}
	return total, nil
}

// ApplyAddOnStatus resolves the design status after an add-on touches the
// order. Design work reopens for any add-on with a design component;
// additional units pull a finished order back into production. An order
// already in production stays put for a quantity-only add-on.
func ApplyAddOnStatus(current entities.DesignStatus, t entities.AddOnType) entities.DesignStatus {
	if t.HasDesign() {
		return entities.DesignStatusInProgress
	}
	switch current {
	case entities.DesignStatusCompleted, entities.DesignStatusPendingPickup:
		return entities.DesignStatusInProduction
	}
	return current
}
