package usecase

import (
	"errors"
	"math"
	"testing"

	"atelier-service/internal/domain/entities"
)

func testCatalog() entities.CatalogSnapshot {
	return entities.CatalogSnapshot{
		PrintPrices: []entities.PrintPrice{
			{ID: "pp-1", PrintTypeName: "screen", SizeLabel: "S", ShirtTypeName: "crew", Amount: 100},
			{ID: "pp-2", PrintTypeName: "screen", SizeLabel: "M", ShirtTypeName: "crew", Amount: 100},
			{ID: "pp-3", PrintTypeName: "screen", SizeLabel: "L", ShirtTypeName: "crew", Amount: 100},
			{ID: "pp-4", PrintTypeName: "embroidery", SizeLabel: "M", ShirtTypeName: "polo", Amount: 150},
		},
		DesignerPrices: []entities.DesignerPrice{
			{ID: "dp-default", DesignerID: entities.DefaultDesignerID, NormalAmount: 500, RevisionFee: 50},
			{ID: "dp-1", DesignerID: "designer-1", NormalAmount: 800, RevisionFee: 80},
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeStartingAmount(t *testing.T) {
	t.Run("small order gets designer fee", func(t *testing.T) {
		req := entities.DesignRequest{
			PrintType:     "screen",
			ShirtTypeName: "crew",
			Sizes: []entities.RequestedSize{
				{Label: "M", Quantity: 10},
				{Label: "L", Quantity: 5},
			},
		}

		out, err := ComputeStartingAmount(req, "unknown-designer", 0, testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(out.PrintFee, 1500) {
			t.Fatalf("expected print fee 1500, got %v", out.PrintFee)
		}
		if !almostEqual(out.DesignerFee, 500) {
			t.Fatalf("expected default designer fee 500, got %v", out.DesignerFee)
		}
		if !almostEqual(out.StartingAmount, 2000) {
			t.Fatalf("expected starting amount 2000, got %v", out.StartingAmount)
		}
	})

	t.Run("personal designer record wins over default", func(t *testing.T) {
		req := entities.DesignRequest{
			PrintType:     "screen",
			ShirtTypeName: "crew",
			Sizes:         []entities.RequestedSize{{Label: "S", Quantity: 1}},
		}

		out, err := ComputeStartingAmount(req, "designer-1", 0, testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(out.DesignerFee, 800) {
			t.Fatalf("expected personal designer fee 800, got %v", out.DesignerFee)
		}
	})

	t.Run("bulk order drops designer fee and gets free revisions", func(t *testing.T) {
		req := entities.DesignRequest{
			PrintType:     "screen",
			ShirtTypeName: "crew",
			Sizes:         []entities.RequestedSize{{Label: "M", Quantity: 20}},
		}

		out, err := ComputeStartingAmount(req, "designer-1", 3, testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(out.DesignerFee, 0) {
			t.Fatalf("expected no designer fee on bulk, got %v", out.DesignerFee)
		}
		// 3 revisions, 2 free, 1 paid at the designer's rate.
		if !almostEqual(out.RevisionFee, 80) {
			t.Fatalf("expected revision fee 80, got %v", out.RevisionFee)
		}
	})

	t.Run("exactly at threshold carries both designer fee and free tier", func(t *testing.T) {
		req := entities.DesignRequest{
			PrintType:     "screen",
			ShirtTypeName: "crew",
			Sizes:         []entities.RequestedSize{{Label: "M", Quantity: 15}},
		}

		out, err := ComputeStartingAmount(req, "designer-1", 2, testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(out.DesignerFee, 800) {
			t.Fatalf("expected designer fee at threshold, got %v", out.DesignerFee)
		}
		if !almostEqual(out.RevisionFee, 0) {
			t.Fatalf("expected free revisions at threshold, got %v", out.RevisionFee)
		}
	})

	t.Run("small order pays every revision", func(t *testing.T) {
		req := entities.DesignRequest{
			PrintType:     "screen",
			ShirtTypeName: "crew",
			Sizes:         []entities.RequestedSize{{Label: "S", Quantity: 2}},
		}

		out, err := ComputeStartingAmount(req, "designer-1", 2, testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(out.RevisionFee, 160) {
			t.Fatalf("expected revision fee 160, got %v", out.RevisionFee)
		}
	})

	t.Run("missing print price", func(t *testing.T) {
		req := entities.DesignRequest{
			PrintType:     "screen",
			ShirtTypeName: "crew",
			Sizes:         []entities.RequestedSize{{Label: "XXL", Quantity: 1}},
		}

		_, err := ComputeStartingAmount(req, "designer-1", 0, testCatalog())
		if !errors.Is(err, ErrPrintPriceNotFound) {
			t.Fatalf("expected ErrPrintPriceNotFound, got %v", err)
		}
	})

	t.Run("shirt type mismatch", func(t *testing.T) {
		req := entities.DesignRequest{
			PrintType:     "embroidery",
			ShirtTypeName: "crew",
			Sizes:         []entities.RequestedSize{{Label: "M", Quantity: 1}},
		}

		_, err := ComputeStartingAmount(req, "designer-1", 0, testCatalog())
		if !errors.Is(err, ErrShirtTypeMismatch) {
			t.Fatalf("expected ErrShirtTypeMismatch, got %v", err)
		}
	})

	t.Run("no designer pricing at all", func(t *testing.T) {
		catalog := entities.CatalogSnapshot{
			PrintPrices: testCatalog().PrintPrices,
		}
		req := entities.DesignRequest{
			PrintType:     "screen",
			ShirtTypeName: "crew",
			Sizes:         []entities.RequestedSize{{Label: "S", Quantity: 1}},
		}

		_, err := ComputeStartingAmount(req, "designer-1", 0, catalog)
		if !errors.Is(err, ErrDesignerPriceNotFound) {
			t.Fatalf("expected ErrDesignerPriceNotFound, got %v", err)
		}
	})
}

func TestEstimateYardage(t *testing.T) {
	sizes := []entities.RequestedSize{
		{Label: "XS", Quantity: 1},
		{Label: "m", Quantity: 2},
		{Label: "XXL", Quantity: 1},
		{Label: "ONE-SIZE", Quantity: 1},
	}

	// 0.8 + 2*1.2 + 1.8 + 1.2 (unknown label falls back to the default).
	if got := EstimateYardage(sizes); !almostEqual(got, 6.2) {
		t.Fatalf("expected 6.2 yards, got %v", got)
	}

	if got := EstimateYardage(nil); got != 0 {
		t.Fatalf("expected 0 yards for empty sizes, got %v", got)
	}
}

func TestPriceAddOnSizes(t *testing.T) {
	t.Run("sums per size", func(t *testing.T) {
		total, err := PriceAddOnSizes("screen", []entities.AddOnSize{
			{Label: "S", Quantity: 2},
			{Label: "M", Quantity: 1},
		}, testCatalog())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(total, 300) {
			t.Fatalf("expected 300, got %v", total)
		}
	})

	t.Run("missing entry", func(t *testing.T) {
		_, err := PriceAddOnSizes("screen", []entities.AddOnSize{{Label: "XL", Quantity: 1}}, testCatalog())
		if !errors.Is(err, ErrPrintPriceNotFound) {
			t.Fatalf("expected ErrPrintPriceNotFound, got %v", err)
		}
	})
}

func TestApplyAddOnStatus(t *testing.T) {
	cases := []struct {
		name    string
		current entities.DesignStatus
		addOn   entities.AddOnType
		want    entities.DesignStatus
	}{
		{"design reopens work", entities.DesignStatusCompleted, entities.AddOnTypeDesign, entities.DesignStatusInProgress},
		{"design and quantity reopens work", entities.DesignStatusPendingPickup, entities.AddOnTypeDesignAndQuantity, entities.DesignStatusInProgress},
		{"quantity on completed goes back to production", entities.DesignStatusCompleted, entities.AddOnTypeQuantity, entities.DesignStatusInProduction},
		{"quantity on pending pickup goes back to production", entities.DesignStatusPendingPickup, entities.AddOnTypeQuantity, entities.DesignStatusInProduction},
		{"quantity during production is a no-op", entities.DesignStatusInProduction, entities.AddOnTypeQuantity, entities.DesignStatusInProduction},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyAddOnStatus(tc.current, tc.addOn); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
