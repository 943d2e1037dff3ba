package request

import (
	"errors"
	"testing"
)

func TestSubmitDesignRequestRequest_ToInput(t *testing.T) {
	r := SubmitDesignRequestRequest{
		ClientID:      " client-1 ",
		TextileID:     "tex-1",
		ShirtTypeName: " crew ",
		PrintType:     "screen",
		Sizes: []RequestedSizeRequest{
			{Label: " M ", Quantity: 10},
			{Label: "L", Quantity: 5},
		},
		PreferredDate: "2026-09-15T00:00:00Z",
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ClientID != "client-1" || in.ShirtTypeName != "crew" {
		t.Fatalf("expected trimmed fields, got %+v", in)
	}
	if len(in.Sizes) != 2 || in.Sizes[0].Label != "M" {
		t.Fatalf("unexpected sizes: %+v", in.Sizes)
	}
	if in.PreferredDate == nil || in.PreferredDate.Year() != 2026 {
		t.Fatalf("unexpected preferred date: %v", in.PreferredDate)
	}
}

func TestSubmitDesignRequestRequest_ToInput_BadDate(t *testing.T) {
	r := SubmitDesignRequestRequest{
		ClientID:      "client-1",
		TextileID:     "tex-1",
		ShirtTypeName: "crew",
		PrintType:     "screen",
		Sizes:         []RequestedSizeRequest{{Label: "M", Quantity: 1}},
		PreferredDate: "next friday",
	}

	_, err := r.ToInput()
	if !errors.Is(err, ErrInvalidPreferredDate) {
		t.Fatalf("expected ErrInvalidPreferredDate, got %v", err)
	}
}
