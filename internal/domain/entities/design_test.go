package entities

import "testing"

func TestDesignStatusCanTransitionTo(t *testing.T) {
	allowed := []struct {
		from, to DesignStatus
	}{
		{DesignStatusInProgress, DesignStatusPendingRevision},
		{DesignStatusInProgress, DesignStatusApproved},
		{DesignStatusPendingRevision, DesignStatusInProgress},
		{DesignStatusApproved, DesignStatusInProduction},
		{DesignStatusInProduction, DesignStatusPendingPickup},
		{DesignStatusPendingPickup, DesignStatusCompleted},
		{DesignStatusCompleted, DesignStatusInProduction},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	forbidden := []struct {
		from, to DesignStatus
	}{
		{DesignStatusInProgress, DesignStatusInProduction},
		{DesignStatusInProgress, DesignStatusCompleted},
		{DesignStatusApproved, DesignStatusPendingPickup},
		{DesignStatusApproved, DesignStatusCompleted},
		{DesignStatusInProduction, DesignStatusCompleted},
		{DesignStatusCompleted, DesignStatusApproved},
		{DesignStatusPendingRevision, DesignStatusInProduction},
	}
	for _, tc := range forbidden {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}
