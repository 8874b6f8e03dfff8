// file: services/standings_service_test.go
package services

import (
	"testing"

	"github.com/gabimolocea/frvv-admin/models"
)

func TestAthleteTotalsSumsPerAthlete(t *testing.T) {
	scores := []models.CategoryAthleteScore{
		{AthleteID: 1, Score: 8},
		{AthleteID: 1, Score: 9},
		{AthleteID: 2, Score: 7},
	}
	totals := AthleteTotals(scores)
	if totals[1] != 17 {
		t.Fatalf("expected athlete 1 total 17, got %d", totals[1])
	}
	if totals[2] != 7 {
		t.Fatalf("expected athlete 2 total 7, got %d", totals[2])
	}
}

func TestTeamTotalsSumsPerTeam(t *testing.T) {
	scores := []models.CategoryTeamScore{
		{TeamID: 3, Score: 10},
		{TeamID: 3, Score: 10},
		{TeamID: 4, Score: 5},
	}
	totals := TeamTotals(scores)
	if totals[3] != 20 {
		t.Fatalf("expected team 3 total 20, got %d", totals[3])
	}
	if totals[4] != 5 {
		t.Fatalf("expected team 4 total 5, got %d", totals[4])
	}
}

func TestRankEntriesOrdersByScoreDesc(t *testing.T) {
	totals := map[uint32]int{1: 5, 2: 9, 3: 7}
	names := map[uint32]string{1: "A", 2: "B", 3: "C"}
	entries := rankEntries(totals, names)

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].EntityID != 2 || entries[0].Rank != 1 {
		t.Fatalf("expected entity 2 at rank 1, got entity %d rank %d", entries[0].EntityID, entries[0].Rank)
	}
	if entries[1].EntityID != 3 || entries[1].Rank != 2 {
		t.Fatalf("expected entity 3 at rank 2, got entity %d rank %d", entries[1].EntityID, entries[1].Rank)
	}
	if entries[2].EntityID != 1 || entries[2].Rank != 3 {
		t.Fatalf("expected entity 1 at rank 3, got entity %d rank %d", entries[2].EntityID, entries[2].Rank)
	}
}

func TestRankEntriesTieBreaksByID(t *testing.T) {
	totals := map[uint32]int{5: 9, 2: 9}
	names := map[uint32]string{5: "A", 2: "B"}
	entries := rankEntries(totals, names)
	if entries[0].EntityID != 2 {
		t.Fatalf("expected lower id first on tie, got entity %d", entries[0].EntityID)
	}
}
