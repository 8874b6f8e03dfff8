// file: services/award_reset_test.go
package services

import (
	"testing"

	"github.com/gabimolocea/frvv-admin/models"
)

func TestClearAwardsEmptiesBothSides(t *testing.T) {
	cat := models.Category{
		Type:              models.CategoryTypeSolo,
		FirstPlaceID:      id(1),
		SecondPlaceID:     id(2),
		ThirdPlaceID:      id(3),
		FirstPlaceTeamID:  id(4),
		SecondPlaceTeamID: id(5),
		ThirdPlaceTeamID:  id(6),
	}

	ClearAwards(&cat)

	if got := cat.AwardedAthleteIDs(); len(got) != 0 {
		t.Fatalf("athlete award slots not cleared: %v", got)
	}
	if got := cat.AwardedTeamIDs(); len(got) != 0 {
		t.Fatalf("team award slots not cleared: %v", got)
	}
}

func TestAwardClearColumnsCoversAllSlots(t *testing.T) {
	columns := awardClearColumns()

	want := []string{
		"first_place_id", "second_place_id", "third_place_id",
		"first_place_team_id", "second_place_team_id", "third_place_team_id",
	}
	if len(columns) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(columns))
	}
	for _, col := range want {
		value, ok := columns[col]
		if !ok {
			t.Fatalf("missing column %q", col)
		}
		if value != nil {
			t.Fatalf("column %q must clear to nil, got %v", col, value)
		}
	}
}

// 移除成员后的剩余集合可能与已有队伍重合，必须命中唯一性检查
func TestSameCompositionAfterMemberRemoval(t *testing.T) {
	existingTeam := []uint32{10, 20}
	shrinkingTeam := []uint32{10, 20, 30}

	if SameComposition(shrinkingTeam, existingTeam) {
		t.Fatal("teams with different member counts must not match")
	}

	afterRemoval := shrinkingTeam[:2]
	if !SameComposition(afterRemoval, existingTeam) {
		t.Fatal("post-removal set identical to an existing team must match")
	}
}
