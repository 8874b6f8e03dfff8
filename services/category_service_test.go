// file: services/category_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/gabimolocea/frvv-admin/models"
)

func id(v uint32) *uint32 {
	return &v
}

func TestValidateAwardsSoloDuplicate(t *testing.T) {
	cat := models.Category{
		Type:          models.CategoryTypeFight,
		FirstPlaceID:  id(1),
		SecondPlaceID: id(1),
	}
	err := ValidateAwards(cat, []uint32{1, 2}, nil)
	if !errors.Is(err, ErrDuplicateAward) {
		t.Fatalf("expected ErrDuplicateAward, got %v", err)
	}
}

func TestValidateAwardsSoloNotEnrolled(t *testing.T) {
	cat := models.Category{
		Type:         models.CategoryTypeSolo,
		FirstPlaceID: id(9),
	}
	err := ValidateAwards(cat, []uint32{1, 2}, nil)
	if !errors.Is(err, ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
}

func TestValidateAwardsTeamsNotEnrolled(t *testing.T) {
	cat := models.Category{
		Type:             models.CategoryTypeTeams,
		FirstPlaceTeamID: id(2),
	}
	err := ValidateAwards(cat, nil, []uint32{1})
	if !errors.Is(err, ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
}

func TestValidateAwardsTeamsDuplicate(t *testing.T) {
	cat := models.Category{
		Type:              models.CategoryTypeTeams,
		FirstPlaceTeamID:  id(1),
		SecondPlaceTeamID: id(1),
	}
	err := ValidateAwards(cat, nil, []uint32{1, 2})
	if !errors.Is(err, ErrDuplicateAward) {
		t.Fatalf("expected ErrDuplicateAward, got %v", err)
	}
}

func TestValidateAwardsAllEnrolledPasses(t *testing.T) {
	cat := models.Category{
		Type:          models.CategoryTypeFight,
		FirstPlaceID:  id(1),
		SecondPlaceID: id(2),
		ThirdPlaceID:  id(3),
	}
	if err := ValidateAwards(cat, []uint32{1, 2, 3}, nil); err != nil {
		t.Fatalf("expected valid awards, got %v", err)
	}
}

func TestValidateAwardsTeamsIgnoresAthleteSlots(t *testing.T) {
	// teams 类型只校验团体奖项槽位，残留的个人奖项不应参与校验
	cat := models.Category{
		Type:             models.CategoryTypeTeams,
		FirstPlaceID:     id(99),
		FirstPlaceTeamID: id(1),
	}
	if err := ValidateAwards(cat, nil, []uint32{1}); err != nil {
		t.Fatalf("expected valid awards, got %v", err)
	}
}

func TestValidateAwardsEmptySlotsPass(t *testing.T) {
	cat := models.Category{Type: models.CategoryTypeSolo}
	if err := ValidateAwards(cat, nil, nil); err != nil {
		t.Fatalf("expected no error with empty award slots, got %v", err)
	}
}

func TestSameComposition(t *testing.T) {
	cases := []struct {
		name string
		a, b []uint32
		want bool
	}{
		{"identical", []uint32{1, 2, 3}, []uint32{1, 2, 3}, true},
		{"different order", []uint32{3, 1, 2}, []uint32{1, 2, 3}, true},
		{"different members", []uint32{1, 2}, []uint32{1, 3}, false},
		{"different size", []uint32{1, 2}, []uint32{1, 2, 3}, false},
		{"both empty", nil, nil, true},
	}
	for _, tc := range cases {
		if got := SameComposition(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestTeamPlaceIn(t *testing.T) {
	cat := models.Category{
		FirstPlaceTeamID:  id(1),
		SecondPlaceTeamID: id(2),
		ThirdPlaceTeamID:  id(3),
	}
	if got := teamPlaceIn(cat, 2); got != "2nd" {
		t.Fatalf("expected 2nd, got %q", got)
	}
	if got := teamPlaceIn(cat, 9); got != "" {
		t.Fatalf("expected empty place for unawarded team, got %q", got)
	}
}

func TestAthletePlaceIn(t *testing.T) {
	cat := models.Category{FirstPlaceID: id(5)}
	if got := athletePlaceIn(cat, 5); got != "1st" {
		t.Fatalf("expected 1st, got %q", got)
	}
	if got := athletePlaceIn(cat, 6); got != "" {
		t.Fatalf("expected empty place for unawarded athlete, got %q", got)
	}
}
