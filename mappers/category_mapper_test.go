// file: mappers/category_mapper_test.go
package mappers

import (
	"testing"

	"github.com/gabimolocea/frvv-admin/models"
)

func TestMapCategoryToDetailRespSolo(t *testing.T) {
	first := uint32(4)
	cat := models.Category{
		ID:           1,
		Name:         "Solo Seniori Masculin",
		Type:         models.CategoryTypeSolo,
		Gender:       models.CategoryGenderMale,
		Competition:  models.Competition{Name: "Campionatul National 2026"},
		FirstPlaceID: &first,
		FirstPlace:   &models.Athlete{ID: first, FirstName: "Ion", LastName: "Popescu"},
	}
	weight := 72.5
	enrolled := []models.CategoryAthlete{
		{
			AthleteID: first,
			Athlete: models.Athlete{
				ID: first, FirstName: "Ion", LastName: "Popescu",
				Club: &models.Club{Name: "CS Dinamo"},
			},
			Weight: &weight,
		},
	}

	resp := MapCategoryToDetailResp(cat, enrolled, nil)

	if resp.CompetitionName != "Campionatul National 2026" {
		t.Fatalf("competition name = %q", resp.CompetitionName)
	}
	if resp.FirstPlaceName != "Ion Popescu" {
		t.Fatalf("first place = %q", resp.FirstPlaceName)
	}
	if len(resp.EnrolledAthletes) != 1 {
		t.Fatalf("enrolled athletes = %d, want 1", len(resp.EnrolledAthletes))
	}
	if resp.EnrolledAthletes[0].ClubName != "CS Dinamo" {
		t.Fatalf("club name = %q", resp.EnrolledAthletes[0].ClubName)
	}
	if resp.EnrolledAthletes[0].Weight == nil || *resp.EnrolledAthletes[0].Weight != 72.5 {
		t.Fatalf("weight = %v", resp.EnrolledAthletes[0].Weight)
	}
	if len(resp.EnrolledTeams) != 0 {
		t.Fatalf("solo category must not list teams, got %d", len(resp.EnrolledTeams))
	}
}

func TestMapCategoryToDetailRespTeams(t *testing.T) {
	teamID := uint32(9)
	cat := models.Category{
		ID:               2,
		Name:             "Echipe Mixt",
		Type:             models.CategoryTypeTeams,
		Gender:           models.CategoryGenderMixt,
		FirstPlaceTeamID: &teamID,
		FirstPlaceTeam:   &models.Team{ID: teamID, Name: "Ion Popescu - Maria Ionescu"},
		// 团体项目下个人奖项槽位即使残留也不渲染
		FirstPlace: &models.Athlete{FirstName: "Ion", LastName: "Popescu"},
	}
	enrolled := []models.CategoryTeam{
		{TeamID: teamID, Team: models.Team{ID: teamID, Name: "Ion Popescu - Maria Ionescu"}},
	}

	resp := MapCategoryToDetailResp(cat, nil, enrolled)

	if resp.FirstPlaceName != "Ion Popescu - Maria Ionescu" {
		t.Fatalf("first place = %q, want team name", resp.FirstPlaceName)
	}
	if len(resp.EnrolledTeams) != 1 || resp.EnrolledTeams[0].TeamID != teamID {
		t.Fatalf("enrolled teams mapped incorrectly: %+v", resp.EnrolledTeams)
	}
}
