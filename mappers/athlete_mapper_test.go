// file: mappers/athlete_mapper_test.go
package mappers

import (
	"testing"
	"time"

	"github.com/gabimolocea/frvv-admin/models"
	"github.com/gabimolocea/frvv-admin/services"
)

func TestMapAthleteToItemResp(t *testing.T) {
	athlete := models.Athlete{
		ID:                 7,
		FirstName:          "Ion",
		LastName:           "Popescu",
		RegistrationNumber: "FRVV-A1B2C3D4E5F6",
		IsCoach:            true,
		CurrentGrade:       &models.Grade{Name: "Centura Neagra 1 DAN"},
		Club:               &models.Club{Name: "CS Dinamo"},
	}

	resp := MapAthleteToItemResp(athlete)
	if resp.FullName != "Ion Popescu" {
		t.Fatalf("full name = %q, want %q", resp.FullName, "Ion Popescu")
	}
	if resp.CurrentGrade != "Centura Neagra 1 DAN" {
		t.Fatalf("current grade = %q", resp.CurrentGrade)
	}
	if resp.ClubName != "CS Dinamo" {
		t.Fatalf("club name = %q", resp.ClubName)
	}
	if !resp.IsCoach {
		t.Fatal("is_coach should be true")
	}
}

func TestMapAthleteToItemRespNoRelations(t *testing.T) {
	athlete := models.Athlete{ID: 3, FirstName: "Maria", LastName: "Ionescu"}

	resp := MapAthleteToItemResp(athlete)
	if resp.CurrentGrade != "" || resp.ClubName != "" {
		t.Fatalf("expected empty relation fields, got grade=%q club=%q", resp.CurrentGrade, resp.ClubName)
	}
}

func TestMapMedicalVisaToResp(t *testing.T) {
	recent := time.Now().AddDate(0, 0, -30)
	old := time.Now().AddDate(0, 0, -200)

	valid := MapMedicalVisaToResp(models.MedicalVisa{ID: 1, IssuedDate: &recent})
	if !valid.IsValid || valid.Status != "available" {
		t.Fatalf("visa issued 30 days ago: valid=%v status=%q", valid.IsValid, valid.Status)
	}

	expired := MapMedicalVisaToResp(models.MedicalVisa{ID: 2, IssuedDate: &old})
	if expired.IsValid || expired.Status != "expired" {
		t.Fatalf("visa issued 200 days ago: valid=%v status=%q", expired.IsValid, expired.Status)
	}

	missing := MapMedicalVisaToResp(models.MedicalVisa{ID: 3})
	if missing.IsValid {
		t.Fatal("visa without issued date must be invalid")
	}
}

func TestMapAnnualVisaToResp(t *testing.T) {
	issued := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	resp := MapAnnualVisaToResp(models.AnnualVisa{
		ID:         5,
		IssuedDate: &issued,
		VisaStatus: models.VisaStatusAvailable,
	})
	if resp.Status != "available" || !resp.IsValid {
		t.Fatalf("status=%q valid=%v", resp.Status, resp.IsValid)
	}

	resp = MapAnnualVisaToResp(models.AnnualVisa{ID: 6, VisaStatus: models.VisaStatusNotAvailable})
	if resp.IsValid {
		t.Fatal("not_available visa must not be valid")
	}
}

func TestMapAthleteToDetailResp(t *testing.T) {
	issued := time.Now().AddDate(0, 0, -10)
	athlete := models.Athlete{
		ID:                 11,
		FirstName:          "Andrei",
		LastName:           "Georgescu",
		DateOfBirth:        time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC),
		RegistrationNumber: "FRVV-123456789ABC",
		Club:               &models.Club{Name: "CS Rapid"},
		City:               &models.City{Name: "Cluj-Napoca"},
		CurrentGrade:       &models.Grade{Name: "Centura Verde"},
	}
	medical := []models.MedicalVisa{{ID: 1, IssuedDate: &issued, HealthStatus: models.HealthStatusApproved}}
	annual := []models.AnnualVisa{{ID: 2, IssuedDate: &issued, VisaStatus: models.VisaStatusAvailable}}
	placements := []services.Placement{{CategoryID: 4, CategoryName: "Solo Seniori", Place: "1st"}}
	teams := []models.Team{{ID: 9, Name: "Andrei Georgescu - Ion Popescu"}}

	resp := MapAthleteToDetailResp(athlete, medical, annual, placements, teams)

	if resp.ClubName != "CS Rapid" || resp.CityName != "Cluj-Napoca" {
		t.Fatalf("relations not mapped: club=%q city=%q", resp.ClubName, resp.CityName)
	}
	if len(resp.MedicalVisas) != 1 || !resp.MedicalVisas[0].IsValid {
		t.Fatalf("medical visas mapped incorrectly: %+v", resp.MedicalVisas)
	}
	if len(resp.Placements) != 1 || resp.Placements[0].Place != "1st" {
		t.Fatalf("placements mapped incorrectly: %+v", resp.Placements)
	}
	if len(resp.Teams) != 1 || resp.Teams[0].ID != 9 {
		t.Fatalf("teams mapped incorrectly: %+v", resp.Teams)
	}
}

func TestMapAthleteToDetailRespEmptySlices(t *testing.T) {
	resp := MapAthleteToDetailResp(models.Athlete{ID: 1, FirstName: "Dan", LastName: "Mocanu"}, nil, nil, nil, nil)

	// 空关系序列化为 [] 而不是 null
	if resp.MedicalVisas == nil || resp.AnnualVisas == nil || resp.Placements == nil || resp.Teams == nil {
		t.Fatal("empty relations must be non-nil slices")
	}
}
