// file: mappers/athlete_mapper.go
package mappers

import (
	"github.com/gabimolocea/frvv-admin/dto"
	"github.com/gabimolocea/frvv-admin/models"
	"github.com/gabimolocea/frvv-admin/services"
)

func MapAthleteToItemResp(a models.Athlete) dto.AthleteItemResp {
	resp := dto.AthleteItemResp{
		ID:                 a.ID,
		FullName:           a.FullName(),
		RegistrationNumber: a.RegistrationNumber,
		IsCoach:            a.IsCoach,
		IsReferee:          a.IsReferee,
	}
	if a.CurrentGrade != nil {
		resp.CurrentGrade = a.CurrentGrade.Name
	}
	if a.Club != nil {
		resp.ClubName = a.Club.Name
	}
	return resp
}

func MapMedicalVisaToResp(v models.MedicalVisa) dto.VisaResp {
	status := "expired"
	if v.IsValid() {
		status = "available"
	}
	return dto.VisaResp{
		ID:         v.ID,
		IssuedDate: v.IssuedDate,
		Status:     status,
		IsValid:    v.IsValid(),
	}
}

func MapAnnualVisaToResp(v models.AnnualVisa) dto.VisaResp {
	return dto.VisaResp{
		ID:         v.ID,
		IssuedDate: v.IssuedDate,
		Status:     string(v.VisaStatus),
		IsValid:    v.VisaStatus == models.VisaStatusAvailable,
	}
}

func MapAthleteToDetailResp(
	a models.Athlete,
	medicalVisas []models.MedicalVisa,
	annualVisas []models.AnnualVisa,
	placements []services.Placement,
	teams []models.Team,
) dto.AthleteDetailResp {
	resp := dto.AthleteDetailResp{
		ID:                 a.ID,
		FirstName:          a.FirstName,
		LastName:           a.LastName,
		DateOfBirth:        a.DateOfBirth,
		RegistrationNumber: a.RegistrationNumber,
		Address:            a.Address,
		MobileNumber:       a.MobileNumber,
		RegisteredDate:     a.RegisteredDate,
		ExpirationDate:     a.ExpirationDate,
		IsCoach:            a.IsCoach,
		IsReferee:          a.IsReferee,
		ProfileImage:       a.ProfileImage,
		MedicalVisas:       make([]dto.VisaResp, 0, len(medicalVisas)),
		AnnualVisas:        make([]dto.VisaResp, 0, len(annualVisas)),
		Placements:         make([]dto.PlacementResp, 0, len(placements)),
		Teams:              make([]dto.AthleteTeamResp, 0, len(teams)),
	}
	if a.Club != nil {
		resp.ClubName = a.Club.Name
	}
	if a.City != nil {
		resp.CityName = a.City.Name
	}
	if a.CurrentGrade != nil {
		resp.CurrentGrade = a.CurrentGrade.Name
	}
	if a.FederationRole != nil {
		resp.FederationRole = a.FederationRole.Name
	}
	if a.Title != nil {
		resp.Title = a.Title.Name
	}
	for _, v := range medicalVisas {
		resp.MedicalVisas = append(resp.MedicalVisas, MapMedicalVisaToResp(v))
	}
	for _, v := range annualVisas {
		resp.AnnualVisas = append(resp.AnnualVisas, MapAnnualVisaToResp(v))
	}
	for _, p := range placements {
		resp.Placements = append(resp.Placements, dto.PlacementResp{
			CategoryID:   p.CategoryID,
			CategoryName: p.CategoryName,
			Place:        p.Place,
		})
	}
	for _, t := range teams {
		resp.Teams = append(resp.Teams, dto.AthleteTeamResp{ID: t.ID, Name: t.Name})
	}
	return resp
}
