// file: dto/athlete.go
package dto

import "time"

// ========== 请求 DTO ==========

type CreateAthleteReq struct {
	FirstName        string     `json:"first_name" binding:"required"`
	LastName         string     `json:"last_name" binding:"required"`
	DateOfBirth      time.Time  `json:"date_of_birth" binding:"required" time_format:"2006-01-02"`
	Address          string     `json:"address"`
	MobileNumber     string     `json:"mobile_number"`
	ClubID           *uint32    `json:"club_id"`
	CityID           *uint32    `json:"city_id"`
	FederationRoleID *uint32    `json:"federation_role_id"`
	TitleID          *uint32    `json:"title_id"`
	RegisteredDate   *time.Time `json:"registered_date"`
	ExpirationDate   *time.Time `json:"expiration_date"`
	IsReferee        bool       `json:"is_referee"`
	ProfileImage     string     `json:"profile_image"`
}

// UpdateAthleteReq 指针字段表示"未提供则不修改"。
// 注意：不含 current_grade —— 派生字段不接受外部写入；
// IsCoach 是唯一例外，直接改动会镜像进所属俱乐部教练组。
type UpdateAthleteReq struct {
	FirstName        *string    `json:"first_name"`
	LastName         *string    `json:"last_name"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Address          *string    `json:"address"`
	MobileNumber     *string    `json:"mobile_number"`
	ClubID           *uint32    `json:"club_id"`
	CityID           *uint32    `json:"city_id"`
	FederationRoleID *uint32    `json:"federation_role_id"`
	TitleID          *uint32    `json:"title_id"`
	RegisteredDate   *time.Time `json:"registered_date"`
	ExpirationDate   *time.Time `json:"expiration_date"`
	IsCoach          *bool      `json:"is_coach"`
	IsReferee        *bool      `json:"is_referee"`
	ProfileImage     *string    `json:"profile_image"`
}

// ========== 响应 DTO ==========

type AthleteItemResp struct {
	ID                 uint32 `json:"id"`
	FullName           string `json:"full_name"`
	RegistrationNumber string `json:"registration_number"`
	CurrentGrade       string `json:"current_grade,omitempty"`
	ClubName           string `json:"club_name,omitempty"`
	IsCoach            bool   `json:"is_coach"`
	IsReferee          bool   `json:"is_referee"`
}

type VisaResp struct {
	ID         uint32     `json:"id"`
	IssuedDate *time.Time `json:"issued_date,omitempty"`
	Status     string     `json:"status"`
	IsValid    bool       `json:"is_valid"`
}

type PlacementResp struct {
	CategoryID   uint32 `json:"category_id"`
	CategoryName string `json:"category_name"`
	Place        string `json:"place"`
}

type AthleteTeamResp struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

type AthleteDetailResp struct {
	ID                 uint32          `json:"id"`
	FirstName          string          `json:"first_name"`
	LastName           string          `json:"last_name"`
	DateOfBirth        time.Time       `json:"date_of_birth"`
	RegistrationNumber string          `json:"registration_number"`
	Address            string          `json:"address,omitempty"`
	MobileNumber       string          `json:"mobile_number,omitempty"`
	ClubName           string          `json:"club_name,omitempty"`
	CityName           string          `json:"city_name,omitempty"`
	CurrentGrade       string          `json:"current_grade,omitempty"`
	FederationRole     string          `json:"federation_role,omitempty"`
	Title              string          `json:"title,omitempty"`
	RegisteredDate     *time.Time      `json:"registered_date,omitempty"`
	ExpirationDate     *time.Time      `json:"expiration_date,omitempty"`
	IsCoach            bool            `json:"is_coach"`
	IsReferee          bool            `json:"is_referee"`
	ProfileImage       string          `json:"profile_image,omitempty"`
	MedicalVisas       []VisaResp      `json:"medical_visas"`
	AnnualVisas        []VisaResp      `json:"annual_visas"`
	Placements         []PlacementResp `json:"placements"`
	Teams              []AthleteTeamResp `json:"teams"`
}
