// file: models/athlete.go
package models

import (
	"fmt"
	"time"
)

// Athlete 运动员档案。CurrentGrade 与 IsCoach 为派生字段，
// 由 services 中的一致性规则维护，任何接口都不允许直接写入。
type Athlete struct {
	ID                 uint32          `gorm:"primarykey" json:"id"`
	FirstName          string          `gorm:"size:100;not null" json:"first_name"`
	LastName           string          `gorm:"size:100;not null" json:"last_name"`
	DateOfBirth        time.Time       `gorm:"type:date;not null" json:"date_of_birth"`
	RegistrationNumber string          `gorm:"size:30;unique;not null" json:"registration_number"`
	Address            string          `gorm:"type:text" json:"address,omitempty"`
	MobileNumber       string          `gorm:"size:15" json:"mobile_number,omitempty"`
	ClubID             *uint32         `json:"club_id,omitempty"`
	Club               *Club           `gorm:"foreignKey:ClubID" json:"club,omitempty"`
	CityID             *uint32         `json:"city_id,omitempty"`
	City               *City           `gorm:"foreignKey:CityID" json:"city,omitempty"`
	CurrentGradeID     *uint32         `json:"current_grade_id,omitempty"`
	CurrentGrade       *Grade          `gorm:"foreignKey:CurrentGradeID" json:"current_grade,omitempty"`
	FederationRoleID   *uint32         `json:"federation_role_id,omitempty"`
	FederationRole     *FederationRole `gorm:"foreignKey:FederationRoleID" json:"federation_role,omitempty"`
	TitleID            *uint32         `json:"title_id,omitempty"`
	Title              *Title          `gorm:"foreignKey:TitleID" json:"title,omitempty"`
	RegisteredDate     *time.Time      `gorm:"type:date" json:"registered_date,omitempty"`
	ExpirationDate     *time.Time      `gorm:"type:date" json:"expiration_date,omitempty"`
	IsCoach            bool            `gorm:"not null;default:false" json:"is_coach"`
	IsReferee          bool            `gorm:"not null;default:false" json:"is_referee"`
	ProfileImage       string          `gorm:"size:255" json:"profile_image,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (Athlete) TableName() string {
	return "frvv_athlete"
}

// FullName 拼接姓名，队名与比赛名生成时使用
func (a Athlete) FullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}
