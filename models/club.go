// file: models/club.go
package models

import (
	"time"
)

type Club struct {
	ID           uint32    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"size:100;unique;not null" json:"name"`
	Logo         string    `gorm:"size:255" json:"logo,omitempty"`
	CityID       *uint32   `json:"city_id,omitempty"`
	City         *City     `gorm:"foreignKey:CityID" json:"city,omitempty"`
	Address      string    `gorm:"type:text" json:"address,omitempty"`
	MobileNumber string    `gorm:"size:15" json:"mobile_number,omitempty"`
	Website      string    `gorm:"size:200" json:"website,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Club) TableName() string {
	return "frvv_club"
}

// ClubCoach 俱乐部与教练（运动员）的关联表
type ClubCoach struct {
	ID        uint32  `gorm:"primarykey" json:"id"`
	ClubID    uint32  `gorm:"uniqueIndex:unique_club_coach;not null" json:"club_id"`
	AthleteID uint32  `gorm:"uniqueIndex:unique_club_coach;not null" json:"athlete_id"`
	Athlete   Athlete `gorm:"foreignKey:AthleteID" json:"athlete"`
}

func (ClubCoach) TableName() string {
	return "frvv_club_coaches"
}
