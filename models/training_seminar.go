// file: models/training_seminar.go
package models

import (
	"time"
)

type TrainingSeminar struct {
	ID        uint32     `gorm:"primarykey" json:"id"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	StartDate *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Place     string     `gorm:"size:100;not null" json:"place"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (TrainingSeminar) TableName() string {
	return "frvv_training_seminar"
}

// SeminarAthlete 培训研讨会与运动员的关联表
type SeminarAthlete struct {
	ID        uint32  `gorm:"primarykey" json:"id"`
	SeminarID uint32  `gorm:"uniqueIndex:unique_seminar_athlete;not null" json:"seminar_id"`
	AthleteID uint32  `gorm:"uniqueIndex:unique_seminar_athlete;not null" json:"athlete_id"`
	Athlete   Athlete `gorm:"foreignKey:AthleteID" json:"athlete"`
}

func (SeminarAthlete) TableName() string {
	return "frvv_seminar_athletes"
}
