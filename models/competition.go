// file: models/competition.go
package models

import (
	"time"
)

type Competition struct {
	ID         uint32     `gorm:"primarykey" json:"id"`
	Name       string     `gorm:"size:100;not null" json:"name"`
	Place      string     `gorm:"size:100" json:"place,omitempty"`
	StartDate  *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate    *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Categories []Category `gorm:"foreignKey:CompetitionID" json:"categories,omitempty"`
}

func (Competition) TableName() string {
	return "frvv_competition"
}
