// file: models/city.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type City struct {
	ID        uint32         `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"size:100;unique;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (City) TableName() string {
	return "frvv_city"
}
