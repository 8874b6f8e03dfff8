// file: models/title.go
package models

import "gorm.io/gorm"

// Title 运动员荣誉头衔（如 Maestru al Sportului）
type Title struct {
	ID        uint32         `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"size:100;unique;not null" json:"name"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Title) TableName() string {
	return "frvv_title"
}
