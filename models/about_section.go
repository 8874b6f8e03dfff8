// file: models/about_section.go
package models

import (
	"time"
)

// AboutSection 官网"关于我们"板块，按 SortOrder 排序展示
type AboutSection struct {
	ID           uint32    `gorm:"primarykey" json:"id"`
	SectionTitle string    `gorm:"size:100;not null" json:"section_title"`
	Content      string    `gorm:"type:longtext" json:"content"`
	Image        string    `gorm:"size:255" json:"image,omitempty"`
	ImageAlt     string    `gorm:"size:100" json:"image_alt,omitempty"`
	SortOrder    int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (AboutSection) TableName() string {
	return "frvv_about_section"
}
