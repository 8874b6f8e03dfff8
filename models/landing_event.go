// file: models/landing_event.go
package models

import (
	"time"
)

// LandingEvent 官网活动公告（非竞赛数据，与 Competition 无关）
type LandingEvent struct {
	ID                   uint32     `gorm:"primarykey" json:"id"`
	Title                string     `gorm:"size:200;not null" json:"title"`
	Slug                 string     `gorm:"size:200;unique;not null" json:"slug"`
	Description          string     `gorm:"type:longtext" json:"description"`
	StartDate            time.Time  `gorm:"not null" json:"start_date"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	Location             string     `gorm:"size:200;not null" json:"location"`
	Address              string     `gorm:"type:text" json:"address,omitempty"`
	FeaturedImage        string     `gorm:"size:255" json:"featured_image,omitempty"`
	IsFeatured           bool       `gorm:"not null;default:false" json:"is_featured"`
	RegistrationRequired bool       `gorm:"not null;default:false" json:"registration_required"`
	RegistrationLink     string     `gorm:"size:200" json:"registration_link,omitempty"`
	MaxParticipants      *int       `json:"max_participants,omitempty"`
	Price                *float64   `gorm:"type:decimal(10,2)" json:"price,omitempty"`
	Tags                 string     `gorm:"size:255" json:"tags,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

func (LandingEvent) TableName() string {
	return "frvv_landing_event"
}

// IsUpcoming 活动是否未开始
func (e LandingEvent) IsUpcoming() bool {
	return e.StartDate.After(time.Now())
}
