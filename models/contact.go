// file: models/contact.go
package models

import (
	"time"
)

// 自定义留言优先级类型
type MessagePriority string

const (
	PriorityLow    MessagePriority = "low"
	PriorityMedium MessagePriority = "medium"
	PriorityHigh   MessagePriority = "high"
	PriorityUrgent MessagePriority = "urgent"
)

// ContactMessage 官网访客留言
type ContactMessage struct {
	ID         uint32          `gorm:"primarykey" json:"id"`
	Name       string          `gorm:"size:100;not null" json:"name"`
	Email      string          `gorm:"size:100;not null" json:"email"`
	Phone      string          `gorm:"size:20" json:"phone,omitempty"`
	Subject    string          `gorm:"size:200;not null" json:"subject"`
	Message    string          `gorm:"type:text;not null" json:"message"`
	Priority   MessagePriority `gorm:"type:enum('low','medium','high','urgent');default:'medium'" json:"priority"`
	IsRead     bool            `gorm:"not null;default:false" json:"is_read"`
	IsReplied  bool            `gorm:"not null;default:false" json:"is_replied"`
	AdminNotes string          `gorm:"type:text" json:"admin_notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "frvv_contact_message"
}

// ContactInfo 联合会对外联系方式
type ContactInfo struct {
	ID                   uint32 `gorm:"primarykey" json:"id"`
	OrganizationName     string `gorm:"size:200;not null" json:"organization_name"`
	Address              string `gorm:"type:text;not null" json:"address"`
	Phone                string `gorm:"size:20;not null" json:"phone"`
	Email                string `gorm:"size:100;not null" json:"email"`
	Website              string `gorm:"size:200" json:"website,omitempty"`
	SocialMediaFacebook  string `gorm:"size:200" json:"social_media_facebook,omitempty"`
	SocialMediaInstagram string `gorm:"size:200" json:"social_media_instagram,omitempty"`
	BusinessHours        string `gorm:"type:text" json:"business_hours,omitempty"`
	IsActive             bool   `gorm:"not null;default:true" json:"is_active"`
}

func (ContactInfo) TableName() string {
	return "frvv_contact_info"
}
