// file: models/news_post.go
package models

import (
	"time"
)

// NewsPost 官网新闻文章
type NewsPost struct {
	ID               uint32    `gorm:"primarykey" json:"id"`
	Title            string    `gorm:"size:200;not null" json:"title"`
	Slug             string    `gorm:"size:200;unique;not null" json:"slug"`
	Content          string    `gorm:"type:longtext" json:"content"`
	Excerpt          string    `gorm:"type:text" json:"excerpt,omitempty"`
	FeaturedImage    string    `gorm:"size:255" json:"featured_image,omitempty"`
	FeaturedImageAlt string    `gorm:"size:100" json:"featured_image_alt,omitempty"`
	Published        bool      `gorm:"not null;default:false" json:"published"`
	Featured         bool      `gorm:"not null;default:false" json:"featured"`
	Author           string    `gorm:"size:100" json:"author,omitempty"`
	Tags             string    `gorm:"size:255" json:"tags,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (NewsPost) TableName() string {
	return "frvv_news_post"
}
