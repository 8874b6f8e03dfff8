// file: models/grade.go
package models

import (
	"time"
)

// 自定义段位类型
type GradeType string

const (
	GradeTypeInferior GradeType = "inferior"
	GradeTypeSuperior GradeType = "superior"
)

// Grade 技术段位，RankOrder 数值越大段位越高
type Grade struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	RankOrder int       `gorm:"not null;default:0" json:"rank_order"`
	GradeType GradeType `gorm:"type:enum('inferior','superior');default:'inferior'" json:"grade_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Grade) TableName() string {
	return "frvv_grade"
}
