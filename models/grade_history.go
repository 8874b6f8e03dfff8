// file: models/grade_history.go
package models

import (
	"time"
)

// 自定义考试评级类型
type GradeLevel string

const (
	GradeLevelGood GradeLevel = "good"
	GradeLevelBad  GradeLevel = "bad"
)

// GradeHistory 段位考试记录，创建后不可变；
// 运动员的 CurrentGrade 始终由本表重新计算得出。
type GradeHistory struct {
	ID                uint32     `gorm:"primarykey" json:"id"`
	AthleteID         uint32     `gorm:"not null;index" json:"athlete_id"`
	Athlete           Athlete    `gorm:"foreignKey:AthleteID" json:"-"`
	GradeID           uint32     `gorm:"not null" json:"grade_id"`
	Grade             Grade      `gorm:"foreignKey:GradeID" json:"grade"`
	ObtainedDate      time.Time  `gorm:"type:date;not null" json:"obtained_date"`
	Level             GradeLevel `gorm:"type:enum('good','bad');default:'good'" json:"level"`
	ExamDate          *time.Time `gorm:"type:date" json:"exam_date,omitempty"`
	ExamPlace         string     `gorm:"size:100" json:"exam_place,omitempty"`
	TechnicalDirector string     `gorm:"size:100" json:"technical_director,omitempty"`
	President         string     `gorm:"size:100" json:"president,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func (GradeHistory) TableName() string {
	return "frvv_grade_history"
}
