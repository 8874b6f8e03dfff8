// file: models/match.go
package models

import (
	"time"
)

// 自定义比赛轮次类型
type MatchType string

const (
	MatchTypeQualifications MatchType = "qualifications"
	MatchTypeSemiFinals     MatchType = "semi-finals"
	MatchTypeFinals         MatchType = "finals"
)

// Match 对抗赛。Name 与 WinnerID 均为派生字段：
// Name 每次保存时按红蓝方与项目重新生成；WinnerID 由裁判打分票数决出，
// 打分记录全部删除时必须清空。
type Match struct {
	ID          uint32    `gorm:"primarykey" json:"id"`
	CategoryID  uint32    `gorm:"not null;index" json:"category_id"`
	Category    Category  `gorm:"foreignKey:CategoryID" json:"-"`
	MatchType   MatchType `gorm:"type:enum('qualifications','semi-finals','finals');default:'qualifications'" json:"match_type"`
	RedCornerID uint32    `gorm:"not null" json:"red_corner_id"`
	RedCorner   Athlete   `gorm:"foreignKey:RedCornerID" json:"red_corner"`
	BlueCornerID uint32   `gorm:"not null" json:"blue_corner_id"`
	BlueCorner  Athlete   `gorm:"foreignKey:BlueCornerID" json:"blue_corner"`
	WinnerID    *uint32   `json:"winner_id,omitempty"`
	Winner      *Athlete  `gorm:"foreignKey:WinnerID" json:"winner,omitempty"`
	Name        string    `gorm:"size:255" json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Match) TableName() string {
	return "frvv_match"
}

// MatchReferee 比赛与执裁裁判（运动员）的关联表
type MatchReferee struct {
	ID        uint32  `gorm:"primarykey" json:"id"`
	MatchID   uint32  `gorm:"uniqueIndex:unique_match_referee;not null" json:"match_id"`
	AthleteID uint32  `gorm:"uniqueIndex:unique_match_referee;not null" json:"athlete_id"`
	Athlete   Athlete `gorm:"foreignKey:AthleteID" json:"athlete"`
}

func (MatchReferee) TableName() string {
	return "frvv_match_referees"
}
