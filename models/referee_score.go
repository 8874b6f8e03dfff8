// file: models/referee_score.go
package models

// 自定义裁判判胜方类型
type CornerVote string

const (
	VoteRed  CornerVote = "red"
	VoteBlue CornerVote = "blue"
)

// RefereeScore 单场比赛单个裁判的打分记录，每位裁判一行
type RefereeScore struct {
	ID              uint32      `gorm:"primarykey" json:"id"`
	MatchID         uint32      `gorm:"uniqueIndex:unique_match_referee_score;not null" json:"match_id"`
	RefereeID       uint32      `gorm:"uniqueIndex:unique_match_referee_score;not null" json:"referee_id"`
	Referee         Athlete     `gorm:"foreignKey:RefereeID" json:"referee"`
	RedCornerScore  int         `gorm:"not null;default:0" json:"red_corner_score"`
	BlueCornerScore int         `gorm:"not null;default:0" json:"blue_corner_score"`
	WinnerVote      *CornerVote `gorm:"type:enum('red','blue')" json:"winner_vote,omitempty"`
}

func (RefereeScore) TableName() string {
	return "frvv_referee_score"
}
