// file: models/category_score.go
package models

// CategoryAthleteScore 项目内裁判给运动员的打分，
// 唯一索引保证同一裁判对同一运动员只能打一次分。
type CategoryAthleteScore struct {
	ID         uint32  `gorm:"primarykey" json:"id"`
	CategoryID uint32  `gorm:"uniqueIndex:unique_category_athlete_referee;not null" json:"category_id"`
	AthleteID  uint32  `gorm:"uniqueIndex:unique_category_athlete_referee;not null" json:"athlete_id"`
	RefereeID  uint32  `gorm:"uniqueIndex:unique_category_athlete_referee;not null" json:"referee_id"`
	Referee    Athlete `gorm:"foreignKey:RefereeID" json:"referee"`
	Score      int     `gorm:"not null;default:0" json:"score"`
}

func (CategoryAthleteScore) TableName() string {
	return "frvv_category_athlete_score"
}

// CategoryTeamScore 项目内裁判给队伍的打分
type CategoryTeamScore struct {
	ID         uint32  `gorm:"primarykey" json:"id"`
	CategoryID uint32  `gorm:"uniqueIndex:unique_category_team_referee;not null" json:"category_id"`
	TeamID     uint32  `gorm:"uniqueIndex:unique_category_team_referee;not null" json:"team_id"`
	RefereeID  uint32  `gorm:"uniqueIndex:unique_category_team_referee;not null" json:"referee_id"`
	Referee    Athlete `gorm:"foreignKey:RefereeID" json:"referee"`
	Score      int     `gorm:"not null;default:0" json:"score"`
}

func (CategoryTeamScore) TableName() string {
	return "frvv_category_team_score"
}
