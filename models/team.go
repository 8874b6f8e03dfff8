// file: models/team.go
package models

import (
	"time"
)

// Team 队伍。Name 为派生字段，由成员姓名按加入顺序拼接而成，
// 成员变动时由一致性规则重新生成；不允许存在成员集合完全相同的两支队伍。
type Team struct {
	ID        uint32       `gorm:"primarykey" json:"id"`
	Name      string       `gorm:"size:255" json:"name"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Members   []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

func (Team) TableName() string {
	return "frvv_team"
}

// TeamMember 队伍成员关联表，ID 递增即加入顺序
type TeamMember struct {
	ID        uint32  `gorm:"primarykey" json:"id"`
	TeamID    uint32  `gorm:"uniqueIndex:unique_team_athlete;not null" json:"team_id"`
	AthleteID uint32  `gorm:"uniqueIndex:unique_team_athlete;not null" json:"athlete_id"`
	Athlete   Athlete `gorm:"foreignKey:AthleteID" json:"athlete"`
}

func (TeamMember) TableName() string {
	return "frvv_team_members"
}
