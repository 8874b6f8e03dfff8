// file: models/category.go
package models

import (
	"time"
)

// 自定义比赛项目类型与性别分组
type CategoryType string
type CategoryGender string

const (
	CategoryTypeSolo  CategoryType = "solo"
	CategoryTypeTeams CategoryType = "teams"
	CategoryTypeFight CategoryType = "fight"

	CategoryGenderMale   CategoryGender = "male"
	CategoryGenderFemale CategoryGender = "female"
	CategoryGenderMixt   CategoryGender = "mixt"
)

// Category 比赛项目。Type 决定报名主体：solo/fight 报名运动员，teams 报名队伍。
// 个人奖项字段与团体奖项字段互斥使用，修改 Type 会清空全部报名关系。
type Category struct {
	ID            uint32         `gorm:"primarykey" json:"id"`
	Name          string         `gorm:"size:100;not null" json:"name"`
	CompetitionID uint32         `gorm:"not null;index" json:"competition_id"`
	Competition   Competition    `gorm:"foreignKey:CompetitionID" json:"-"`
	Type          CategoryType   `gorm:"type:enum('solo','teams','fight');default:'solo'" json:"type"`
	Gender        CategoryGender `gorm:"type:enum('male','female','mixt');default:'mixt'" json:"gender"`

	FirstPlaceID  *uint32  `json:"first_place_id,omitempty"`
	FirstPlace    *Athlete `gorm:"foreignKey:FirstPlaceID" json:"first_place,omitempty"`
	SecondPlaceID *uint32  `json:"second_place_id,omitempty"`
	SecondPlace   *Athlete `gorm:"foreignKey:SecondPlaceID" json:"second_place,omitempty"`
	ThirdPlaceID  *uint32  `json:"third_place_id,omitempty"`
	ThirdPlace    *Athlete `gorm:"foreignKey:ThirdPlaceID" json:"third_place,omitempty"`

	FirstPlaceTeamID  *uint32 `json:"first_place_team_id,omitempty"`
	FirstPlaceTeam    *Team   `gorm:"foreignKey:FirstPlaceTeamID" json:"first_place_team,omitempty"`
	SecondPlaceTeamID *uint32 `json:"second_place_team_id,omitempty"`
	SecondPlaceTeam   *Team   `gorm:"foreignKey:SecondPlaceTeamID" json:"second_place_team,omitempty"`
	ThirdPlaceTeamID  *uint32 `json:"third_place_team_id,omitempty"`
	ThirdPlaceTeam    *Team   `gorm:"foreignKey:ThirdPlaceTeamID" json:"third_place_team,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "frvv_category"
}

// AwardedAthleteIDs 返回非空的个人奖项ID，顺序为一、二、三名
func (c Category) AwardedAthleteIDs() []uint32 {
	var ids []uint32
	for _, id := range []*uint32{c.FirstPlaceID, c.SecondPlaceID, c.ThirdPlaceID} {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

// AwardedTeamIDs 返回非空的团体奖项ID，顺序为一、二、三名
func (c Category) AwardedTeamIDs() []uint32 {
	var ids []uint32
	for _, id := range []*uint32{c.FirstPlaceTeamID, c.SecondPlaceTeamID, c.ThirdPlaceTeamID} {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}
