// file: models/category_team.go
package models

// CategoryTeam 项目与队伍的报名关联表；
// 唯一索引保证同一队伍不能重复报名同一项目。
type CategoryTeam struct {
	ID         uint32 `gorm:"primarykey" json:"id"`
	CategoryID uint32 `gorm:"uniqueIndex:unique_category_team;not null" json:"category_id"`
	TeamID     uint32 `gorm:"uniqueIndex:unique_category_team;not null" json:"team_id"`
	Team       Team   `gorm:"foreignKey:TeamID" json:"team"`
}

func (CategoryTeam) TableName() string {
	return "frvv_category_teams"
}
