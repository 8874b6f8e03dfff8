// file: models/category_athlete.go
package models

// CategoryAthlete 项目与运动员的报名关联表，带报名体重；
// 唯一索引保证同一运动员不能重复报名同一项目。
type CategoryAthlete struct {
	ID         uint32   `gorm:"primarykey" json:"id"`
	CategoryID uint32   `gorm:"uniqueIndex:unique_category_athlete;not null" json:"category_id"`
	AthleteID  uint32   `gorm:"uniqueIndex:unique_category_athlete;not null" json:"athlete_id"`
	Athlete    Athlete  `gorm:"foreignKey:AthleteID" json:"athlete"`
	Weight     *float64 `gorm:"type:decimal(5,2)" json:"weight,omitempty"`
}

func (CategoryAthlete) TableName() string {
	return "frvv_category_athletes"
}
