// file: services/category_service.go
package services

import (
	"fmt"
	"sort"

	"github.com/gabimolocea/frvv-admin/models"
	"gorm.io/gorm"
)

// 项目报名与奖项校验。所有校验在持久化之前同步执行，
// 违反约束时整个保存事务回滚，不允许部分提交。

// ValidateAwards 纯校验函数：按项目类型检查奖项的重复颁发与未报名颁发。
// teams 类型只看团体奖项槽位，solo/fight 只看个人奖项槽位。
func ValidateAwards(cat models.Category, enrolledAthleteIDs, enrolledTeamIDs []uint32) error {
	if cat.Type == models.CategoryTypeTeams {
		return checkAwardSlots(cat.AwardedTeamIDs(), enrolledTeamIDs, "team")
	}
	return checkAwardSlots(cat.AwardedAthleteIDs(), enrolledAthleteIDs, "athlete")
}

func checkAwardSlots(awarded, enrolled []uint32, kind string) error {
	seen := make(map[uint32]bool, len(awarded))
	enrolledSet := make(map[uint32]bool, len(enrolled))
	for _, id := range enrolled {
		enrolledSet[id] = true
	}
	for _, id := range awarded {
		if seen[id] {
			return fmt.Errorf("%w: %s %d", ErrDuplicateAward, kind, id)
		}
		seen[id] = true
		if !enrolledSet[id] {
			return fmt.Errorf("%w: %s %d", ErrNotEnrolled, kind, id)
		}
	}
	return nil
}

// ValidateCategoryAwards 从数据库加载报名关系后执行奖项校验
func ValidateCategoryAwards(tx *gorm.DB, cat models.Category) error {
	athleteIDs, teamIDs, err := enrolledIDs(tx, cat.ID)
	if err != nil {
		return err
	}
	return ValidateAwards(cat, athleteIDs, teamIDs)
}

func enrolledIDs(tx *gorm.DB, categoryID uint32) (athleteIDs, teamIDs []uint32, err error) {
	if err = tx.Model(&models.CategoryAthlete{}).Where("category_id = ?", categoryID).
		Pluck("athlete_id", &athleteIDs).Error; err != nil {
		return nil, nil, err
	}
	if err = tx.Model(&models.CategoryTeam{}).Where("category_id = ?", categoryID).
		Pluck("team_id", &teamIDs).Error; err != nil {
		return nil, nil, err
	}
	return athleteIDs, teamIDs, nil
}

// awardClearColumns 六个奖项槽位列的整体置空更新
func awardClearColumns() map[string]interface{} {
	return map[string]interface{}{
		"first_place_id":       nil,
		"second_place_id":      nil,
		"third_place_id":       nil,
		"first_place_team_id":  nil,
		"second_place_team_id": nil,
		"third_place_team_id":  nil,
	}
}

// ClearAwards 清空内存中项目的全部奖项槽位（个人与团体两侧）
func ClearAwards(cat *models.Category) {
	cat.FirstPlaceID = nil
	cat.SecondPlaceID = nil
	cat.ThirdPlaceID = nil
	cat.FirstPlaceTeamID = nil
	cat.SecondPlaceTeamID = nil
	cat.ThirdPlaceTeamID = nil
}

// ResetEnrollments 项目类型变更时无条件清空两种报名关系与全部奖项。
// 旧类型下的参赛主体在新类型下一律无效，不做任何迁移。
func ResetEnrollments(tx *gorm.DB, categoryID uint32) error {
	if err := tx.Where("category_id = ?", categoryID).Delete(&models.CategoryAthlete{}).Error; err != nil {
		return err
	}
	if err := tx.Where("category_id = ?", categoryID).Delete(&models.CategoryTeam{}).Error; err != nil {
		return err
	}
	return tx.Model(&models.Category{}).Where("id = ?", categoryID).Updates(awardClearColumns()).Error
}

// SameComposition 判断两个成员集合是否完全相同（忽略顺序）
func SameComposition(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]uint32(nil), a...)
	bs := append([]uint32(nil), b...)
	sort.Slice(as, func(i, j int) bool { return as[i] < as[j] })
	sort.Slice(bs, func(i, j int) bool { return bs[i] < bs[j] })
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// CheckTeamComposition 全局唯一性：不允许两支队伍拥有完全相同的成员集合。
// excludeTeamID 用于更新场景下排除自身。
// 成员关系一次性取回后在内存中按队伍分组比较，避免逐队查询。
func CheckTeamComposition(tx *gorm.DB, memberIDs []uint32, excludeTeamID uint32) error {
	var teamIDs []uint32
	if err := tx.Model(&models.Team{}).Pluck("id", &teamIDs).Error; err != nil {
		return err
	}
	var rows []models.TeamMember
	if err := tx.Find(&rows).Error; err != nil {
		return err
	}

	byTeam := make(map[uint32][]uint32, len(teamIDs))
	for _, r := range rows {
		byTeam[r.TeamID] = append(byTeam[r.TeamID], r.AthleteID)
	}

	for _, teamID := range teamIDs {
		if teamID == excludeTeamID {
			continue
		}
		if SameComposition(memberIDs, byTeam[teamID]) {
			return fmt.Errorf("%w: team %d", ErrDuplicateTeamComposition, teamID)
		}
	}
	return nil
}

// Placement 读取时投影出的获奖记录，不落库
type Placement struct {
	CategoryID   uint32 `json:"category_id"`
	CategoryName string `json:"category_name"`
	Place        string `json:"place"`
}

// TeamPlacements 扫描队伍已报名项目的奖项槽位，投影出获奖名次
func TeamPlacements(tx *gorm.DB, teamID uint32) ([]Placement, error) {
	var enrollments []models.CategoryTeam
	if err := tx.Where("team_id = ?", teamID).Find(&enrollments).Error; err != nil {
		return nil, err
	}

	placements := make([]Placement, 0)
	for _, e := range enrollments {
		var cat models.Category
		if err := tx.First(&cat, e.CategoryID).Error; err != nil {
			return nil, err
		}
		if place := teamPlaceIn(cat, teamID); place != "" {
			placements = append(placements, Placement{
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
				Place:        place,
			})
		}
	}
	return placements, nil
}

// AthletePlacements 扫描运动员已报名项目的奖项槽位，投影出获奖名次
func AthletePlacements(tx *gorm.DB, athleteID uint32) ([]Placement, error) {
	var enrollments []models.CategoryAthlete
	if err := tx.Where("athlete_id = ?", athleteID).Find(&enrollments).Error; err != nil {
		return nil, err
	}

	placements := make([]Placement, 0)
	for _, e := range enrollments {
		var cat models.Category
		if err := tx.First(&cat, e.CategoryID).Error; err != nil {
			return nil, err
		}
		if place := athletePlaceIn(cat, athleteID); place != "" {
			placements = append(placements, Placement{
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
				Place:        place,
			})
		}
	}
	return placements, nil
}

func teamPlaceIn(cat models.Category, teamID uint32) string {
	switch {
	case cat.FirstPlaceTeamID != nil && *cat.FirstPlaceTeamID == teamID:
		return "1st"
	case cat.SecondPlaceTeamID != nil && *cat.SecondPlaceTeamID == teamID:
		return "2nd"
	case cat.ThirdPlaceTeamID != nil && *cat.ThirdPlaceTeamID == teamID:
		return "3rd"
	}
	return ""
}

func athletePlaceIn(cat models.Category, athleteID uint32) string {
	switch {
	case cat.FirstPlaceID != nil && *cat.FirstPlaceID == athleteID:
		return "1st"
	case cat.SecondPlaceID != nil && *cat.SecondPlaceID == athleteID:
		return "2nd"
	case cat.ThirdPlaceID != nil && *cat.ThirdPlaceID == athleteID:
		return "3rd"
	}
	return ""
}
