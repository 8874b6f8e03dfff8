// file: services/consistency_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/gabimolocea/frvv-admin/models"
	"gorm.io/gorm"
)

// 本文件实现全部派生字段的一致性规则。
// 每条规则拆成两层：纯计算函数（输入关系快照，输出字段值）和事务内应用函数。
// 应用函数在目标状态已满足时不产生任何写操作，保证幂等并阻断互触发循环。

// TeamNameSeparator 队名拼接分隔符
const TeamNameSeparator = " - "

// ========== 纯计算函数 ==========

// CurrentGradeID 取段位历史中 RankOrder 最高的一条，
// 并列时取 ObtainedDate 最近的；无历史返回 nil。
func CurrentGradeID(history []models.GradeHistory) *uint32 {
	var best *models.GradeHistory
	for i := range history {
		h := &history[i]
		if best == nil {
			best = h
			continue
		}
		if h.Grade.RankOrder > best.Grade.RankOrder {
			best = h
		} else if h.Grade.RankOrder == best.Grade.RankOrder && h.ObtainedDate.After(best.ObtainedDate) {
			best = h
		}
	}
	if best == nil {
		return nil
	}
	id := best.GradeID
	return &id
}

// TeamNameFor 按成员加入顺序拼接姓名生成队名
func TeamNameFor(members []models.TeamMember) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Athlete.FullName())
	}
	return strings.Join(names, TeamNameSeparator)
}

// MatchWinnerID 统计裁判判胜票数决出胜者：
// 红方票多返回红方，蓝方票多返回蓝方，平票或无打分返回 nil
func MatchWinnerID(m models.Match, scores []models.RefereeScore) *uint32 {
	redVotes, blueVotes := 0, 0
	for _, s := range scores {
		if s.WinnerVote == nil {
			continue
		}
		switch *s.WinnerVote {
		case models.VoteRed:
			redVotes++
		case models.VoteBlue:
			blueVotes++
		}
	}
	if redVotes > blueVotes {
		id := m.RedCornerID
		return &id
	}
	if blueVotes > redVotes {
		id := m.BlueCornerID
		return &id
	}
	return nil
}

// MatchDisplayName 生成比赛名称："{红方} vs {蓝方} ({轮次}) - {项目名}"
func MatchDisplayName(red, blue models.Athlete, matchType models.MatchType, categoryName string) string {
	return fmt.Sprintf("%s vs %s (%s) - %s", red.FirstName, blue.FirstName, matchType, categoryName)
}

// ========== 事务内应用函数 ==========

// RefreshCurrentGrade 重算并回写运动员的当前段位
func RefreshCurrentGrade(tx *gorm.DB, athleteID uint32) error {
	var athlete models.Athlete
	if err := tx.First(&athlete, athleteID).Error; err != nil {
		return fmt.Errorf("%w: athlete %d: %v", ErrRecompute, athleteID, err)
	}

	var history []models.GradeHistory
	if err := tx.Preload("Grade").Where("athlete_id = ?", athleteID).Find(&history).Error; err != nil {
		return fmt.Errorf("%w: grade history of athlete %d: %v", ErrRecompute, athleteID, err)
	}

	newGradeID := CurrentGradeID(history)
	if equalID(athlete.CurrentGradeID, newGradeID) {
		return nil // 已一致，避免多余写入
	}
	if err := tx.Model(&athlete).Update("current_grade_id", newGradeID).Error; err != nil {
		return fmt.Errorf("%w: update current grade of athlete %d: %v", ErrRecompute, athleteID, err)
	}
	return nil
}

// RefreshIsCoach 重算 is_coach：运动员至少属于一家俱乐部的教练组即为 true。
// 必须检查全部俱乐部，而不只是刚发生变动的那家。
func RefreshIsCoach(tx *gorm.DB, athleteID uint32) error {
	var athlete models.Athlete
	if err := tx.First(&athlete, athleteID).Error; err != nil {
		return fmt.Errorf("%w: athlete %d: %v", ErrRecompute, athleteID, err)
	}

	var count int64
	if err := tx.Model(&models.ClubCoach{}).Where("athlete_id = ?", athleteID).Count(&count).Error; err != nil {
		return fmt.Errorf("%w: coach memberships of athlete %d: %v", ErrRecompute, athleteID, err)
	}

	isCoach := count > 0
	if athlete.IsCoach == isCoach {
		return nil
	}
	if err := tx.Model(&athlete).Update("is_coach", isCoach).Error; err != nil {
		return fmt.Errorf("%w: update is_coach of athlete %d: %v", ErrRecompute, athleteID, err)
	}
	return nil
}

// MirrorCoachFlag 运动员侧直接改动 is_coach 时，镜像到其所属俱乐部的教练组。
// 只处理 athlete.club 这一家俱乐部；写入前先查当前成员关系，防止与
// RefreshIsCoach 互相触发。
func MirrorCoachFlag(tx *gorm.DB, athlete *models.Athlete) error {
	if athlete.ClubID == nil {
		return nil
	}

	var count int64
	if err := tx.Model(&models.ClubCoach{}).
		Where("club_id = ? AND athlete_id = ?", *athlete.ClubID, athlete.ID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("%w: coach membership of athlete %d: %v", ErrRecompute, athlete.ID, err)
	}

	if athlete.IsCoach {
		if count > 0 {
			return nil
		}
		entry := models.ClubCoach{ClubID: *athlete.ClubID, AthleteID: athlete.ID}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("%w: add athlete %d to club coaches: %v", ErrRecompute, athlete.ID, err)
		}
		return nil
	}

	if count == 0 {
		return nil
	}
	if err := tx.Where("club_id = ? AND athlete_id = ?", *athlete.ClubID, athlete.ID).
		Delete(&models.ClubCoach{}).Error; err != nil {
		return fmt.Errorf("%w: remove athlete %d from club coaches: %v", ErrRecompute, athlete.ID, err)
	}
	return nil
}

// RefreshTeamName 成员变动后重新生成队名
func RefreshTeamName(tx *gorm.DB, teamID uint32) error {
	var team models.Team
	if err := tx.First(&team, teamID).Error; err != nil {
		return fmt.Errorf("%w: team %d: %v", ErrRecompute, teamID, err)
	}

	var members []models.TeamMember
	if err := tx.Preload("Athlete").Where("team_id = ?", teamID).Order("id asc").Find(&members).Error; err != nil {
		return fmt.Errorf("%w: members of team %d: %v", ErrRecompute, teamID, err)
	}

	newName := TeamNameFor(members)
	if team.Name == newName {
		return nil
	}
	if err := tx.Model(&team).Update("name", newName).Error; err != nil {
		return fmt.Errorf("%w: update name of team %d: %v", ErrRecompute, teamID, err)
	}
	return nil
}

// RefreshMatch 重算比赛的名称与胜者。裁判打分新增、修改、删除后必须调用；
// 打分记录清空时胜者强制置空。
func RefreshMatch(tx *gorm.DB, matchID uint32) error {
	var match models.Match
	if err := tx.Preload("RedCorner").Preload("BlueCorner").Preload("Category").
		First(&match, matchID).Error; err != nil {
		return fmt.Errorf("%w: match %d: %v", ErrRecompute, matchID, err)
	}

	var scores []models.RefereeScore
	if err := tx.Where("match_id = ?", matchID).Find(&scores).Error; err != nil {
		return fmt.Errorf("%w: referee scores of match %d: %v", ErrRecompute, matchID, err)
	}

	newName := MatchDisplayName(match.RedCorner, match.BlueCorner, match.MatchType, match.Category.Name)
	newWinnerID := MatchWinnerID(match, scores)

	if match.Name == newName && equalID(match.WinnerID, newWinnerID) {
		return nil
	}
	updates := map[string]interface{}{
		"name":      newName,
		"winner_id": newWinnerID,
	}
	if err := tx.Model(&match).Updates(updates).Error; err != nil {
		return fmt.Errorf("%w: update match %d: %v", ErrRecompute, matchID, err)
	}
	return nil
}

func equalID(a, b *uint32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
