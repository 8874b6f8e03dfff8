// file: services/standings_service.go
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/gabimolocea/frvv-admin/database"
	"github.com/gabimolocea/frvv-admin/models"
)

// 项目积分榜：按裁判打分汇总出运动员/队伍总分并排名。
// 结果缓存在 Redis，打分或奖项变动时由控制器调用 InvalidateStandings 失效。

const standingsCacheTTL = 10 * time.Minute

// StandingEntry 积分榜单行
type StandingEntry struct {
	EntityID   uint32 `json:"entity_id"`
	EntityName string `json:"entity_name"`
	TotalScore int    `json:"total_score"`
	Rank       uint   `json:"rank"`
}

func standingsCacheKey(categoryID uint32) string {
	return fmt.Sprintf("standings:category:%d", categoryID)
}

// GetCategoryStandings 查询项目积分榜，优先走 Redis 缓存
func GetCategoryStandings(categoryID uint32) ([]StandingEntry, error) {
	key := standingsCacheKey(categoryID)

	cached, err := database.RDB.Get(database.Ctx, key).Result()
	if err == nil {
		var entries []StandingEntry
		if jsonErr := json.Unmarshal([]byte(cached), &entries); jsonErr == nil {
			return entries, nil
		}
		// 缓存内容损坏时直接回源重算
	}

	entries, err := computeStandings(categoryID)
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(entries); jsonErr == nil {
		database.RDB.Set(database.Ctx, key, payload, standingsCacheTTL)
	}
	return entries, nil
}

// InvalidateStandings 打分或奖项变动后清除对应缓存
func InvalidateStandings(categoryID uint32) {
	if err := database.RDB.Del(database.Ctx, standingsCacheKey(categoryID)).Err(); err != nil {
		log.Printf("Failed to invalidate standings cache for category %d: %v", categoryID, err)
	}
}

func computeStandings(categoryID uint32) ([]StandingEntry, error) {
	var cat models.Category
	if err := database.DB.First(&cat, categoryID).Error; err != nil {
		return nil, ErrNotFound
	}

	if cat.Type == models.CategoryTypeTeams {
		var scores []models.CategoryTeamScore
		if err := database.DB.Where("category_id = ?", categoryID).Find(&scores).Error; err != nil {
			return nil, err
		}
		totals := TeamTotals(scores)
		names := make(map[uint32]string, len(totals))
		for teamID := range totals {
			var team models.Team
			if err := database.DB.First(&team, teamID).Error; err != nil {
				return nil, err
			}
			names[teamID] = team.Name
		}
		return rankEntries(totals, names), nil
	}

	var scores []models.CategoryAthleteScore
	if err := database.DB.Where("category_id = ?", categoryID).Find(&scores).Error; err != nil {
		return nil, err
	}
	totals := AthleteTotals(scores)
	names := make(map[uint32]string, len(totals))
	for athleteID := range totals {
		var athlete models.Athlete
		if err := database.DB.First(&athlete, athleteID).Error; err != nil {
			return nil, err
		}
		names[athleteID] = athlete.FullName()
	}
	return rankEntries(totals, names), nil
}

// AthleteTotals 汇总每位运动员在项目中的裁判总分
func AthleteTotals(scores []models.CategoryAthleteScore) map[uint32]int {
	totals := make(map[uint32]int)
	for _, s := range scores {
		totals[s.AthleteID] += s.Score
	}
	return totals
}

// TeamTotals 汇总每支队伍在项目中的裁判总分
func TeamTotals(scores []models.CategoryTeamScore) map[uint32]int {
	totals := make(map[uint32]int)
	for _, s := range scores {
		totals[s.TeamID] += s.Score
	}
	return totals
}

// rankEntries 按总分降序排名，同分按ID升序保证输出稳定
func rankEntries(totals map[uint32]int, names map[uint32]string) []StandingEntry {
	entries := make([]StandingEntry, 0, len(totals))
	for id, total := range totals {
		entries = append(entries, StandingEntry{
			EntityID:   id,
			EntityName: names[id],
			TotalScore: total,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		return entries[i].EntityID < entries[j].EntityID
	})
	for i := range entries {
		entries[i].Rank = uint(i + 1)
	}
	return entries
}
