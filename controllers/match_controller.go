// file: controllers/match_controller.go
package controllers

import (
	"errors"
	"strconv"

	"github.com/gabimolocea/frvv-admin/database"
	"github.com/gabimolocea/frvv-admin/models"
	"github.com/gabimolocea/frvv-admin/services"
	"github.com/gabimolocea/frvv-admin/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateMatch(c *gin.Context) {
	var req struct {
		CategoryID   uint32           `json:"category_id" binding:"required"`
		MatchType    models.MatchType `json:"match_type"`
		RedCornerID  uint32           `json:"red_corner_id" binding:"required"`
		BlueCornerID uint32           `json:"blue_corner_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if req.RedCornerID == req.BlueCornerID {
		utils.Error(c, 3007, "红蓝方不能为同一名运动员")
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, req.CategoryID).Error; err != nil {
		utils.Error(c, 4004, "项目不存在")
		return
	}
	// 对抗赛只属于 fight 类型项目
	if cat.Type != models.CategoryTypeFight {
		utils.Error(c, 3004, "只有对抗项目可以安排比赛")
		return
	}

	for _, id := range []uint32{req.RedCornerID, req.BlueCornerID} {
		var enrolled int64
		database.DB.Model(&models.CategoryAthlete{}).
			Where("category_id = ? AND athlete_id = ?", req.CategoryID, id).Count(&enrolled)
		if enrolled == 0 {
			utils.Error(c, 3003, "对阵双方必须已报名该项目")
			return
		}
	}

	if req.MatchType == "" {
		req.MatchType = models.MatchTypeQualifications
	}

	match := models.Match{
		CategoryID:   req.CategoryID,
		MatchType:    req.MatchType,
		RedCornerID:  req.RedCornerID,
		BlueCornerID: req.BlueCornerID,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&match).Error; err != nil {
			return err
		}
		// 创建即生成派生名称
		return services.RefreshMatch(tx, match.ID)
	})
	if err != nil {
		utils.Error(c, 5001, "创建比赛失败: "+err.Error())
		return
	}

	database.DB.First(&match, match.ID)
	utils.Success(c, "Match created successfully", gin.H{
		"id":   match.ID,
		"name": match.Name,
	})
}

func GetMatchList(c *gin.Context) {
	categoryID := c.Query("category_id")

	var matches []models.Match
	db := database.DB.Model(&models.Match{}).
		Preload("RedCorner").Preload("BlueCorner").Preload("Winner")
	if categoryID != "" {
		db = db.Where("category_id = ?", categoryID)
	}
	db.Order("id asc").Find(&matches)

	utils.Success(c, "success", gin.H{"matches": matches})
}

func GetMatchDetail(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的比赛ID")
		return
	}

	var match models.Match
	if err := database.DB.
		Preload("RedCorner").Preload("BlueCorner").Preload("Winner").
		First(&match, matchID).Error; err != nil {
		utils.Error(c, 4004, "比赛不存在")
		return
	}

	var referees []models.MatchReferee
	database.DB.Preload("Athlete").Where("match_id = ?", matchID).Find(&referees)

	var scores []models.RefereeScore
	database.DB.Preload("Referee").Where("match_id = ?", matchID).Find(&scores)

	refereeRows := make([]gin.H, len(referees))
	for i, r := range referees {
		refereeRows[i] = gin.H{
			"athlete_id":   r.AthleteID,
			"athlete_name": r.Athlete.FullName(),
		}
	}

	utils.Success(c, "success", gin.H{
		"match":    match,
		"referees": refereeRows,
		"scores":   scores,
	})
}

func UpdateMatch(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的比赛ID")
		return
	}

	var req struct {
		MatchType    *models.MatchType `json:"match_type"`
		RedCornerID  *uint32           `json:"red_corner_id"`
		BlueCornerID *uint32           `json:"blue_corner_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var match models.Match
	if err := database.DB.First(&match, matchID).Error; err != nil {
		utils.Error(c, 4004, "比赛不存在")
		return
	}

	if req.MatchType != nil {
		match.MatchType = *req.MatchType
	}
	if req.RedCornerID != nil {
		match.RedCornerID = *req.RedCornerID
	}
	if req.BlueCornerID != nil {
		match.BlueCornerID = *req.BlueCornerID
	}
	if match.RedCornerID == match.BlueCornerID {
		utils.Error(c, 3007, "红蓝方不能为同一名运动员")
		return
	}
	// 对阵方变更时与创建时执行同样的报名校验
	if req.RedCornerID != nil || req.BlueCornerID != nil {
		for _, cornerID := range []uint32{match.RedCornerID, match.BlueCornerID} {
			var enrolled int64
			database.DB.Model(&models.CategoryAthlete{}).
				Where("category_id = ? AND athlete_id = ?", match.CategoryID, cornerID).Count(&enrolled)
			if enrolled == 0 {
				utils.Error(c, 3003, "对阵双方必须已报名该项目")
				return
			}
		}
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&match).Error; err != nil {
			return err
		}
		// 对阵或轮次变动后名称与胜者都要重算
		return services.RefreshMatch(tx, match.ID)
	})
	if err != nil {
		utils.Error(c, 5001, "更新比赛失败: "+err.Error())
		return
	}
	utils.Success(c, "Match updated successfully", nil)
}

func DeleteMatch(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的比赛ID")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", matchID).Delete(&models.RefereeScore{}).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", matchID).Delete(&models.MatchReferee{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Match{}, matchID).Error
	})
	if err != nil {
		utils.Error(c, 5000, "删除比赛失败: "+err.Error())
		return
	}
	utils.Success(c, "Match deleted successfully", nil)
}

// ========== 执裁裁判 ==========

func AddMatchReferee(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的比赛ID")
		return
	}

	var req struct {
		AthleteID uint32 `json:"athlete_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var match models.Match
	if err := database.DB.First(&match, matchID).Error; err != nil {
		utils.Error(c, 4004, "比赛不存在")
		return
	}

	var athlete models.Athlete
	if err := database.DB.First(&athlete, req.AthleteID).Error; err != nil {
		utils.Error(c, 4004, "运动员不存在")
		return
	}
	if !athlete.IsReferee {
		utils.Error(c, 3008, "该运动员不具备裁判资格")
		return
	}

	var count int64
	database.DB.Model(&models.MatchReferee{}).
		Where("match_id = ? AND athlete_id = ?", matchID, req.AthleteID).Count(&count)
	if count > 0 {
		utils.Error(c, 2010, "该裁判已分配到此比赛")
		return
	}

	row := models.MatchReferee{MatchID: uint32(matchID), AthleteID: req.AthleteID}
	if err := database.DB.Create(&row).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Referee assigned successfully", nil)
}

func RemoveMatchReferee(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的比赛ID")
		return
	}
	athleteID, err := strconv.Atoi(c.Param("athlete_id"))
	if err != nil {
		utils.Error(c, 1002, "无效的运动员ID")
		return
	}

	// 同时删除该裁判的打分记录并重算胜者
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("match_id = ? AND athlete_id = ?", matchID, athleteID).
			Delete(&models.MatchReferee{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return services.ErrNotFound
		}
		if err := tx.Where("match_id = ? AND referee_id = ?", matchID, athleteID).
			Delete(&models.RefereeScore{}).Error; err != nil {
			return err
		}
		return services.RefreshMatch(tx, uint32(matchID))
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.Error(c, 4004, "裁判分配记录不存在")
			return
		}
		utils.Error(c, 5001, "移除裁判失败: "+err.Error())
		return
	}
	utils.Success(c, "Referee removed successfully", nil)
}

// ========== 裁判打分 ==========

func SubmitRefereeScore(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的比赛ID")
		return
	}

	var req struct {
		RefereeID       uint32             `json:"referee_id" binding:"required"`
		RedCornerScore  int                `json:"red_corner_score"`
		BlueCornerScore int                `json:"blue_corner_score"`
		WinnerVote      *models.CornerVote `json:"winner_vote"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var match models.Match
	if err := database.DB.First(&match, matchID).Error; err != nil {
		utils.Error(c, 4004, "比赛不存在")
		return
	}

	var assigned int64
	database.DB.Model(&models.MatchReferee{}).
		Where("match_id = ? AND athlete_id = ?", matchID, req.RefereeID).Count(&assigned)
	if assigned == 0 {
		utils.Error(c, 3008, "该裁判未分配到此比赛")
		return
	}

	// 每位裁判一行，重复提交视为修改
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var score models.RefereeScore
		findErr := tx.Where("match_id = ? AND referee_id = ?", matchID, req.RefereeID).
			First(&score).Error
		if findErr == nil {
			score.RedCornerScore = req.RedCornerScore
			score.BlueCornerScore = req.BlueCornerScore
			score.WinnerVote = req.WinnerVote
			if err := tx.Save(&score).Error; err != nil {
				return err
			}
		} else if errors.Is(findErr, gorm.ErrRecordNotFound) {
			score = models.RefereeScore{
				MatchID:         uint32(matchID),
				RefereeID:       req.RefereeID,
				RedCornerScore:  req.RedCornerScore,
				BlueCornerScore: req.BlueCornerScore,
				WinnerVote:      req.WinnerVote,
			}
			if err := tx.Create(&score).Error; err != nil {
				return err
			}
		} else {
			return findErr
		}
		return services.RefreshMatch(tx, uint32(matchID))
	})
	if err != nil {
		utils.Error(c, 5001, "打分失败: "+err.Error())
		return
	}
	utils.Success(c, "Referee score submitted successfully", nil)
}

func DeleteRefereeScore(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的比赛ID")
		return
	}
	refereeID, err := strconv.Atoi(c.Param("referee_id"))
	if err != nil {
		utils.Error(c, 1002, "无效的裁判ID")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("match_id = ? AND referee_id = ?", matchID, refereeID).
			Delete(&models.RefereeScore{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return services.ErrNotFound
		}
		// 打分清空后胜者可能需要置空
		return services.RefreshMatch(tx, uint32(matchID))
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.Error(c, 4004, "打分记录不存在")
			return
		}
		utils.Error(c, 5001, "删除打分失败: "+err.Error())
		return
	}
	utils.Success(c, "Referee score deleted successfully", nil)
}
