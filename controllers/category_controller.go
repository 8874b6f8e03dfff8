// file: controllers/category_controller.go
package controllers

import (
	"errors"
	"strconv"

	"github.com/gabimolocea/frvv-admin/database"
	"github.com/gabimolocea/frvv-admin/dto"
	"github.com/gabimolocea/frvv-admin/mappers"
	"github.com/gabimolocea/frvv-admin/models"
	"github.com/gabimolocea/frvv-admin/services"
	"github.com/gabimolocea/frvv-admin/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var comp models.Competition
	if err := database.DB.First(&comp, req.CompetitionID).Error; err != nil {
		utils.Error(c, 4004, "比赛不存在")
		return
	}

	if req.Type == "" {
		req.Type = models.CategoryTypeSolo
	}
	if req.Gender == "" {
		req.Gender = models.CategoryGenderMixt
	}

	cat := models.Category{
		Name:          req.Name,
		CompetitionID: req.CompetitionID,
		Type:          req.Type,
		Gender:        req.Gender,
	}
	if err := database.DB.Create(&cat).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Category created successfully", gin.H{"id": cat.ID})
}

func GetCategoryList(c *gin.Context) {
	competitionID := c.Query("competition_id")

	var cats []models.Category
	db := database.DB.Model(&models.Category{})
	if competitionID != "" {
		db = db.Where("competition_id = ?", competitionID)
	}
	db.Order("id asc").Find(&cats)

	utils.Success(c, "success", gin.H{"categories": cats})
}

func GetCategoryDetail(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的项目ID")
		return
	}

	var cat models.Category
	if err := database.DB.
		Preload("Competition").
		Preload("FirstPlace").Preload("SecondPlace").Preload("ThirdPlace").
		Preload("FirstPlaceTeam").Preload("SecondPlaceTeam").Preload("ThirdPlaceTeam").
		First(&cat, categoryID).Error; err != nil {
		utils.Error(c, 4004, "项目不存在")
		return
	}

	var enrolledAthletes []models.CategoryAthlete
	database.DB.Preload("Athlete").Preload("Athlete.Club").
		Where("category_id = ?", categoryID).Find(&enrolledAthletes)

	var enrolledTeams []models.CategoryTeam
	database.DB.Preload("Team").Where("category_id = ?", categoryID).Find(&enrolledTeams)

	utils.Success(c, "success", mappers.MapCategoryToDetailResp(cat, enrolledAthletes, enrolledTeams))
}

func UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的项目ID")
		return
	}

	var req dto.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, categoryID).Error; err != nil {
		utils.Error(c, 4004, "项目不存在")
		return
	}

	typeChanged := req.Type != nil && *req.Type != cat.Type
	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.Type != nil {
		cat.Type = *req.Type
	}
	if req.Gender != nil {
		cat.Gender = *req.Gender
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// 类型变更先清空两侧报名与全部奖项，旧主体在新类型下无效
		if typeChanged {
			if err := services.ResetEnrollments(tx, cat.ID); err != nil {
				return err
			}
			services.ClearAwards(&cat)
		}
		return tx.Save(&cat).Error
	})
	if err != nil {
		utils.Error(c, 5001, "更新项目失败: "+err.Error())
		return
	}

	if typeChanged {
		services.InvalidateStandings(cat.ID)
	}
	utils.Success(c, "Category updated successfully", nil)
}

func UpdateCategoryAwards(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的项目ID")
		return
	}

	var req dto.UpdateCategoryAwardsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, categoryID).Error; err != nil {
		utils.Error(c, 4004, "项目不存在")
		return
	}

	cat.FirstPlaceID = req.FirstPlaceID
	cat.SecondPlaceID = req.SecondPlaceID
	cat.ThirdPlaceID = req.ThirdPlaceID
	cat.FirstPlaceTeamID = req.FirstPlaceTeamID
	cat.SecondPlaceTeamID = req.SecondPlaceTeamID
	cat.ThirdPlaceTeamID = req.ThirdPlaceTeamID

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// 奖项校验不通过则整体回滚
		if err := services.ValidateCategoryAwards(tx, cat); err != nil {
			return err
		}
		updates := map[string]interface{}{
			"first_place_id":       req.FirstPlaceID,
			"second_place_id":      req.SecondPlaceID,
			"third_place_id":       req.ThirdPlaceID,
			"first_place_team_id":  req.FirstPlaceTeamID,
			"second_place_team_id": req.SecondPlaceTeamID,
			"third_place_team_id":  req.ThirdPlaceTeamID,
		}
		return tx.Model(&models.Category{}).Where("id = ?", cat.ID).Updates(updates).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateAward):
			utils.Error(c, 3002, "同一名次不能重复颁发给同一参赛者")
		case errors.Is(err, services.ErrNotEnrolled):
			utils.Error(c, 3003, "获奖者必须已报名该项目")
		default:
			utils.Error(c, 5000, "奖项更新失败: "+err.Error())
		}
		return
	}

	services.InvalidateStandings(cat.ID)
	utils.Success(c, "Category awards updated successfully", nil)
}

func DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的项目ID")
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, categoryID).Error; err != nil {
		utils.Error(c, 4004, "项目不存在")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := services.ResetEnrollments(tx, cat.ID); err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", cat.ID).Delete(&models.CategoryAthleteScore{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", cat.ID).Delete(&models.CategoryTeamScore{}).Error; err != nil {
			return err
		}
		var matchIDs []uint32
		if err := tx.Model(&models.Match{}).Where("category_id = ?", cat.ID).Pluck("id", &matchIDs).Error; err != nil {
			return err
		}
		if len(matchIDs) > 0 {
			if err := tx.Where("match_id IN ?", matchIDs).Delete(&models.RefereeScore{}).Error; err != nil {
				return err
			}
			if err := tx.Where("match_id IN ?", matchIDs).Delete(&models.MatchReferee{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", matchIDs).Delete(&models.Match{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&cat).Error
	})
	if err != nil {
		utils.Error(c, 5000, "删除项目失败: "+err.Error())
		return
	}

	services.InvalidateStandings(cat.ID)
	utils.Success(c, "Category deleted successfully", nil)
}

// ========== 报名 ==========

func EnrollAthlete(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的项目ID")
		return
	}

	var req struct {
		AthleteID uint32   `json:"athlete_id" binding:"required"`
		Weight    *float64 `json:"weight"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, categoryID).Error; err != nil {
		utils.Error(c, 4004, "项目不存在")
		return
	}
	// teams 类型只接受队伍报名
	if cat.Type == models.CategoryTypeTeams {
		utils.Error(c, 3004, "团体项目只能报名队伍")
		return
	}

	var athlete models.Athlete
	if err := database.DB.First(&athlete, req.AthleteID).Error; err != nil {
		utils.Error(c, 4004, "运动员不存在")
		return
	}

	var count int64
	database.DB.Model(&models.CategoryAthlete{}).
		Where("category_id = ? AND athlete_id = ?", categoryID, req.AthleteID).Count(&count)
	if count > 0 {
		utils.Error(c, 2008, "该运动员已报名此项目")
		return
	}

	row := models.CategoryAthlete{
		CategoryID: uint32(categoryID),
		AthleteID:  req.AthleteID,
		Weight:     req.Weight,
	}
	if err := database.DB.Create(&row).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Athlete enrolled successfully", nil)
}

func WithdrawAthlete(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的项目ID")
		return
	}
	athleteID, err := strconv.Atoi(c.Param("athlete_id"))
	if err != nil {
		utils.Error(c, 1002, "无效的运动员ID")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("category_id = ? AND athlete_id = ?", categoryID, athleteID).
			Delete(&models.CategoryAthlete{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return services.ErrNotFound
		}
		// 退赛后清掉其占用的奖项槽位
		clears := map[string]interface{}{}
		var cat models.Category
		if err := tx.First(&cat, categoryID).Error; err != nil {
			return err
		}
		id := uint32(athleteID)
		if cat.FirstPlaceID != nil && *cat.FirstPlaceID == id {
			clears["first_place_id"] = nil
		}
		if cat.SecondPlaceID != nil && *cat.SecondPlaceID == id {
			clears["second_place_id"] = nil
		}
		if cat.ThirdPlaceID != nil && *cat.ThirdPlaceID == id {
			clears["third_place_id"] = nil
		}
		if len(clears) > 0 {
			return tx.Model(&models.Category{}).Where("id = ?", categoryID).Updates(clears).Error
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.Error(c, 4004, "报名记录不存在")
			return
		}
		utils.Error(c, 5000, "退赛失败: "+err.Error())
		return
	}
	utils.Success(c, "Athlete withdrawn successfully", nil)
}

func EnrollTeam(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的项目ID")
		return
	}

	var req struct {
		TeamID uint32 `json:"team_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, categoryID).Error; err != nil {
		utils.Error(c, 4004, "项目不存在")
		return
	}
	if cat.Type != models.CategoryTypeTeams {
		utils.Error(c, 3004, "个人项目只能报名运动员")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, req.TeamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	var count int64
	database.DB.Model(&models.CategoryTeam{}).
		Where("category_id = ? AND team_id = ?", categoryID, req.TeamID).Count(&count)
	if count > 0 {
		utils.Error(c, 2008, "该队伍已报名此项目")
		return
	}

	row := models.CategoryTeam{CategoryID: uint32(categoryID), TeamID: req.TeamID}
	if err := database.DB.Create(&row).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Team enrolled successfully", nil)
}

func WithdrawTeam(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的项目ID")
		return
	}
	teamID, err := strconv.Atoi(c.Param("team_id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("category_id = ? AND team_id = ?", categoryID, teamID).
			Delete(&models.CategoryTeam{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return services.ErrNotFound
		}
		var cat models.Category
		if err := tx.First(&cat, categoryID).Error; err != nil {
			return err
		}
		clears := map[string]interface{}{}
		id := uint32(teamID)
		if cat.FirstPlaceTeamID != nil && *cat.FirstPlaceTeamID == id {
			clears["first_place_team_id"] = nil
		}
		if cat.SecondPlaceTeamID != nil && *cat.SecondPlaceTeamID == id {
			clears["second_place_team_id"] = nil
		}
		if cat.ThirdPlaceTeamID != nil && *cat.ThirdPlaceTeamID == id {
			clears["third_place_team_id"] = nil
		}
		if len(clears) > 0 {
			return tx.Model(&models.Category{}).Where("id = ?", categoryID).Updates(clears).Error
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.Error(c, 4004, "报名记录不存在")
			return
		}
		utils.Error(c, 5000, "退赛失败: "+err.Error())
		return
	}
	utils.Success(c, "Team withdrawn successfully", nil)
}

// ========== 打分与积分榜 ==========

func GetCategoryStandings(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的项目ID")
		return
	}

	entries, err := services.GetCategoryStandings(uint32(categoryID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.Error(c, 4004, "项目不存在")
			return
		}
		utils.Error(c, 5000, "查询积分榜失败: "+err.Error())
		return
	}
	utils.Success(c, "success", gin.H{"standings": entries})
}

func SubmitAthleteScore(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的项目ID")
		return
	}

	var req struct {
		AthleteID uint32 `json:"athlete_id" binding:"required"`
		RefereeID uint32 `json:"referee_id" binding:"required"`
		Score     int    `json:"score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, categoryID).Error; err != nil {
		utils.Error(c, 4004, "项目不存在")
		return
	}
	if cat.Type == models.CategoryTypeTeams {
		utils.Error(c, 3004, "团体项目不接受个人打分")
		return
	}

	var enrolled int64
	database.DB.Model(&models.CategoryAthlete{}).
		Where("category_id = ? AND athlete_id = ?", categoryID, req.AthleteID).Count(&enrolled)
	if enrolled == 0 {
		utils.Error(c, 3003, "该运动员未报名此项目")
		return
	}

	// 同一裁判重复打分按更新处理
	var score models.CategoryAthleteScore
	err = database.DB.Where("category_id = ? AND athlete_id = ? AND referee_id = ?",
		categoryID, req.AthleteID, req.RefereeID).First(&score).Error
	if err == nil {
		score.Score = req.Score
		err = database.DB.Save(&score).Error
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		score = models.CategoryAthleteScore{
			CategoryID: uint32(categoryID),
			AthleteID:  req.AthleteID,
			RefereeID:  req.RefereeID,
			Score:      req.Score,
		}
		err = database.DB.Create(&score).Error
	}
	if err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	services.InvalidateStandings(uint32(categoryID))
	utils.Success(c, "Score submitted successfully", nil)
}

func SubmitTeamScore(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的项目ID")
		return
	}

	var req struct {
		TeamID    uint32 `json:"team_id" binding:"required"`
		RefereeID uint32 `json:"referee_id" binding:"required"`
		Score     int    `json:"score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, categoryID).Error; err != nil {
		utils.Error(c, 4004, "项目不存在")
		return
	}
	if cat.Type != models.CategoryTypeTeams {
		utils.Error(c, 3004, "个人项目不接受团体打分")
		return
	}

	var enrolled int64
	database.DB.Model(&models.CategoryTeam{}).
		Where("category_id = ? AND team_id = ?", categoryID, req.TeamID).Count(&enrolled)
	if enrolled == 0 {
		utils.Error(c, 3003, "该队伍未报名此项目")
		return
	}

	var score models.CategoryTeamScore
	err = database.DB.Where("category_id = ? AND team_id = ? AND referee_id = ?",
		categoryID, req.TeamID, req.RefereeID).First(&score).Error
	if err == nil {
		score.Score = req.Score
		err = database.DB.Save(&score).Error
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		score = models.CategoryTeamScore{
			CategoryID: uint32(categoryID),
			TeamID:     req.TeamID,
			RefereeID:  req.RefereeID,
			Score:      req.Score,
		}
		err = database.DB.Create(&score).Error
	}
	if err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	services.InvalidateStandings(uint32(categoryID))
	utils.Success(c, "Score submitted successfully", nil)
}
