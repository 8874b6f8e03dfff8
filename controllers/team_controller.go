// file: controllers/team_controller.go
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

func CreateTeam(c *gin.Context) {
	var req struct {
		MemberIDs []uint32 `json:"member_ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	for _, id := range req.MemberIDs {
		var athlete models.Athlete
		if err := database.DB.First(&athlete, id).Error; err != nil {
			utils.Error(c, 4004, "运动员不存在")
			return
		}
	}

	var team models.Team
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// 成员集合全局唯一
		if err := services.CheckTeamComposition(tx, req.MemberIDs, 0); err != nil {
			return err
		}
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		// 按请求顺序插入，ID 递增即加入顺序
		for _, athleteID := range req.MemberIDs {
			member := models.TeamMember{TeamID: team.ID, AthleteID: athleteID}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return services.RefreshTeamName(tx, team.ID)
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateTeamComposition) {
			utils.Error(c, 3005, "已有成员完全相同的队伍")
			return
		}
		utils.Error(c, 5001, "创建队伍失败: "+err.Error())
		return
	}

	database.DB.First(&team, team.ID)
	utils.Success(c, "Team created successfully", gin.H{
		"id":   team.ID,
		"name": team.Name,
	})
}

func GetTeamList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var teams []models.Team
	var total int64
	db := database.DB.Model(&models.Team{})
	db.Count(&total)
	db.Order("id asc").Offset((page - 1) * limit).Limit(limit).Find(&teams)

	utils.Success(c, "success", gin.H{
		"total": total,
		"teams": teams,
	})
}

func GetTeamDetail(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	var members []models.TeamMember
	database.DB.Preload("Athlete").Where("team_id = ?", teamID).Order("id asc").Find(&members)

	memberRows := make([]gin.H, len(members))
	for i, m := range members {
		memberRows[i] = gin.H{
			"athlete_id":   m.AthleteID,
			"athlete_name": m.Athlete.FullName(),
		}
	}

	placements, err := services.TeamPlacements(database.DB, team.ID)
	if err != nil {
		utils.Error(c, 5000, "查询获奖记录失败")
		return
	}

	utils.Success(c, "success", gin.H{
		"id":         team.ID,
		"name":       team.Name,
		"members":    memberRows,
		"placements": placements,
	})
}

func AddTeamMember(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	var req struct {
		AthleteID uint32 `json:"athlete_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}
	var athlete models.Athlete
	if err := database.DB.First(&athlete, req.AthleteID).Error; err != nil {
		utils.Error(c, 4004, "运动员不存在")
		return
	}

	var count int64
	database.DB.Model(&models.TeamMember{}).
		Where("team_id = ? AND athlete_id = ?", teamID, req.AthleteID).Count(&count)
	if count > 0 {
		utils.Error(c, 2009, "该运动员已是队伍成员")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var memberIDs []uint32
		if err := tx.Model(&models.TeamMember{}).Where("team_id = ?", teamID).
			Pluck("athlete_id", &memberIDs).Error; err != nil {
			return err
		}
		memberIDs = append(memberIDs, req.AthleteID)
		if err := services.CheckTeamComposition(tx, memberIDs, team.ID); err != nil {
			return err
		}
		member := models.TeamMember{TeamID: team.ID, AthleteID: req.AthleteID}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		return services.RefreshTeamName(tx, team.ID)
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateTeamComposition) {
			utils.Error(c, 3005, "已有成员完全相同的队伍")
			return
		}
		utils.Error(c, 5001, "添加成员失败: "+err.Error())
		return
	}
	utils.Success(c, "Team member added successfully", nil)
}

func RemoveTeamMember(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}
	athleteID, err := strconv.Atoi(c.Param("athlete_id"))
	if err != nil {
		utils.Error(c, 1002, "无效的运动员ID")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("team_id = ? AND athlete_id = ?", teamID, athleteID).
			Delete(&models.TeamMember{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return services.ErrNotFound
		}
		// 移除成员后的剩余集合同样受全局唯一约束
		var remaining []uint32
		if err := tx.Model(&models.TeamMember{}).Where("team_id = ?", teamID).
			Pluck("athlete_id", &remaining).Error; err != nil {
			return err
		}
		if err := services.CheckTeamComposition(tx, remaining, uint32(teamID)); err != nil {
			return err
		}
		return services.RefreshTeamName(tx, uint32(teamID))
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.Error(c, 4004, "成员记录不存在")
			return
		}
		if errors.Is(err, services.ErrDuplicateTeamComposition) {
			utils.Error(c, 3005, "已有成员完全相同的队伍")
			return
		}
		utils.Error(c, 5001, "移除成员失败: "+err.Error())
		return
	}
	utils.Success(c, "Team member removed successfully", nil)
}

func DeleteTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	// 已报名项目的队伍不允许删除，先退赛再删
	var enrolled int64
	database.DB.Model(&models.CategoryTeam{}).Where("team_id = ?", teamID).Count(&enrolled)
	if enrolled > 0 {
		utils.Error(c, 3006, "该队伍仍有项目报名，无法删除")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", teamID).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&models.CategoryTeamScore{}).Error; err != nil {
			return err
		}
		return tx.Delete(&team).Error
	})
	if err != nil {
		utils.Error(c, 5000, "删除队伍失败: "+err.Error())
		return
	}
	utils.Success(c, "Team deleted successfully", nil)
}
