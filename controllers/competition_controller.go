// file: controllers/competition_controller.go
package controllers

import (
	"strconv"
	"time"

	"github.com/gabimolocea/frvv-admin/database"
	"github.com/gabimolocea/frvv-admin/models"
	"github.com/gabimolocea/frvv-admin/utils"
	"github.com/gin-gonic/gin"
)

func CreateCompetition(c *gin.Context) {
	var req struct {
		Name      string     `json:"name" binding:"required"`
		Place     string     `json:"place"`
		StartDate *time.Time `json:"start_date"`
		EndDate   *time.Time `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	comp := models.Competition{
		Name:      req.Name,
		Place:     req.Place,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := database.DB.Create(&comp).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Competition created successfully", gin.H{"id": comp.ID})
}

func GetCompetitionList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var comps []models.Competition
	var total int64
	db := database.DB.Model(&models.Competition{})
	db.Count(&total)
	db.Order("start_date desc").Offset((page - 1) * limit).Limit(limit).Find(&comps)

	utils.Success(c, "success", gin.H{
		"total":        total,
		"competitions": comps,
	})
}

func GetCompetitionDetail(c *gin.Context) {
	compID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的比赛ID")
		return
	}

	var comp models.Competition
	if err := database.DB.Preload("Categories").First(&comp, compID).Error; err != nil {
		utils.Error(c, 4004, "比赛不存在")
		return
	}
	utils.Success(c, "success", comp)
}

func UpdateCompetition(c *gin.Context) {
	compID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的比赛ID")
		return
	}

	var req struct {
		Name      *string    `json:"name"`
		Place     *string    `json:"place"`
		StartDate *time.Time `json:"start_date"`
		EndDate   *time.Time `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var comp models.Competition
	if err := database.DB.First(&comp, compID).Error; err != nil {
		utils.Error(c, 4004, "比赛不存在")
		return
	}

	if req.Name != nil {
		comp.Name = *req.Name
	}
	if req.Place != nil {
		comp.Place = *req.Place
	}
	if req.StartDate != nil {
		comp.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		comp.EndDate = req.EndDate
	}
	if err := database.DB.Save(&comp).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Competition updated successfully", nil)
}

func DeleteCompetition(c *gin.Context) {
	compID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的比赛ID")
		return
	}

	// 禁止删除仍挂有项目的比赛
	var count int64
	database.DB.Model(&models.Category{}).Where("competition_id = ?", compID).Count(&count)
	if count > 0 {
		utils.Error(c, 3001, "该比赛下仍有项目，无法删除")
		return
	}

	if err := database.DB.Delete(&models.Competition{}, compID).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Competition deleted successfully", nil)
}
