// file: controllers/seminar_controller.go
package controllers

import (
	"strconv"
	"time"

	"github.com/gabimolocea/frvv-admin/database"
	"github.com/gabimolocea/frvv-admin/models"
	"github.com/gabimolocea/frvv-admin/utils"
	"github.com/gin-gonic/gin"
)

func CreateSeminar(c *gin.Context) {
	var req struct {
		Name      string     `json:"name" binding:"required"`
		StartDate *time.Time `json:"start_date"`
		EndDate   *time.Time `json:"end_date"`
		Place     string     `json:"place" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	seminar := models.TrainingSeminar{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Place:     req.Place,
	}
	if err := database.DB.Create(&seminar).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Seminar created successfully", gin.H{"id": seminar.ID})
}

func GetSeminarList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var seminars []models.TrainingSeminar
	var total int64
	db := database.DB.Model(&models.TrainingSeminar{})
	db.Count(&total)
	db.Order("start_date desc").Offset((page - 1) * limit).Limit(limit).Find(&seminars)

	utils.Success(c, "success", gin.H{
		"total":    total,
		"seminars": seminars,
	})
}

func GetSeminarDetail(c *gin.Context) {
	seminarID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的研讨会ID")
		return
	}

	var seminar models.TrainingSeminar
	if err := database.DB.First(&seminar, seminarID).Error; err != nil {
		utils.Error(c, 4004, "研讨会不存在")
		return
	}

	var attendees []models.SeminarAthlete
	database.DB.Preload("Athlete").Where("seminar_id = ?", seminarID).Find(&attendees)

	participants := make([]gin.H, len(attendees))
	for i, a := range attendees {
		participants[i] = gin.H{
			"athlete_id":   a.AthleteID,
			"athlete_name": a.Athlete.FullName(),
		}
	}

	utils.Success(c, "success", gin.H{
		"seminar":      seminar,
		"participants": participants,
	})
}

func UpdateSeminar(c *gin.Context) {
	seminarID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的研讨会ID")
		return
	}

	var req struct {
		Name      *string    `json:"name"`
		StartDate *time.Time `json:"start_date"`
		EndDate   *time.Time `json:"end_date"`
		Place     *string    `json:"place"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var seminar models.TrainingSeminar
	if err := database.DB.First(&seminar, seminarID).Error; err != nil {
		utils.Error(c, 4004, "研讨会不存在")
		return
	}

	if req.Name != nil {
		seminar.Name = *req.Name
	}
	if req.StartDate != nil {
		seminar.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		seminar.EndDate = req.EndDate
	}
	if req.Place != nil {
		seminar.Place = *req.Place
	}
	if err := database.DB.Save(&seminar).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Seminar updated successfully", nil)
}

func DeleteSeminar(c *gin.Context) {
	seminarID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的研讨会ID")
		return
	}

	if err := database.DB.Where("seminar_id = ?", seminarID).Delete(&models.SeminarAthlete{}).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	if err := database.DB.Delete(&models.TrainingSeminar{}, seminarID).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Seminar deleted successfully", nil)
}

func AddSeminarAthlete(c *gin.Context) {
	seminarID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的研讨会ID")
		return
	}

	var req struct {
		AthleteID uint32 `json:"athlete_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var seminar models.TrainingSeminar
	if err := database.DB.First(&seminar, seminarID).Error; err != nil {
		utils.Error(c, 4004, "研讨会不存在")
		return
	}
	var athlete models.Athlete
	if err := database.DB.First(&athlete, req.AthleteID).Error; err != nil {
		utils.Error(c, 4004, "运动员不存在")
		return
	}

	var count int64
	database.DB.Model(&models.SeminarAthlete{}).
		Where("seminar_id = ? AND athlete_id = ?", seminarID, req.AthleteID).Count(&count)
	if count > 0 {
		utils.Error(c, 2007, "该运动员已报名此研讨会")
		return
	}

	row := models.SeminarAthlete{SeminarID: uint32(seminarID), AthleteID: req.AthleteID}
	if err := database.DB.Create(&row).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Athlete added to seminar successfully", nil)
}

func RemoveSeminarAthlete(c *gin.Context) {
	seminarID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的研讨会ID")
		return
	}
	athleteID, err := strconv.Atoi(c.Param("athlete_id"))
	if err != nil {
		utils.Error(c, 1002, "无效的运动员ID")
		return
	}

	result := database.DB.Where("seminar_id = ? AND athlete_id = ?", seminarID, athleteID).
		Delete(&models.SeminarAthlete{})
	if result.Error != nil {
		utils.Error(c, 5000, "数据库错误: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "报名记录不存在")
		return
	}
	utils.Success(c, "Athlete removed from seminar successfully", nil)
}
