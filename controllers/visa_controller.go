// file: controllers/visa_controller.go
package controllers

import (
	"strconv"
	"time"

	"github.com/gabimolocea/frvv-admin/database"
	"github.com/gabimolocea/frvv-admin/mappers"
	"github.com/gabimolocea/frvv-admin/models"
	"github.com/gabimolocea/frvv-admin/utils"
	"github.com/gin-gonic/gin"
)

// ========== 医疗签证 ==========

func CreateMedicalVisa(c *gin.Context) {
	var req struct {
		AthleteID    uint32              `json:"athlete_id" binding:"required"`
		IssuedDate   *time.Time          `json:"issued_date"`
		HealthStatus models.HealthStatus `json:"health_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var athlete models.Athlete
	if err := database.DB.First(&athlete, req.AthleteID).Error; err != nil {
		utils.Error(c, 4004, "运动员不存在")
		return
	}

	if req.HealthStatus == "" {
		req.HealthStatus = models.HealthStatusDenied
	}

	visa := models.MedicalVisa{
		AthleteID:    req.AthleteID,
		IssuedDate:   req.IssuedDate,
		HealthStatus: req.HealthStatus,
	}
	if err := database.DB.Create(&visa).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "Medical visa created successfully", mappers.MapMedicalVisaToResp(visa))
}

func GetMedicalVisaList(c *gin.Context) {
	athleteID := c.Query("athlete_id")

	var visas []models.MedicalVisa
	db := database.DB.Model(&models.MedicalVisa{})
	if athleteID != "" {
		db = db.Where("athlete_id = ?", athleteID)
	}
	db.Order("issued_date desc").Find(&visas)

	items := make([]interface{}, len(visas))
	for i, v := range visas {
		items[i] = mappers.MapMedicalVisaToResp(v)
	}
	utils.Success(c, "success", gin.H{"visas": items})
}

func UpdateMedicalVisa(c *gin.Context) {
	visaID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的签证ID")
		return
	}

	var req struct {
		IssuedDate   *time.Time           `json:"issued_date"`
		HealthStatus *models.HealthStatus `json:"health_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var visa models.MedicalVisa
	if err := database.DB.First(&visa, visaID).Error; err != nil {
		utils.Error(c, 4004, "签证不存在")
		return
	}

	if req.IssuedDate != nil {
		visa.IssuedDate = req.IssuedDate
	}
	if req.HealthStatus != nil {
		visa.HealthStatus = *req.HealthStatus
	}
	if err := database.DB.Save(&visa).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "Medical visa updated successfully", mappers.MapMedicalVisaToResp(visa))
}

func DeleteMedicalVisa(c *gin.Context) {
	visaID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的签证ID")
		return
	}
	if err := database.DB.Delete(&models.MedicalVisa{}, visaID).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Medical visa deleted successfully", nil)
}

// ========== 年度签证 ==========

func CreateAnnualVisa(c *gin.Context) {
	var req struct {
		AthleteID  uint32     `json:"athlete_id" binding:"required"`
		IssuedDate *time.Time `json:"issued_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var athlete models.Athlete
	if err := database.DB.First(&athlete, req.AthleteID).Error; err != nil {
		utils.Error(c, 4004, "运动员不存在")
		return
	}

	// VisaStatus 由 BeforeSave Hook 计算，不接受请求值
	visa := models.AnnualVisa{
		AthleteID:  req.AthleteID,
		IssuedDate: req.IssuedDate,
	}
	if err := database.DB.Create(&visa).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "Annual visa created successfully", mappers.MapAnnualVisaToResp(visa))
}

func GetAnnualVisaList(c *gin.Context) {
	athleteID := c.Query("athlete_id")

	var visas []models.AnnualVisa
	db := database.DB.Model(&models.AnnualVisa{})
	if athleteID != "" {
		db = db.Where("athlete_id = ?", athleteID)
	}
	db.Order("issued_date desc").Find(&visas)

	items := make([]interface{}, len(visas))
	for i, v := range visas {
		items[i] = mappers.MapAnnualVisaToResp(v)
	}
	utils.Success(c, "success", gin.H{"visas": items})
}

func UpdateAnnualVisa(c *gin.Context) {
	visaID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的签证ID")
		return
	}

	var req struct {
		IssuedDate *time.Time `json:"issued_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var visa models.AnnualVisa
	if err := database.DB.First(&visa, visaID).Error; err != nil {
		utils.Error(c, 4004, "签证不存在")
		return
	}

	// 未提供则保持原值，与医疗签证的更新语义一致
	if req.IssuedDate != nil {
		visa.IssuedDate = req.IssuedDate
	}
	if err := database.DB.Save(&visa).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "Annual visa updated successfully", mappers.MapAnnualVisaToResp(visa))
}

func DeleteAnnualVisa(c *gin.Context) {
	visaID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的签证ID")
		return
	}
	if err := database.DB.Delete(&models.AnnualVisa{}, visaID).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Annual visa deleted successfully", nil)
}
