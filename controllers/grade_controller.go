// file: controllers/grade_controller.go
package controllers

import (
	"strconv"
	"time"

	"github.com/gabimolocea/frvv-admin/database"
	"github.com/gabimolocea/frvv-admin/models"
	"github.com/gabimolocea/frvv-admin/services"
	"github.com/gabimolocea/frvv-admin/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// --- Grade ---

func CreateGrade(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		RankOrder int    `json:"rank_order"`
		GradeType string `json:"grade_type" binding:"omitempty,oneof=inferior superior"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	newGrade := models.Grade{
		Name:      req.Name,
		RankOrder: req.RankOrder,
	}
	if req.GradeType != "" {
		newGrade.GradeType = models.GradeType(req.GradeType)
	}

	if err := database.DB.Create(&newGrade).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "Grade created successfully", newGrade)
}

func GetGradeList(c *gin.Context) {
	var grades []models.Grade
	database.DB.Order("rank_order asc").Find(&grades)
	utils.Success(c, "success", grades)
}

func UpdateGrade(c *gin.Context) {
	gradeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的段位ID")
		return
	}

	var req struct {
		Name      string `json:"name"`
		RankOrder *int   `json:"rank_order"`
		GradeType string `json:"grade_type" binding:"omitempty,oneof=inferior superior"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var grade models.Grade
	if err := database.DB.First(&grade, gradeID).Error; err != nil {
		utils.Error(c, 4004, "段位不存在")
		return
	}

	if req.Name != "" {
		grade.Name = req.Name
	}
	if req.RankOrder != nil {
		grade.RankOrder = *req.RankOrder
	}
	if req.GradeType != "" {
		grade.GradeType = models.GradeType(req.GradeType)
	}

	// 段位排序变动会影响所有持有者的当前段位，保存后逐一重算
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&grade).Error; err != nil {
			return err
		}
		var athleteIDs []uint32
		if err := tx.Model(&models.GradeHistory{}).Where("grade_id = ?", grade.ID).
			Distinct().Pluck("athlete_id", &athleteIDs).Error; err != nil {
			return err
		}
		for _, athleteID := range athleteIDs {
			if err := services.RefreshCurrentGrade(tx, athleteID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.Error(c, 5001, "更新失败: "+err.Error())
		return
	}

	utils.Success(c, "Grade updated successfully", nil)
}

func DeleteGrade(c *gin.Context) {
	gradeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的段位ID")
		return
	}

	// 删除前确认没有考试记录引用此段位
	var historyCount int64
	database.DB.Model(&models.GradeHistory{}).Where("grade_id = ?", gradeID).Count(&historyCount)
	if historyCount > 0 {
		utils.Error(c, 2005, "Cannot delete grade with existing grade history")
		return
	}

	result := database.DB.Delete(&models.Grade{}, gradeID)
	if result.Error != nil {
		utils.Error(c, 5000, "删除失败")
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "段位不存在")
		return
	}

	utils.Success(c, "Grade deleted successfully", nil)
}

// --- GradeHistory ---

func CreateGradeHistory(c *gin.Context) {
	var req struct {
		AthleteID         uint32     `json:"athlete_id" binding:"required"`
		GradeID           uint32     `json:"grade_id" binding:"required"`
		ObtainedDate      *time.Time `json:"obtained_date"`
		Level             string     `json:"level" binding:"omitempty,oneof=good bad"`
		ExamDate          *time.Time `json:"exam_date"`
		ExamPlace         string     `json:"exam_place"`
		TechnicalDirector string     `json:"technical_director"`
		President         string     `json:"president"`
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
	var grade models.Grade
	if err := database.DB.First(&grade, req.GradeID).Error; err != nil {
		utils.Error(c, 4004, "段位不存在")
		return
	}

	entry := models.GradeHistory{
		AthleteID:         req.AthleteID,
		GradeID:           req.GradeID,
		ObtainedDate:      time.Now(),
		ExamDate:          req.ExamDate,
		ExamPlace:         req.ExamPlace,
		TechnicalDirector: req.TechnicalDirector,
		President:         req.President,
	}
	if req.ObtainedDate != nil {
		entry.ObtainedDate = *req.ObtainedDate
	}
	if req.Level != "" {
		entry.Level = models.GradeLevel(req.Level)
	}

	// 考试记录与当前段位重算必须同一事务提交
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return services.RefreshCurrentGrade(tx, req.AthleteID)
	})
	if err != nil {
		utils.Error(c, 5001, "创建考试记录失败: "+err.Error())
		return
	}

	utils.Success(c, "Grade history created successfully", gin.H{
		"id":         entry.ID,
		"athlete_id": entry.AthleteID,
		"grade_id":   entry.GradeID,
	})
}

func GetGradeHistoryList(c *gin.Context) {
	athleteID := c.Query("athlete_id")

	var entries []models.GradeHistory
	db := database.DB.Preload("Grade")
	if athleteID != "" {
		db = db.Where("athlete_id = ?", athleteID)
	}
	db.Order("obtained_date desc").Find(&entries)

	utils.Success(c, "success", entries)
}

func DeleteGradeHistory(c *gin.Context) {
	entryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的记录ID")
		return
	}

	var entry models.GradeHistory
	if err := database.DB.First(&entry, entryID).Error; err != nil {
		utils.Error(c, 4004, "考试记录不存在")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entry).Error; err != nil {
			return err
		}
		return services.RefreshCurrentGrade(tx, entry.AthleteID)
	})
	if err != nil {
		utils.Error(c, 5001, "删除考试记录失败: "+err.Error())
		return
	}

	utils.Success(c, "Grade history deleted successfully", nil)
}
