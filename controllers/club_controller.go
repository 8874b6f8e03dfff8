// file: controllers/club_controller.go
package controllers

import (
	"strconv"

	"github.com/gabimolocea/frvv-admin/database"
	"github.com/gabimolocea/frvv-admin/models"
	"github.com/gabimolocea/frvv-admin/services"
	"github.com/gabimolocea/frvv-admin/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateClub(c *gin.Context) {
	var req struct {
		Name         string  `json:"name" binding:"required"`
		Logo         string  `json:"logo"`
		CityID       *uint32 `json:"city_id"`
		Address      string  `json:"address"`
		MobileNumber string  `json:"mobile_number"`
		Website      string  `json:"website"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var existing models.Club
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		utils.Error(c, 2001, "Club already exists")
		return
	}

	if req.CityID != nil {
		var city models.City
		if err := database.DB.First(&city, *req.CityID).Error; err != nil {
			utils.Error(c, 4004, "城市不存在")
			return
		}
	}

	newClub := models.Club{
		Name:         req.Name,
		Logo:         req.Logo,
		CityID:       req.CityID,
		Address:      req.Address,
		MobileNumber: req.MobileNumber,
		Website:      req.Website,
	}

	if err := database.DB.Create(&newClub).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "Club created successfully", newClub)
}

func GetClubList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	var clubs []models.Club
	var total int64

	db := database.DB.Model(&models.Club{}).Preload("City")
	if search != "" {
		db = db.Where("name LIKE ?", "%"+search+"%")
	}

	db.Count(&total)
	db.Order("name asc").Offset((page - 1) * limit).Limit(limit).Find(&clubs)

	utils.Success(c, "success", gin.H{
		"total": total,
		"clubs": clubs,
	})
}

func GetClubDetail(c *gin.Context) {
	clubID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的俱乐部ID")
		return
	}

	var club models.Club
	if err := database.DB.Preload("City").First(&club, clubID).Error; err != nil {
		utils.Error(c, 4004, "俱乐部不存在")
		return
	}

	var coaches []models.ClubCoach
	database.DB.Preload("Athlete").Where("club_id = ?", clubID).Find(&coaches)

	var athletes []models.Athlete
	database.DB.Where("club_id = ?", clubID).Find(&athletes)

	utils.Success(c, "success", gin.H{
		"club":     club,
		"coaches":  coaches,
		"athletes": athletes,
	})
}

func UpdateClub(c *gin.Context) {
	clubID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的俱乐部ID")
		return
	}

	var req struct {
		Name         string  `json:"name"`
		Logo         *string `json:"logo"`
		CityID       *uint32 `json:"city_id"`
		Address      *string `json:"address"`
		MobileNumber *string `json:"mobile_number"`
		Website      *string `json:"website"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var club models.Club
	if err := database.DB.First(&club, clubID).Error; err != nil {
		utils.Error(c, 4004, "俱乐部不存在")
		return
	}

	if req.Name != "" {
		club.Name = req.Name
	}
	if req.Logo != nil {
		club.Logo = *req.Logo
	}
	if req.CityID != nil {
		club.CityID = req.CityID
	}
	if req.Address != nil {
		club.Address = *req.Address
	}
	if req.MobileNumber != nil {
		club.MobileNumber = *req.MobileNumber
	}
	if req.Website != nil {
		club.Website = *req.Website
	}

	if err := database.DB.Save(&club).Error; err != nil {
		utils.Error(c, 5000, "更新失败: "+err.Error())
		return
	}

	utils.Success(c, "Club updated successfully", nil)
}

func DeleteClub(c *gin.Context) {
	clubID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的俱乐部ID")
		return
	}

	var club models.Club
	if err := database.DB.First(&club, clubID).Error; err != nil {
		utils.Error(c, 4004, "俱乐部不存在")
		return
	}

	// 删除俱乐部要连带清理教练组，并重算受影响运动员的 is_coach
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var coachIDs []uint32
		if err := tx.Model(&models.ClubCoach{}).Where("club_id = ?", clubID).
			Pluck("athlete_id", &coachIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", clubID).Delete(&models.ClubCoach{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Athlete{}).Where("club_id = ?", clubID).
			Update("club_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(&club).Error; err != nil {
			return err
		}
		for _, athleteID := range coachIDs {
			if err := services.RefreshIsCoach(tx, athleteID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.Error(c, 5001, "删除俱乐部失败: "+err.Error())
		return
	}

	utils.Success(c, "Club deleted successfully", nil)
}

// AddClubCoach 将运动员加入俱乐部教练组，并同步其 is_coach 标记
func AddClubCoach(c *gin.Context) {
	clubID, _ := strconv.Atoi(c.Param("id"))
	athleteID, err := strconv.Atoi(c.Param("athlete_id"))
	if err != nil {
		utils.Error(c, 1002, "无效的运动员ID")
		return
	}

	var club models.Club
	if err := database.DB.First(&club, clubID).Error; err != nil {
		utils.Error(c, 4004, "俱乐部不存在")
		return
	}
	var athlete models.Athlete
	if err := database.DB.First(&athlete, athleteID).Error; err != nil {
		utils.Error(c, 4004, "运动员不存在")
		return
	}

	var count int64
	database.DB.Model(&models.ClubCoach{}).
		Where("club_id = ? AND athlete_id = ?", clubID, athleteID).Count(&count)
	if count > 0 {
		utils.Error(c, 2006, "Athlete is already a coach of this club")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		entry := models.ClubCoach{ClubID: uint32(clubID), AthleteID: uint32(athleteID)}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return services.RefreshIsCoach(tx, uint32(athleteID))
	})
	if err != nil {
		utils.Error(c, 5001, "添加教练失败: "+err.Error())
		return
	}

	utils.Success(c, "Coach added successfully", nil)
}

// RemoveClubCoach 将运动员移出俱乐部教练组；
// is_coach 重算必须检查其余所有俱乐部的教练组
func RemoveClubCoach(c *gin.Context) {
	clubID, _ := strconv.Atoi(c.Param("id"))
	athleteID, err := strconv.Atoi(c.Param("athlete_id"))
	if err != nil {
		utils.Error(c, 1002, "无效的运动员ID")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("club_id = ? AND athlete_id = ?", clubID, athleteID).
			Delete(&models.ClubCoach{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return services.ErrNotFound
		}
		return services.RefreshIsCoach(tx, uint32(athleteID))
	})
	if err == services.ErrNotFound {
		utils.Error(c, 4004, "Coach not found in this club")
		return
	}
	if err != nil {
		utils.Error(c, 5001, "移除教练失败: "+err.Error())
		return
	}

	utils.Success(c, "Coach removed successfully", nil)
}
