// file: controllers/athlete_controller.go
package controllers

import (
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

func CreateAthlete(c *gin.Context) {
	var req dto.CreateAthleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if req.ClubID != nil {
		var club models.Club
		if err := database.DB.First(&club, *req.ClubID).Error; err != nil {
			utils.Error(c, 4004, "俱乐部不存在")
			return
		}
	}

	// 生成唯一的联合会注册号
	var regNumber string
	for {
		regNumber = utils.GenerateRegistrationNumber()
		var count int64
		database.DB.Model(&models.Athlete{}).Where("registration_number = ?", regNumber).Count(&count)
		if count == 0 {
			break
		}
	}

	newAthlete := models.Athlete{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		DateOfBirth:        req.DateOfBirth,
		RegistrationNumber: regNumber,
		Address:            req.Address,
		MobileNumber:       req.MobileNumber,
		ClubID:             req.ClubID,
		CityID:             req.CityID,
		FederationRoleID:   req.FederationRoleID,
		TitleID:            req.TitleID,
		RegisteredDate:     req.RegisteredDate,
		ExpirationDate:     req.ExpirationDate,
		IsReferee:          req.IsReferee,
		ProfileImage:       req.ProfileImage,
	}

	if err := database.DB.Create(&newAthlete).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "Athlete created successfully", gin.H{
		"id":                  newAthlete.ID,
		"registration_number": newAthlete.RegistrationNumber,
	})
}

func GetAthleteList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")
	clubID := c.Query("club_id")
	isCoach := c.Query("is_coach")
	isReferee := c.Query("is_referee")

	var athletes []models.Athlete
	var total int64

	db := database.DB.Model(&models.Athlete{}).Preload("CurrentGrade").Preload("Club")
	if search != "" {
		db = db.Where("first_name LIKE ? OR last_name LIKE ? OR registration_number LIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if clubID != "" {
		db = db.Where("club_id = ?", clubID)
	}
	if isCoach != "" {
		db = db.Where("is_coach = ?", isCoach == "true")
	}
	if isReferee != "" {
		db = db.Where("is_referee = ?", isReferee == "true")
	}

	db.Count(&total)
	db.Order("last_name asc, first_name asc").Offset((page - 1) * limit).Limit(limit).Find(&athletes)

	items := make([]dto.AthleteItemResp, len(athletes))
	for i, a := range athletes {
		items[i] = mappers.MapAthleteToItemResp(a)
	}

	utils.Success(c, "success", gin.H{
		"total":    total,
		"athletes": items,
	})
}

func GetAthleteDetail(c *gin.Context) {
	athleteID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的运动员ID")
		return
	}

	var athlete models.Athlete
	if err := database.DB.
		Preload("Club").Preload("City").Preload("CurrentGrade").
		Preload("FederationRole").Preload("Title").
		First(&athlete, athleteID).Error; err != nil {
		utils.Error(c, 4004, "运动员不存在")
		return
	}

	var medicalVisas []models.MedicalVisa
	database.DB.Where("athlete_id = ?", athleteID).Order("issued_date desc").Find(&medicalVisas)

	var annualVisas []models.AnnualVisa
	database.DB.Where("athlete_id = ?", athleteID).Order("issued_date desc").Find(&annualVisas)

	// 获奖名次为读取时投影，不落库
	placements, err := services.AthletePlacements(database.DB, athlete.ID)
	if err != nil {
		utils.Error(c, 5000, "查询获奖记录失败")
		return
	}

	var teamIDs []uint32
	database.DB.Model(&models.TeamMember{}).Where("athlete_id = ?", athleteID).Pluck("team_id", &teamIDs)
	var teams []models.Team
	if len(teamIDs) > 0 {
		database.DB.Where("id IN ?", teamIDs).Find(&teams)
	}

	utils.Success(c, "success", mappers.MapAthleteToDetailResp(athlete, medicalVisas, annualVisas, placements, teams))
}

func UpdateAthlete(c *gin.Context) {
	athleteID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的运动员ID")
		return
	}

	var req dto.UpdateAthleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var athlete models.Athlete
	if err := database.DB.First(&athlete, athleteID).Error; err != nil {
		utils.Error(c, 4004, "运动员不存在")
		return
	}

	if req.FirstName != nil {
		athlete.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		athlete.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		athlete.DateOfBirth = *req.DateOfBirth
	}
	if req.Address != nil {
		athlete.Address = *req.Address
	}
	if req.MobileNumber != nil {
		athlete.MobileNumber = *req.MobileNumber
	}
	if req.ClubID != nil {
		var club models.Club
		if err := database.DB.First(&club, *req.ClubID).Error; err != nil {
			utils.Error(c, 4004, "俱乐部不存在")
			return
		}
		athlete.ClubID = req.ClubID
	}
	if req.CityID != nil {
		athlete.CityID = req.CityID
	}
	if req.FederationRoleID != nil {
		athlete.FederationRoleID = req.FederationRoleID
	}
	if req.TitleID != nil {
		athlete.TitleID = req.TitleID
	}
	if req.RegisteredDate != nil {
		athlete.RegisteredDate = req.RegisteredDate
	}
	if req.ExpirationDate != nil {
		athlete.ExpirationDate = req.ExpirationDate
	}
	if req.IsReferee != nil {
		athlete.IsReferee = *req.IsReferee
	}
	if req.ProfileImage != nil {
		athlete.ProfileImage = *req.ProfileImage
	}

	coachFlipped := req.IsCoach != nil && *req.IsCoach != athlete.IsCoach
	if req.IsCoach != nil {
		athlete.IsCoach = *req.IsCoach
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&athlete).Error; err != nil {
			return err
		}
		// is_coach 直接翻转时镜像到所属俱乐部教练组；
		// MirrorCoachFlag 只在目标状态未满足时写入，不会与 RefreshIsCoach 互触发
		if coachFlipped {
			return services.MirrorCoachFlag(tx, &athlete)
		}
		return nil
	})
	if err != nil {
		utils.Error(c, 5001, "更新失败: "+err.Error())
		return
	}

	utils.Success(c, "Athlete updated successfully", nil)
}

func DeleteAthlete(c *gin.Context) {
	athleteID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的运动员ID")
		return
	}

	var athlete models.Athlete
	if err := database.DB.First(&athlete, athleteID).Error; err != nil {
		utils.Error(c, 4004, "运动员不存在")
		return
	}

	// 级联清理关联记录，连同运动员本体一次事务删除
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("athlete_id = ?", athleteID).Delete(&models.GradeHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("athlete_id = ?", athleteID).Delete(&models.MedicalVisa{}).Error; err != nil {
			return err
		}
		if err := tx.Where("athlete_id = ?", athleteID).Delete(&models.AnnualVisa{}).Error; err != nil {
			return err
		}
		if err := tx.Where("athlete_id = ?", athleteID).Delete(&models.ClubCoach{}).Error; err != nil {
			return err
		}
		if err := tx.Where("athlete_id = ?", athleteID).Delete(&models.SeminarAthlete{}).Error; err != nil {
			return err
		}
		if err := tx.Where("athlete_id = ?", athleteID).Delete(&models.CategoryAthlete{}).Error; err != nil {
			return err
		}
		if err := tx.Where("athlete_id = ?", athleteID).Delete(&models.CategoryAthleteScore{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Category{}).Where("first_place_id = ?", athleteID).
			Update("first_place_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Category{}).Where("second_place_id = ?", athleteID).
			Update("second_place_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Category{}).Where("third_place_id = ?", athleteID).
			Update("third_place_id", nil).Error; err != nil {
			return err
		}

		// 作为对阵方或裁判的比赛数据一并清理
		var matchIDs []uint32
		if err := tx.Model(&models.Match{}).
			Where("red_corner_id = ? OR blue_corner_id = ?", athleteID, athleteID).
			Pluck("id", &matchIDs).Error; err != nil {
			return err
		}
		deleted := make(map[uint32]bool, len(matchIDs))
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
			for _, id := range matchIDs {
				deleted[id] = true
			}
		}
		var refereedMatchIDs []uint32
		if err := tx.Model(&models.MatchReferee{}).Where("athlete_id = ?", athleteID).
			Pluck("match_id", &refereedMatchIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("athlete_id = ?", athleteID).Delete(&models.MatchReferee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("referee_id = ?", athleteID).Delete(&models.RefereeScore{}).Error; err != nil {
			return err
		}
		for _, matchID := range refereedMatchIDs {
			if deleted[matchID] {
				continue
			}
			if err := services.RefreshMatch(tx, matchID); err != nil {
				return err
			}
		}

		// 从所有队伍中移除并重算队名
		var memberRows []models.TeamMember
		if err := tx.Where("athlete_id = ?", athleteID).Find(&memberRows).Error; err != nil {
			return err
		}
		if err := tx.Where("athlete_id = ?", athleteID).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		for _, m := range memberRows {
			if err := services.RefreshTeamName(tx, m.TeamID); err != nil {
				return err
			}
		}

		return tx.Delete(&athlete).Error
	})
	if err != nil {
		utils.Error(c, 5001, "删除运动员失败: "+err.Error())
		return
	}

	utils.Success(c, "Athlete deleted successfully", nil)
}
