// file: controllers/reference_controller.go
package controllers

import (
	"strconv"

	"github.com/gabimolocea/frvv-admin/database"
	"github.com/gabimolocea/frvv-admin/models"
	"github.com/gabimolocea/frvv-admin/utils"
	"github.com/gin-gonic/gin"
)

// 城市、头衔、联合会职务三张基础参照表的 CRUD

// --- City ---

func CreateCity(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var existing models.City
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		utils.Error(c, 2001, "City already exists")
		return
	}

	newCity := models.City{Name: req.Name}
	if err := database.DB.Create(&newCity).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "City created successfully", newCity)
}

func GetCityList(c *gin.Context) {
	search := c.Query("search")

	var cities []models.City
	db := database.DB.Model(&models.City{})
	if search != "" {
		db = db.Where("name LIKE ?", "%"+search+"%")
	}
	db.Order("name asc").Find(&cities)

	utils.Success(c, "success", cities)
}

func UpdateCity(c *gin.Context) {
	cityID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的城市ID")
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var city models.City
	if err := database.DB.First(&city, cityID).Error; err != nil {
		utils.Error(c, 4004, "城市不存在")
		return
	}

	city.Name = req.Name
	if err := database.DB.Save(&city).Error; err != nil {
		utils.Error(c, 5000, "更新失败: "+err.Error())
		return
	}

	utils.Success(c, "City updated successfully", nil)
}

func DeleteCity(c *gin.Context) {
	cityID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的城市ID")
		return
	}

	result := database.DB.Delete(&models.City{}, cityID)
	if result.Error != nil {
		utils.Error(c, 5000, "删除失败")
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "城市不存在")
		return
	}

	utils.Success(c, "City deleted successfully", nil)
}

// --- Title ---

func CreateTitle(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var existing models.Title
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		utils.Error(c, 2001, "Title already exists")
		return
	}

	newTitle := models.Title{Name: req.Name}
	if err := database.DB.Create(&newTitle).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "Title created successfully", newTitle)
}

func GetTitleList(c *gin.Context) {
	var titles []models.Title
	database.DB.Order("name asc").Find(&titles)
	utils.Success(c, "success", titles)
}

func DeleteTitle(c *gin.Context) {
	titleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的头衔ID")
		return
	}

	result := database.DB.Delete(&models.Title{}, titleID)
	if result.Error != nil {
		utils.Error(c, 5000, "删除失败")
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "头衔不存在")
		return
	}

	utils.Success(c, "Title deleted successfully", nil)
}

// --- FederationRole ---

func CreateFederationRole(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var existing models.FederationRole
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		utils.Error(c, 2001, "Federation role already exists")
		return
	}

	newRole := models.FederationRole{Name: req.Name}
	if err := database.DB.Create(&newRole).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "Federation role created successfully", newRole)
}

func GetFederationRoleList(c *gin.Context) {
	var roles []models.FederationRole
	database.DB.Order("name asc").Find(&roles)
	utils.Success(c, "success", roles)
}

func DeleteFederationRole(c *gin.Context) {
	roleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的职务ID")
		return
	}

	result := database.DB.Delete(&models.FederationRole{}, roleID)
	if result.Error != nil {
		utils.Error(c, 5000, "删除失败")
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "职务不存在")
		return
	}

	utils.Success(c, "Federation role deleted successfully", nil)
}
