// file: controllers/user_controller.go
package controllers

import (
	"strconv"

	"github.com/gabimolocea/frvv-admin/database"
	"github.com/gabimolocea/frvv-admin/models"
	"github.com/gabimolocea/frvv-admin/utils"
	"github.com/gin-gonic/gin"
)

// --- 公开接口 ---

func Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
		Email    string `json:"email" binding:"required,email"`
		RealName string `json:"real_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&user).Error; err == nil {
		utils.Error(c, 2001, "用户名或邮箱已被注册")
		return
	}

	newUser := models.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		RealName: req.RealName,
	}

	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "User registered successfully", gin.H{
		"id":       newUser.ID,
		"username": newUser.Username,
		"email":    newUser.Email,
	})
}

func Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		utils.Error(c, 2002, "用户名或密码错误")
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Error(c, 2002, "用户名或密码错误")
		return
	}

	if user.Status == models.StatusBanned {
		utils.Error(c, 2004, "账号已被封禁")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, 5000, "生成 Token 失败")
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// --- 登录后接口 ---

func GetUserDetail(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的用户ID")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	utils.Success(c, "success", user)
}

func UpdateUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的用户ID")
		return
	}

	// 只能修改自己的资料
	currentIDAny, _ := c.Get("user_id")
	if currentIDAny.(uint32) != uint32(userID) {
		utils.Error(c, 4003, "只能修改自己的资料")
		return
	}

	var req struct {
		RealName string `json:"real_name"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	if req.RealName != "" {
		user.RealName = req.RealName
	}
	if req.Password != "" {
		user.Password = req.Password // BeforeSave Hook 负责哈希
	}

	if err := database.DB.Save(&user).Error; err != nil {
		utils.Error(c, 5000, "更新失败: "+err.Error())
		return
	}

	utils.Success(c, "User updated successfully", nil)
}

// --- 管理员接口 ---

func GetUserList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	var users []models.User
	var total int64

	db := database.DB.Model(&models.User{})
	if search != "" {
		db = db.Where("username LIKE ? OR email LIKE ? OR real_name LIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	db.Count(&total)
	db.Order("id asc").Offset((page - 1) * limit).Limit(limit).Find(&users)

	utils.Success(c, "success", gin.H{
		"total": total,
		"users": users,
	})
}

func UpdateUserStatus(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的用户ID")
		return
	}

	var req struct {
		Status models.UserStatus `json:"status" binding:"required,oneof=active banned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	result := database.DB.Model(&models.User{}).Where("id = ?", userID).Update("status", req.Status)
	if result.Error != nil {
		utils.Error(c, 5000, "更新失败")
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	utils.Success(c, "User status updated successfully", nil)
}

func UpdateUserRole(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的用户ID")
		return
	}

	var req struct {
		Role models.UserRole `json:"role" binding:"required,oneof=staff admin root_admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	result := database.DB.Model(&models.User{}).Where("id = ?", userID).Update("role", req.Role)
	if result.Error != nil {
		utils.Error(c, 5000, "更新失败")
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	utils.Success(c, "User role updated successfully", nil)
}

func DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的用户ID")
		return
	}

	result := database.DB.Delete(&models.User{}, userID)
	if result.Error != nil {
		utils.Error(c, 5000, "删除失败")
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	utils.Success(c, "User deleted successfully", nil)
}
