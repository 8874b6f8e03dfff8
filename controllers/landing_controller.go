// file: controllers/landing_controller.go
package controllers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gabimolocea/frvv-admin/database"
	"github.com/gabimolocea/frvv-admin/models"
	"github.com/gabimolocea/frvv-admin/utils"
	"github.com/gin-gonic/gin"
)

// 官网内容模块。公开读取接口不鉴权，新闻列表走 Redis 缓存，
// 内容变动时由管理接口删除缓存键。

const (
	publishedNewsCacheKey = "landing:news:published"
	newsCacheTTL          = 5 * time.Minute
)

func invalidateNewsCache() {
	database.RDB.Del(database.Ctx, publishedNewsCacheKey)
}

// ========== 新闻 ==========

func CreateNewsPost(c *gin.Context) {
	var req struct {
		Title            string `json:"title" binding:"required"`
		Slug             string `json:"slug" binding:"required"`
		Content          string `json:"content"`
		Excerpt          string `json:"excerpt"`
		FeaturedImage    string `json:"featured_image"`
		FeaturedImageAlt string `json:"featured_image_alt"`
		Published        bool   `json:"published"`
		Featured         bool   `json:"featured"`
		Author           string `json:"author"`
		Tags             string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var count int64
	database.DB.Model(&models.NewsPost{}).Where("slug = ?", req.Slug).Count(&count)
	if count > 0 {
		utils.Error(c, 2011, "Slug 已被占用")
		return
	}

	post := models.NewsPost{
		Title:            req.Title,
		Slug:             req.Slug,
		Content:          req.Content,
		Excerpt:          req.Excerpt,
		FeaturedImage:    req.FeaturedImage,
		FeaturedImageAlt: req.FeaturedImageAlt,
		Published:        req.Published,
		Featured:         req.Featured,
		Author:           req.Author,
		Tags:             req.Tags,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	invalidateNewsCache()
	utils.Success(c, "News post created successfully", gin.H{"id": post.ID})
}

// GetPublishedNews 公开接口：返回已发布的新闻，优先走缓存
func GetPublishedNews(c *gin.Context) {
	cached, err := database.RDB.Get(database.Ctx, publishedNewsCacheKey).Result()
	if err == nil {
		var posts []models.NewsPost
		if jsonErr := json.Unmarshal([]byte(cached), &posts); jsonErr == nil {
			utils.Success(c, "success", gin.H{"posts": posts})
			return
		}
	}

	var posts []models.NewsPost
	database.DB.Where("published = ?", true).Order("created_at desc").Find(&posts)

	if payload, jsonErr := json.Marshal(posts); jsonErr == nil {
		database.RDB.Set(database.Ctx, publishedNewsCacheKey, payload, newsCacheTTL)
	}
	utils.Success(c, "success", gin.H{"posts": posts})
}

// GetNewsPostBySlug 公开接口：按 slug 查询已发布的新闻
func GetNewsPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var post models.NewsPost
	if err := database.DB.Where("slug = ? AND published = ?", slug, true).First(&post).Error; err != nil {
		utils.Error(c, 4004, "文章不存在")
		return
	}
	utils.Success(c, "success", post)
}

func GetNewsPostList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var posts []models.NewsPost
	var total int64
	db := database.DB.Model(&models.NewsPost{})
	db.Count(&total)
	db.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&posts)

	utils.Success(c, "success", gin.H{
		"total": total,
		"posts": posts,
	})
}

func UpdateNewsPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的文章ID")
		return
	}

	var req struct {
		Title            *string `json:"title"`
		Slug             *string `json:"slug"`
		Content          *string `json:"content"`
		Excerpt          *string `json:"excerpt"`
		FeaturedImage    *string `json:"featured_image"`
		FeaturedImageAlt *string `json:"featured_image_alt"`
		Published        *bool   `json:"published"`
		Featured         *bool   `json:"featured"`
		Author           *string `json:"author"`
		Tags             *string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var post models.NewsPost
	if err := database.DB.First(&post, postID).Error; err != nil {
		utils.Error(c, 4004, "文章不存在")
		return
	}

	if req.Slug != nil && *req.Slug != post.Slug {
		var count int64
		database.DB.Model(&models.NewsPost{}).Where("slug = ?", *req.Slug).Count(&count)
		if count > 0 {
			utils.Error(c, 2011, "Slug 已被占用")
			return
		}
		post.Slug = *req.Slug
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = *req.FeaturedImage
	}
	if req.FeaturedImageAlt != nil {
		post.FeaturedImageAlt = *req.FeaturedImageAlt
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
	if req.Featured != nil {
		post.Featured = *req.Featured
	}
	if req.Author != nil {
		post.Author = *req.Author
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}

	if err := database.DB.Save(&post).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	invalidateNewsCache()
	utils.Success(c, "News post updated successfully", nil)
}

func DeleteNewsPost(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的文章ID")
		return
	}
	if err := database.DB.Delete(&models.NewsPost{}, postID).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	invalidateNewsCache()
	utils.Success(c, "News post deleted successfully", nil)
}

// ========== 活动公告 ==========

func CreateLandingEvent(c *gin.Context) {
	var req struct {
		Title                string     `json:"title" binding:"required"`
		Slug                 string     `json:"slug" binding:"required"`
		Description          string     `json:"description"`
		StartDate            time.Time  `json:"start_date" binding:"required"`
		EndDate              *time.Time `json:"end_date"`
		Location             string     `json:"location" binding:"required"`
		Address              string     `json:"address"`
		FeaturedImage        string     `json:"featured_image"`
		IsFeatured           bool       `json:"is_featured"`
		RegistrationRequired bool       `json:"registration_required"`
		RegistrationLink     string     `json:"registration_link"`
		MaxParticipants      *int       `json:"max_participants"`
		Price                *float64   `json:"price"`
		Tags                 string     `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var count int64
	database.DB.Model(&models.LandingEvent{}).Where("slug = ?", req.Slug).Count(&count)
	if count > 0 {
		utils.Error(c, 2011, "Slug 已被占用")
		return
	}

	event := models.LandingEvent{
		Title:                req.Title,
		Slug:                 req.Slug,
		Description:          req.Description,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Location:             req.Location,
		Address:              req.Address,
		FeaturedImage:        req.FeaturedImage,
		IsFeatured:           req.IsFeatured,
		RegistrationRequired: req.RegistrationRequired,
		RegistrationLink:     req.RegistrationLink,
		MaxParticipants:      req.MaxParticipants,
		Price:                req.Price,
		Tags:                 req.Tags,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Event created successfully", gin.H{"id": event.ID})
}

// GetUpcomingEvents 公开接口：未开始的活动按开始时间升序
func GetUpcomingEvents(c *gin.Context) {
	var events []models.LandingEvent
	database.DB.Where("start_date > ?", time.Now()).Order("start_date asc").Find(&events)
	utils.Success(c, "success", gin.H{"events": events})
}

func GetLandingEventList(c *gin.Context) {
	var events []models.LandingEvent
	database.DB.Order("start_date desc").Find(&events)
	utils.Success(c, "success", gin.H{"events": events})
}

func DeleteLandingEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的活动ID")
		return
	}
	if err := database.DB.Delete(&models.LandingEvent{}, eventID).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Event deleted successfully", nil)
}

// ========== 关于我们 ==========

// GetAboutSections 公开接口：启用中的板块按排序值返回
func GetAboutSections(c *gin.Context) {
	var sections []models.AboutSection
	database.DB.Where("is_active = ?", true).Order("sort_order asc").Find(&sections)
	utils.Success(c, "success", gin.H{"sections": sections})
}

func CreateAboutSection(c *gin.Context) {
	var req struct {
		SectionTitle string `json:"section_title" binding:"required"`
		Content      string `json:"content"`
		Image        string `json:"image"`
		ImageAlt     string `json:"image_alt"`
		SortOrder    int    `json:"sort_order"`
		IsActive     *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	section := models.AboutSection{
		SectionTitle: req.SectionTitle,
		Content:      req.Content,
		Image:        req.Image,
		ImageAlt:     req.ImageAlt,
		SortOrder:    req.SortOrder,
		IsActive:     true,
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}
	if err := database.DB.Create(&section).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "About section created successfully", gin.H{"id": section.ID})
}

func UpdateAboutSection(c *gin.Context) {
	sectionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的板块ID")
		return
	}

	var req struct {
		SectionTitle *string `json:"section_title"`
		Content      *string `json:"content"`
		Image        *string `json:"image"`
		ImageAlt     *string `json:"image_alt"`
		SortOrder    *int    `json:"sort_order"`
		IsActive     *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var section models.AboutSection
	if err := database.DB.First(&section, sectionID).Error; err != nil {
		utils.Error(c, 4004, "板块不存在")
		return
	}

	if req.SectionTitle != nil {
		section.SectionTitle = *req.SectionTitle
	}
	if req.Content != nil {
		section.Content = *req.Content
	}
	if req.Image != nil {
		section.Image = *req.Image
	}
	if req.ImageAlt != nil {
		section.ImageAlt = *req.ImageAlt
	}
	if req.SortOrder != nil {
		section.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}
	if err := database.DB.Save(&section).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "About section updated successfully", nil)
}

func DeleteAboutSection(c *gin.Context) {
	sectionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的板块ID")
		return
	}
	if err := database.DB.Delete(&models.AboutSection{}, sectionID).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "About section deleted successfully", nil)
}

// ========== 联系方式与留言 ==========

// GetContactInfo 公开接口：返回启用中的联系方式
func GetContactInfo(c *gin.Context) {
	var info models.ContactInfo
	if err := database.DB.Where("is_active = ?", true).First(&info).Error; err != nil {
		utils.Error(c, 4004, "联系方式未配置")
		return
	}
	utils.Success(c, "success", info)
}

func UpsertContactInfo(c *gin.Context) {
	var req models.ContactInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var existing models.ContactInfo
	err := database.DB.Where("is_active = ?", true).First(&existing).Error
	if err == nil {
		req.ID = existing.ID
	}
	if err := database.DB.Save(&req).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Contact info saved successfully", nil)
}

// SubmitContactMessage 公开接口：访客留言
func SubmitContactMessage(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	msg := models.ContactMessage{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Message:  req.Message,
		Priority: models.PriorityMedium,
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Message submitted successfully", nil)
}

func GetContactMessageList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	unreadOnly := c.Query("unread") == "true"

	var msgs []models.ContactMessage
	var total int64
	db := database.DB.Model(&models.ContactMessage{})
	if unreadOnly {
		db = db.Where("is_read = ?", false)
	}
	db.Count(&total)
	db.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&msgs)

	utils.Success(c, "success", gin.H{
		"total":    total,
		"messages": msgs,
	})
}

func UpdateContactMessage(c *gin.Context) {
	msgID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的留言ID")
		return
	}

	var req struct {
		Priority   *models.MessagePriority `json:"priority"`
		IsRead     *bool                   `json:"is_read"`
		IsReplied  *bool                   `json:"is_replied"`
		AdminNotes *string                 `json:"admin_notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var msg models.ContactMessage
	if err := database.DB.First(&msg, msgID).Error; err != nil {
		utils.Error(c, 4004, "留言不存在")
		return
	}

	if req.Priority != nil {
		msg.Priority = *req.Priority
	}
	if req.IsRead != nil {
		msg.IsRead = *req.IsRead
	}
	if req.IsReplied != nil {
		msg.IsReplied = *req.IsReplied
	}
	if req.AdminNotes != nil {
		msg.AdminNotes = *req.AdminNotes
	}
	if err := database.DB.Save(&msg).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Message updated successfully", nil)
}

func DeleteContactMessage(c *gin.Context) {
	msgID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的留言ID")
		return
	}
	if err := database.DB.Delete(&models.ContactMessage{}, msgID).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}
	utils.Success(c, "Message deleted successfully", nil)
}
