// file: routes/router.go
package routes

import (
	"github.com/gabimolocea/frvv-admin/controllers"
	"github.com/gabimolocea/frvv-admin/middlewares"
	"github.com/gabimolocea/frvv-admin/models"
	"github.com/gin-gonic/gin"
)

// SetupRouter 注册全部路由。
// /api/v1/public 下为官网公开接口，其余接口均要求 JWT；
// 写操作要求 admin 及以上角色，root_admin 拥有全部权限。
func SetupRouter() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api/v1")

	// ========== 公开接口 ==========
	// 不强制登录，但带有效 Token 时解析出用户信息供处理器使用
	public := api.Group("/public")
	public.Use(middlewares.JWTTryAuthMiddleware())
	{
		public.GET("/news", controllers.GetPublishedNews)
		public.GET("/news/:slug", controllers.GetNewsPostBySlug)
		public.GET("/events", controllers.GetUpcomingEvents)
		public.GET("/about", controllers.GetAboutSections)
		public.GET("/contact", controllers.GetContactInfo)
		public.POST("/contact/messages", controllers.SubmitContactMessage)
	}

	// ========== 登录注册 ==========
	api.POST("/register", controllers.Register)
	api.POST("/login", controllers.Login)

	// ========== 需要登录 ==========
	auth := api.Group("")
	auth.Use(middlewares.JWTAuthMiddleware())
	{
		auth.GET("/users/:id", controllers.GetUserDetail)
		auth.PUT("/users/:id", controllers.UpdateUser)

		auth.GET("/athletes", controllers.GetAthleteList)
		auth.GET("/athletes/:id", controllers.GetAthleteDetail)
		auth.GET("/clubs", controllers.GetClubList)
		auth.GET("/clubs/:id", controllers.GetClubDetail)
		auth.GET("/cities", controllers.GetCityList)
		auth.GET("/titles", controllers.GetTitleList)
		auth.GET("/federation-roles", controllers.GetFederationRoleList)
		auth.GET("/grades", controllers.GetGradeList)
		auth.GET("/grade-history", controllers.GetGradeHistoryList)
		auth.GET("/medical-visas", controllers.GetMedicalVisaList)
		auth.GET("/annual-visas", controllers.GetAnnualVisaList)
		auth.GET("/seminars", controllers.GetSeminarList)
		auth.GET("/seminars/:id", controllers.GetSeminarDetail)
		auth.GET("/competitions", controllers.GetCompetitionList)
		auth.GET("/competitions/:id", controllers.GetCompetitionDetail)
		auth.GET("/categories", controllers.GetCategoryList)
		auth.GET("/categories/:id", controllers.GetCategoryDetail)
		auth.GET("/categories/:id/standings", controllers.GetCategoryStandings)
		auth.GET("/teams", controllers.GetTeamList)
		auth.GET("/teams/:id", controllers.GetTeamDetail)
		auth.GET("/matches", controllers.GetMatchList)
		auth.GET("/matches/:id", controllers.GetMatchDetail)
	}

	// ========== 管理员 ==========
	admin := api.Group("")
	admin.Use(middlewares.JWTAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleRootAdmin))
	{
		// 基础数据
		admin.POST("/cities", controllers.CreateCity)
		admin.PUT("/cities/:id", controllers.UpdateCity)
		admin.DELETE("/cities/:id", controllers.DeleteCity)
		admin.POST("/titles", controllers.CreateTitle)
		admin.DELETE("/titles/:id", controllers.DeleteTitle)
		admin.POST("/federation-roles", controllers.CreateFederationRole)
		admin.DELETE("/federation-roles/:id", controllers.DeleteFederationRole)

		// 段位
		admin.POST("/grades", controllers.CreateGrade)
		admin.PUT("/grades/:id", controllers.UpdateGrade)
		admin.DELETE("/grades/:id", controllers.DeleteGrade)
		admin.POST("/grade-history", controllers.CreateGradeHistory)
		admin.DELETE("/grade-history/:id", controllers.DeleteGradeHistory)

		// 俱乐部
		admin.POST("/clubs", controllers.CreateClub)
		admin.PUT("/clubs/:id", controllers.UpdateClub)
		admin.DELETE("/clubs/:id", controllers.DeleteClub)
		admin.POST("/clubs/:id/coaches/:athlete_id", controllers.AddClubCoach)
		admin.DELETE("/clubs/:id/coaches/:athlete_id", controllers.RemoveClubCoach)

		// 运动员
		admin.POST("/athletes", controllers.CreateAthlete)
		admin.PUT("/athletes/:id", controllers.UpdateAthlete)
		admin.DELETE("/athletes/:id", controllers.DeleteAthlete)

		// 签证
		admin.POST("/medical-visas", controllers.CreateMedicalVisa)
		admin.PUT("/medical-visas/:id", controllers.UpdateMedicalVisa)
		admin.DELETE("/medical-visas/:id", controllers.DeleteMedicalVisa)
		admin.POST("/annual-visas", controllers.CreateAnnualVisa)
		admin.PUT("/annual-visas/:id", controllers.UpdateAnnualVisa)
		admin.DELETE("/annual-visas/:id", controllers.DeleteAnnualVisa)

		// 培训研讨会
		admin.POST("/seminars", controllers.CreateSeminar)
		admin.PUT("/seminars/:id", controllers.UpdateSeminar)
		admin.DELETE("/seminars/:id", controllers.DeleteSeminar)
		admin.POST("/seminars/:id/athletes", controllers.AddSeminarAthlete)
		admin.DELETE("/seminars/:id/athletes/:athlete_id", controllers.RemoveSeminarAthlete)

		// 比赛与项目
		admin.POST("/competitions", controllers.CreateCompetition)
		admin.PUT("/competitions/:id", controllers.UpdateCompetition)
		admin.DELETE("/competitions/:id", controllers.DeleteCompetition)
		admin.POST("/categories", controllers.CreateCategory)
		admin.PUT("/categories/:id", controllers.UpdateCategory)
		admin.PUT("/categories/:id/awards", controllers.UpdateCategoryAwards)
		admin.DELETE("/categories/:id", controllers.DeleteCategory)
		admin.POST("/categories/:id/athletes", controllers.EnrollAthlete)
		admin.DELETE("/categories/:id/athletes/:athlete_id", controllers.WithdrawAthlete)
		admin.POST("/categories/:id/teams", controllers.EnrollTeam)
		admin.DELETE("/categories/:id/teams/:team_id", controllers.WithdrawTeam)
		admin.POST("/categories/:id/athlete-scores", controllers.SubmitAthleteScore)
		admin.POST("/categories/:id/team-scores", controllers.SubmitTeamScore)

		// 队伍
		admin.POST("/teams", controllers.CreateTeam)
		admin.DELETE("/teams/:id", controllers.DeleteTeam)
		admin.POST("/teams/:id/members", controllers.AddTeamMember)
		admin.DELETE("/teams/:id/members/:athlete_id", controllers.RemoveTeamMember)

		// 对抗赛
		admin.POST("/matches", controllers.CreateMatch)
		admin.PUT("/matches/:id", controllers.UpdateMatch)
		admin.DELETE("/matches/:id", controllers.DeleteMatch)
		admin.POST("/matches/:id/referees", controllers.AddMatchReferee)
		admin.DELETE("/matches/:id/referees/:athlete_id", controllers.RemoveMatchReferee)
		admin.POST("/matches/:id/referee-scores", controllers.SubmitRefereeScore)
		admin.DELETE("/matches/:id/referee-scores/:referee_id", controllers.DeleteRefereeScore)

		// 官网内容
		admin.GET("/news", controllers.GetNewsPostList)
		admin.POST("/news", controllers.CreateNewsPost)
		admin.PUT("/news/:id", controllers.UpdateNewsPost)
		admin.DELETE("/news/:id", controllers.DeleteNewsPost)
		admin.GET("/events", controllers.GetLandingEventList)
		admin.POST("/events", controllers.CreateLandingEvent)
		admin.DELETE("/events/:id", controllers.DeleteLandingEvent)
		admin.POST("/about", controllers.CreateAboutSection)
		admin.PUT("/about/:id", controllers.UpdateAboutSection)
		admin.DELETE("/about/:id", controllers.DeleteAboutSection)
		admin.PUT("/contact", controllers.UpsertContactInfo)
		admin.GET("/contact/messages", controllers.GetContactMessageList)
		admin.PUT("/contact/messages/:id", controllers.UpdateContactMessage)
		admin.DELETE("/contact/messages/:id", controllers.DeleteContactMessage)
	}

	// ========== 超级管理员 ==========
	root := api.Group("")
	root.Use(middlewares.JWTAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleRootAdmin))
	{
		root.GET("/users", controllers.GetUserList)
		root.PUT("/users/:id/status", controllers.UpdateUserStatus)
		root.PUT("/users/:id/role", controllers.UpdateUserRole)
		root.DELETE("/users/:id", controllers.DeleteUser)
	}

	return r
}
