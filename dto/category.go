// file: dto/category.go
package dto

import "github.com/gabimolocea/frvv-admin/models"

// CreateCategoryReq 创建项目请求
type CreateCategoryReq struct {
	Name          string                `json:"name" binding:"required"`
	CompetitionID uint32                `json:"competition_id" binding:"required"`
	Type          models.CategoryType   `json:"type"`
	Gender        models.CategoryGender `json:"gender"`
}

// UpdateCategoryReq 更新项目基本信息，指针字段表示未提供；
// 奖项通过独立的奖项接口整体提交
type UpdateCategoryReq struct {
	Name   *string                `json:"name"`
	Type   *models.CategoryType   `json:"type"`
	Gender *models.CategoryGender `json:"gender"`
}

// UpdateCategoryAwardsReq 奖项整体提交，null 表示清空对应槽位
type UpdateCategoryAwardsReq struct {
	FirstPlaceID      *uint32 `json:"first_place_id"`
	SecondPlaceID     *uint32 `json:"second_place_id"`
	ThirdPlaceID      *uint32 `json:"third_place_id"`
	FirstPlaceTeamID  *uint32 `json:"first_place_team_id"`
	SecondPlaceTeamID *uint32 `json:"second_place_team_id"`
	ThirdPlaceTeamID  *uint32 `json:"third_place_team_id"`
}

// EnrolledAthleteResp 项目详情中的运动员报名行
type EnrolledAthleteResp struct {
	AthleteID   uint32   `json:"athlete_id"`
	AthleteName string   `json:"athlete_name"`
	ClubName    string   `json:"club_name,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
}

// EnrolledTeamResp 项目详情中的队伍报名行
type EnrolledTeamResp struct {
	TeamID   uint32 `json:"team_id"`
	TeamName string `json:"team_name"`
}

// CategoryDetailResp 项目详情
type CategoryDetailResp struct {
	ID               uint32                `json:"id"`
	Name             string                `json:"name"`
	CompetitionID    uint32                `json:"competition_id"`
	CompetitionName  string                `json:"competition_name"`
	Type             models.CategoryType   `json:"type"`
	Gender           models.CategoryGender `json:"gender"`
	FirstPlaceName   string                `json:"first_place_name,omitempty"`
	SecondPlaceName  string                `json:"second_place_name,omitempty"`
	ThirdPlaceName   string                `json:"third_place_name,omitempty"`
	EnrolledAthletes []EnrolledAthleteResp `json:"enrolled_athletes"`
	EnrolledTeams    []EnrolledTeamResp    `json:"enrolled_teams"`
}
