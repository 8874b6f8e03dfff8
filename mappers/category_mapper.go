// file: mappers/category_mapper.go
package mappers

import (
	"github.com/gabimolocea/frvv-admin/dto"
	"github.com/gabimolocea/frvv-admin/models"
)

// MapCategoryToDetailResp 组装项目详情。奖项槽位按项目类型取个人或团体一侧，
// 渲染为名次对应的获奖者名称。
func MapCategoryToDetailResp(cat models.Category, enrolledAthletes []models.CategoryAthlete, enrolledTeams []models.CategoryTeam) dto.CategoryDetailResp {
	resp := dto.CategoryDetailResp{
		ID:               cat.ID,
		Name:             cat.Name,
		CompetitionID:    cat.CompetitionID,
		CompetitionName:  cat.Competition.Name,
		Type:             cat.Type,
		Gender:           cat.Gender,
		EnrolledAthletes: make([]dto.EnrolledAthleteResp, 0, len(enrolledAthletes)),
		EnrolledTeams:    make([]dto.EnrolledTeamResp, 0, len(enrolledTeams)),
	}

	if cat.Type == models.CategoryTypeTeams {
		if cat.FirstPlaceTeam != nil {
			resp.FirstPlaceName = cat.FirstPlaceTeam.Name
		}
		if cat.SecondPlaceTeam != nil {
			resp.SecondPlaceName = cat.SecondPlaceTeam.Name
		}
		if cat.ThirdPlaceTeam != nil {
			resp.ThirdPlaceName = cat.ThirdPlaceTeam.Name
		}
	} else {
		if cat.FirstPlace != nil {
			resp.FirstPlaceName = cat.FirstPlace.FullName()
		}
		if cat.SecondPlace != nil {
			resp.SecondPlaceName = cat.SecondPlace.FullName()
		}
		if cat.ThirdPlace != nil {
			resp.ThirdPlaceName = cat.ThirdPlace.FullName()
		}
	}

	for _, e := range enrolledAthletes {
		row := dto.EnrolledAthleteResp{
			AthleteID:   e.AthleteID,
			AthleteName: e.Athlete.FullName(),
			Weight:      e.Weight,
		}
		if e.Athlete.Club != nil {
			row.ClubName = e.Athlete.Club.Name
		}
		resp.EnrolledAthletes = append(resp.EnrolledAthletes, row)
	}

	for _, e := range enrolledTeams {
		resp.EnrolledTeams = append(resp.EnrolledTeams, dto.EnrolledTeamResp{
			TeamID:   e.TeamID,
			TeamName: e.Team.Name,
		})
	}

	return resp
}
