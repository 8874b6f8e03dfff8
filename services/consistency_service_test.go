// file: services/consistency_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/gabimolocea/frvv-admin/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func gradeEntry(gradeID uint32, rankOrder int, obtained time.Time) models.GradeHistory {
	return models.GradeHistory{
		GradeID:      gradeID,
		Grade:        models.Grade{ID: gradeID, RankOrder: rankOrder},
		ObtainedDate: obtained,
	}
}

func TestCurrentGradeIDPicksHighestRank(t *testing.T) {
	history := []models.GradeHistory{
		gradeEntry(1, 10, date(2020, 3, 1)),
		gradeEntry(2, 30, date(2021, 6, 1)),
		gradeEntry(3, 20, date(2022, 9, 1)),
	}
	got := CurrentGradeID(history)
	if got == nil {
		t.Fatal("expected a grade id, got nil")
	}
	if *got != 2 {
		t.Fatalf("expected grade 2 (highest rank), got %d", *got)
	}
}

func TestCurrentGradeIDTieBreaksByObtainedDate(t *testing.T) {
	history := []models.GradeHistory{
		gradeEntry(1, 30, date(2020, 3, 1)),
		gradeEntry(2, 30, date(2023, 3, 1)),
		gradeEntry(3, 10, date(2024, 3, 1)),
	}
	got := CurrentGradeID(history)
	if got == nil {
		t.Fatal("expected a grade id, got nil")
	}
	if *got != 2 {
		t.Fatalf("expected grade 2 (same rank, more recent), got %d", *got)
	}
}

func TestCurrentGradeIDEmptyHistory(t *testing.T) {
	if got := CurrentGradeID(nil); got != nil {
		t.Fatalf("expected nil for empty history, got %d", *got)
	}
}

func TestTeamNameForJoinsMembersInOrder(t *testing.T) {
	members := []models.TeamMember{
		{Athlete: models.Athlete{FirstName: "Ion", LastName: "Popescu"}},
		{Athlete: models.Athlete{FirstName: "Maria", LastName: "Ionescu"}},
		{Athlete: models.Athlete{FirstName: "Andrei", LastName: "Radu"}},
	}
	got := TeamNameFor(members)
	want := "Ion Popescu - Maria Ionescu - Andrei Radu"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTeamNameForEmptyMembers(t *testing.T) {
	if got := TeamNameFor(nil); got != "" {
		t.Fatalf("expected empty name for empty team, got %q", got)
	}
}

func vote(v models.CornerVote) *models.CornerVote {
	return &v
}

func TestMatchWinnerIDMajorityRed(t *testing.T) {
	m := models.Match{RedCornerID: 7, BlueCornerID: 8}
	scores := []models.RefereeScore{
		{WinnerVote: vote(models.VoteRed)},
		{WinnerVote: vote(models.VoteRed)},
		{WinnerVote: vote(models.VoteBlue)},
	}
	got := MatchWinnerID(m, scores)
	if got == nil || *got != 7 {
		t.Fatalf("expected red corner 7 to win, got %v", got)
	}
}

func TestMatchWinnerIDMajorityBlue(t *testing.T) {
	m := models.Match{RedCornerID: 7, BlueCornerID: 8}
	scores := []models.RefereeScore{
		{WinnerVote: vote(models.VoteBlue)},
	}
	got := MatchWinnerID(m, scores)
	if got == nil || *got != 8 {
		t.Fatalf("expected blue corner 8 to win, got %v", got)
	}
}

func TestMatchWinnerIDTieIsNil(t *testing.T) {
	m := models.Match{RedCornerID: 7, BlueCornerID: 8}
	scores := []models.RefereeScore{
		{WinnerVote: vote(models.VoteRed)},
		{WinnerVote: vote(models.VoteBlue)},
	}
	if got := MatchWinnerID(m, scores); got != nil {
		t.Fatalf("expected nil winner on tie, got %d", *got)
	}
}

func TestMatchWinnerIDNoScoresIsNil(t *testing.T) {
	m := models.Match{RedCornerID: 7, BlueCornerID: 8}
	if got := MatchWinnerID(m, nil); got != nil {
		t.Fatalf("expected nil winner with no referee scores, got %d", *got)
	}
}

func TestMatchWinnerIDIgnoresMissingVotes(t *testing.T) {
	m := models.Match{RedCornerID: 7, BlueCornerID: 8}
	scores := []models.RefereeScore{
		{WinnerVote: nil},
		{WinnerVote: vote(models.VoteBlue)},
	}
	got := MatchWinnerID(m, scores)
	if got == nil || *got != 8 {
		t.Fatalf("expected blue corner 8 to win, got %v", got)
	}
}

func TestMatchDisplayName(t *testing.T) {
	red := models.Athlete{FirstName: "Ion", LastName: "Popescu"}
	blue := models.Athlete{FirstName: "Andrei", LastName: "Radu"}
	got := MatchDisplayName(red, blue, models.MatchTypeFinals, "Seniori -70kg")
	want := "Ion vs Andrei (finals) - Seniori -70kg"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

// 应用函数靠 equalID 判断目标状态是否已满足，判错会导致多余写入或漏写
func TestEqualID(t *testing.T) {
	seven, alsoSeven, eight := uint32(7), uint32(7), uint32(8)

	cases := []struct {
		name string
		a, b *uint32
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs value", nil, &seven, false},
		{"value vs nil", &seven, nil, false},
		{"equal values", &seven, &alsoSeven, true},
		{"different values", &seven, &eight, false},
	}
	for _, tc := range cases {
		if got := equalID(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
