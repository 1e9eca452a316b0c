package shift

import (
	"testing"
	"time"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/shift"
)

func row(id int, day time.Time, start, end string) shift.GetListResponse {
	d := date.Date{Time: day}
	return shift.GetListResponse{
		ID:        id,
		Date:      &d,
		StartTime: &start,
		EndTime:   &end,
	}
}

func TestBuildDashboard(t *testing.T) {
	// Wednesday.
	now := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)

	list := []shift.GetListResponse{
		row(1, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), "09:00:00", "17:00:00"),
		row(2, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), "09:00:00", "17:00:00"),
		row(3, time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC), "09:00:00", "17:00:00"),
	}

	board, err := buildDashboard(list, now)
	if err != nil {
		t.Fatalf("buildDashboard() error: %v", err)
	}

	if len(board.Past) != 1 || board.Past[0].ID != 1 {
		t.Errorf("past = %+v, want shift 1", board.Past)
	}
	if len(board.Today) != 1 || board.Today[0].ID != 2 {
		t.Errorf("today = %+v, want shift 2", board.Today)
	}
	if len(board.Upcoming) != 1 || board.Upcoming[0].ID != 3 {
		t.Errorf("upcoming = %+v, want shift 3", board.Upcoming)
	}
	if len(board.CurrentWeek) != 3 {
		t.Errorf("current week has %d shifts, want 3", len(board.CurrentWeek))
	}
}

func TestBuildDashboardKeepsDuplicateTimes(t *testing.T) {
	now := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)
	day := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	list := []shift.GetListResponse{
		row(1, day, "09:00:00", "17:00:00"),
		row(2, day, "09:00:00", "17:00:00"),
	}

	board, err := buildDashboard(list, now)
	if err != nil {
		t.Fatalf("buildDashboard() error: %v", err)
	}

	if len(board.Today) != 2 {
		t.Fatalf("today has %d shifts, want both rows with identical times", len(board.Today))
	}
	if board.Today[0].ID == board.Today[1].ID {
		t.Errorf("today holds shift %d twice, want both distinct rows", board.Today[0].ID)
	}
	if len(board.CurrentWeek) != 2 {
		t.Errorf("current week has %d shifts, want 2", len(board.CurrentWeek))
	}
}

func TestBuildDashboardSkipsIncompleteRows(t *testing.T) {
	now := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)

	board, err := buildDashboard([]shift.GetListResponse{{ID: 1}}, now)
	if err != nil {
		t.Fatalf("buildDashboard() error: %v", err)
	}
	if len(board.Past)+len(board.Today)+len(board.Upcoming)+len(board.CurrentWeek) != 0 {
		t.Errorf("dashboard = %+v, want empty for a row without times", board)
	}
}
