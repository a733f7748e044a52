package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/views"
	"technician-dispatch/internal/workflow"
)

func TestCalendarHandler_Month(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)

	rr := api.do(t, http.MethodGet, "/calendar/month?date=2025-06-15&selected=2025-06-30", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	mv := decode[views.MonthView](t, rr)
	require.Equal(t, "June 2025", mv.Title)
	require.Len(t, mv.Weeks, 6)

	cell := mv.Weeks[4][1]
	require.Equal(t, domain.NewDate(2025, time.June, 30), cell.Date)
	require.True(t, cell.Today)
	require.Equal(t, &workflow.CreateIntent{Date: cell.Date}, cell.Create)
	require.Len(t, cell.Entries, 2)
}

func TestCalendarHandler_DefaultsToToday(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)

	rr := api.do(t, http.MethodGet, "/calendar/day", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	dv := decode[views.DayView](t, rr)
	require.Equal(t, domain.NewDate(2025, time.June, 30), dv.Date)
	require.Len(t, dv.Entries, 2)
}

func TestCalendarHandler_WeekCompactWithExpand(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)

	rr := api.do(t, http.MethodGet, "/calendar/week?date=2025-07-02&layout=compact&expand=2025-06-30,2025-07-01", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	wv := decode[views.WeekView](t, rr)
	require.Len(t, wv.Days, 7)
	require.True(t, wv.Days[1].Expanded)
	require.True(t, wv.Days[2].Expanded)
	require.False(t, wv.Days[3].Expanded)
}

func TestCalendarHandler_RepeatedExpandStaysExpanded(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)

	rr := api.do(t, http.MethodGet, "/calendar/week?date=2025-07-02&expand=2025-06-30,2025-06-30,2025-06-30", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	wv := decode[views.WeekView](t, rr)
	require.True(t, wv.Days[1].Expanded)
}

func TestCalendarHandler_BadRequests(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)

	tests := []struct {
		name   string
		target string
		msg    string
	}{
		{name: "unknown view", target: "/calendar/year", msg: "invalid view"},
		{name: "unknown layout", target: "/calendar/week?layout=tv", msg: "invalid layout"},
		{name: "month on compact", target: "/calendar/month?layout=compact", msg: "view not offered for layout"},
		{name: "bad anchor", target: "/calendar/week?date=nope", msg: "invalid date"},
		{name: "bad selected", target: "/calendar/month?selected=nope", msg: "invalid selected"},
		{name: "bad expand", target: "/calendar/week?expand=2025-06-30,x", msg: "invalid expand"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := api.do(t, http.MethodGet, tt.target, nil)
			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Equal(t, tt.msg, decode[errResponse](t, rr).Error)
		})
	}
}
