package tradecal

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGetTradingDates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		switch month {
		case "2025-06":
			fmt.Fprint(w, `{"data":[
				{"jyrq":"2025-06-27","jybz":"1"},
				{"jyrq":"2025-06-28","jybz":"0"},
				{"jyrq":"2025-06-29","jybz":"0"},
				{"jyrq":"2025-06-30","jybz":"1"}
			]}`)
		case "2025-07":
			fmt.Fprint(w, `{"data":[
				{"jyrq":"2025-07-01","jybz":"1"},
				{"jyrq":"2025-07-02","jybz":"1"}
			]}`)
		default:
			t.Errorf("unexpected month %s", month)
		}
	}))
	defer server.Close()

	oldBase := BaseUrl
	BaseUrl = server.URL
	defer func() { BaseUrl = oldBase }()

	out, err := GetTradingDates(
		time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	// 06-27 is before the range, weekend days are not trading days
	require.Equal(
		t,
		"",
		cmp.Diff(
			&TradingCalendar{
				Dates: []string{"2025-06-30", "2025-07-01", "2025-07-02"},
			},
			out,
		),
	)
}

func TestTradingCalendar_LastBefore(t *testing.T) {
	cal := TradingCalendar{Dates: []string{"2025-07-16", "2025-07-17", "2025-07-18"}}

	t.Run("skips the date itself", func(t *testing.T) {
		date, ok := cal.LastBefore("2025-07-18")
		require.True(t, ok)
		require.Equal(t, "2025-07-17", date)
	})

	t.Run("weekend rolls back to friday", func(t *testing.T) {
		date, ok := cal.LastBefore("2025-07-20")
		require.True(t, ok)
		require.Equal(t, "2025-07-18", date)
	})

	t.Run("nothing earlier", func(t *testing.T) {
		_, ok := cal.LastBefore("2025-07-16")
		require.False(t, ok)
	})
}
