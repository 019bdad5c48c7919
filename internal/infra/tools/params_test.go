package tools

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adhanmcp/internal/domain"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestRequiredString(t *testing.T) {
	got, err := requiredString("city", "  Cairo ")
	require.NoError(t, err)
	require.Equal(t, "Cairo", got)

	_, err = requiredString("city", "   ")
	require.Error(t, err)
	require.True(t, domain.IsInvalidArgument(err))
	require.Contains(t, err.Error(), "city")
}

func TestDateOrToday(t *testing.T) {
	deps := Deps{now: func() time.Time {
		return time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local)
	}}
	require.Equal(t, "15-03-2024", deps.dateOrToday(""))
	require.Equal(t, "15-03-2024", deps.dateOrToday("  "))
	require.Equal(t, "01-01-2025", deps.dateOrToday("01-01-2025"))
}

func TestSetSchool(t *testing.T) {
	q := url.Values{}
	require.NoError(t, setSchool(q, nil))
	require.Empty(t, q.Get("school"))

	require.NoError(t, setSchool(q, intPtr(1)))
	require.Equal(t, "1", q.Get("school"))

	err := setSchool(q, intPtr(2))
	require.True(t, domain.IsInvalidArgument(err))
	require.Contains(t, err.Error(), "school")
}

func TestSetMidnightMode(t *testing.T) {
	q := url.Values{}
	require.NoError(t, setMidnightMode(q, intPtr(0)))
	require.Equal(t, "0", q.Get("midnightMode"))
	require.True(t, domain.IsInvalidArgument(setMidnightMode(q, intPtr(5))))
}

func TestSetLatitudeAdjustment(t *testing.T) {
	q := url.Values{}
	require.NoError(t, setLatitudeAdjustment(q, intPtr(3)))
	require.Equal(t, "3", q.Get("latitudeAdjustmentMethod"))
	require.True(t, domain.IsInvalidArgument(setLatitudeAdjustment(q, intPtr(0))))
	require.True(t, domain.IsInvalidArgument(setLatitudeAdjustment(q, intPtr(4))))
}

func TestSetCalendarMethod(t *testing.T) {
	q := url.Values{}
	require.NoError(t, setCalendarMethod(q, ""))
	require.Empty(t, q.Get("calendarMethod"))

	for _, valid := range []string{"HJCoSA", "UAQ", "DIYANET", "MATHEMATICAL"} {
		require.NoError(t, setCalendarMethod(q, valid))
		require.Equal(t, valid, q.Get("calendarMethod"))
	}
	require.True(t, domain.IsInvalidArgument(setCalendarMethod(q, "umm-al-qura")))
}

func TestSetShafaq(t *testing.T) {
	q := url.Values{}
	for _, valid := range []string{"general", "ahmer", "abyad"} {
		require.NoError(t, setShafaq(q, valid))
		require.Equal(t, valid, q.Get("shafaq"))
	}
	require.True(t, domain.IsInvalidArgument(setShafaq(q, "red")))
}

func TestSetBoolSerializesLiteralStrings(t *testing.T) {
	q := url.Values{}
	setBool(q, "iso8601", nil)
	require.Empty(t, q.Get("iso8601"))

	setBool(q, "iso8601", boolPtr(true))
	require.Equal(t, "true", q.Get("iso8601"))

	setBool(q, "iso8601", boolPtr(false))
	require.Equal(t, "false", q.Get("iso8601"))
}

func TestSetTimezoneMapsParameterName(t *testing.T) {
	q := url.Values{}
	setTimezone(q, "Asia/Singapore")
	require.Equal(t, "Asia/Singapore", q.Get("timezonestring"))
	require.Empty(t, q.Get("timezone"))
}

func TestFormatCoord(t *testing.T) {
	require.Equal(t, "21.4225", formatCoord(21.4225))
	require.Equal(t, "-0.5", formatCoord(-0.5))
	require.Equal(t, "0", formatCoord(0))
}
