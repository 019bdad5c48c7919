package tools

import (
	"net/url"
	"strconv"
	"strings"

	"adhanmcp/internal/domain"
)

// dateLayout is the upstream path-segment date format, DD-MM-YYYY.
const dateLayout = "02-01-2006"

// requiredString trims value and rejects it when empty.
func requiredString(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", domain.Invalidf(field, "is required and must be non-empty")
	}
	return trimmed, nil
}

// dateOrToday returns the trimmed date, defaulting to today's local
// calendar date when unset.
func (d Deps) dateOrToday(date string) string {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return d.now().Format(dateLayout)
	}
	return trimmed
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func setCoords(q url.Values, lat, lon float64) {
	q.Set("latitude", formatCoord(lat))
	q.Set("longitude", formatCoord(lon))
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

// setBool serializes booleans as the literal strings "true"/"false"; the
// upstream API does not accept native JSON booleans in query parameters.
func setBool(q url.Values, key string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		q.Set(key, "true")
	} else {
		q.Set(key, "false")
	}
}

func setString(q url.Values, key, v string) {
	if trimmed := strings.TrimSpace(v); trimmed != "" {
		q.Set(key, trimmed)
	}
}

// setTimezone maps the friendly argument name onto the upstream parameter.
func setTimezone(q url.Values, tz string) {
	setString(q, "timezonestring", tz)
}

func setSchool(q url.Values, school *int) error {
	if school == nil {
		return nil
	}
	if *school != 0 && *school != 1 {
		return domain.Invalidf("school", "must be 0 (Shafi) or 1 (Hanafi)")
	}
	q.Set("school", strconv.Itoa(*school))
	return nil
}

func setMidnightMode(q url.Values, mode *int) error {
	if mode == nil {
		return nil
	}
	if *mode != 0 && *mode != 1 {
		return domain.Invalidf("midnightMode", "must be 0 or 1")
	}
	q.Set("midnightMode", strconv.Itoa(*mode))
	return nil
}

func setLatitudeAdjustment(q url.Values, method *int) error {
	if method == nil {
		return nil
	}
	if *method < 1 || *method > 3 {
		return domain.Invalidf("latitudeAdjustmentMethod", "must be 1, 2, or 3")
	}
	q.Set("latitudeAdjustmentMethod", strconv.Itoa(*method))
	return nil
}

func setCalendarMethod(q url.Values, method string) error {
	trimmed := strings.TrimSpace(method)
	if trimmed == "" {
		return nil
	}
	switch trimmed {
	case "HJCoSA", "UAQ", "DIYANET", "MATHEMATICAL":
		q.Set("calendarMethod", trimmed)
		return nil
	}
	return domain.Invalidf("calendarMethod", "must be HJCoSA, UAQ, DIYANET, or MATHEMATICAL")
}

func setShafaq(q url.Values, shafaq string) error {
	trimmed := strings.TrimSpace(shafaq)
	if trimmed == "" {
		return nil
	}
	switch trimmed {
	case "general", "ahmer", "abyad":
		q.Set("shafaq", trimmed)
		return nil
	}
	return domain.Invalidf("shafaq", "must be general, ahmer, or abyad")
}
