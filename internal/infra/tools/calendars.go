package tools

import (
	"context"
	"fmt"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"adhanmcp/internal/infra/aladhan"
)

type hijriCalendarByCityArgs struct {
	Year                     int    `json:"year" jsonschema:"Hijri year (e.g. 1446)"`
	Month                    int    `json:"month" jsonschema:"Hijri month (1-12)"`
	City                     string `json:"city" jsonschema:"City name"`
	Country                  string `json:"country" jsonschema:"Country name or 2-letter ISO code"`
	State                    string `json:"state,omitempty" jsonschema:"State or province (optional)"`
	Method                   *int   `json:"method,omitempty" jsonschema:"Prayer calculation method (0-23 or 99)"`
	School                   *int   `json:"school,omitempty" jsonschema:"Islamic school (0=Shafi, 1=Hanafi)"`
	Timezone                 string `json:"timezone,omitempty" jsonschema:"IANA timezone (e.g. Asia/Singapore)"`
	ISO8601                  *bool  `json:"iso8601,omitempty" jsonschema:"Return times in ISO-8601 format"`
	LatitudeAdjustmentMethod *int   `json:"latitudeAdjustmentMethod,omitempty" jsonschema:"Latitude adjustment method (1-3)"`
	CalendarMethod           string `json:"calendarMethod,omitempty" jsonschema:"Calendar calculation method (HJCoSA|UAQ|DIYANET|MATHEMATICAL)"`
	MidnightMode             *int   `json:"midnightMode,omitempty" jsonschema:"Midnight calculation mode (0-1)"`
	Adjustment               *int   `json:"adjustment,omitempty" jsonschema:"Time adjustment in minutes"`
}

type hijriCalendarArgs struct {
	Year                     int     `json:"year" jsonschema:"Hijri year (e.g. 1446)"`
	Month                    int     `json:"month" jsonschema:"Hijri month (1-12)"`
	Lat                      float64 `json:"lat" jsonschema:"Latitude coordinate"`
	Lon                      float64 `json:"lon" jsonschema:"Longitude coordinate"`
	Method                   *int    `json:"method,omitempty" jsonschema:"Prayer calculation method (0-23 or 99)"`
	School                   *int    `json:"school,omitempty" jsonschema:"Islamic school (0=Shafi, 1=Hanafi)"`
	MidnightMode             *int    `json:"midnightMode,omitempty" jsonschema:"Midnight calculation mode (0-1)"`
	Timezone                 string  `json:"timezone,omitempty" jsonschema:"IANA timezone (e.g. Asia/Singapore)"`
	LatitudeAdjustmentMethod *int    `json:"latitudeAdjustmentMethod,omitempty" jsonschema:"Latitude adjustment method (1-3)"`
	CalendarMethod           string  `json:"calendarMethod,omitempty" jsonschema:"Calendar calculation method (HJCoSA|UAQ|DIYANET|MATHEMATICAL)"`
	ISO8601                  *bool   `json:"iso8601,omitempty" jsonschema:"Return times in ISO-8601 format"`
	Adjustment               *int    `json:"adjustment,omitempty" jsonschema:"Time adjustment in minutes"`
}

type monthlyCalendarArgs struct {
	Year                     int     `json:"year" jsonschema:"Gregorian year (e.g. 2025)"`
	Month                    int     `json:"month" jsonschema:"Gregorian month (1-12)"`
	Lat                      float64 `json:"lat" jsonschema:"Latitude coordinate"`
	Lon                      float64 `json:"lon" jsonschema:"Longitude coordinate"`
	Method                   *int    `json:"method,omitempty" jsonschema:"Prayer calculation method (0-23 or 99)"`
	School                   *int    `json:"school,omitempty" jsonschema:"Islamic school (0=Shafi, 1=Hanafi)"`
	MidnightMode             *int    `json:"midnightMode,omitempty" jsonschema:"Midnight calculation mode (0-1)"`
	Timezone                 string  `json:"timezone,omitempty" jsonschema:"IANA timezone (e.g. Asia/Singapore)"`
	LatitudeAdjustmentMethod *int    `json:"latitudeAdjustmentMethod,omitempty" jsonschema:"Latitude adjustment method (1-3)"`
	Shafaq                   string  `json:"shafaq,omitempty" jsonschema:"Shafaq type (general|ahmer|abyad)"`
	Tune                     string  `json:"tune,omitempty" jsonschema:"Comma-separated minute offsets for timings"`
	ISO8601                  *bool   `json:"iso8601,omitempty" jsonschema:"Return times in ISO-8601 format"`
	Adjustment               *int    `json:"adjustment,omitempty" jsonschema:"Time adjustment in minutes"`
}

type monthlyCalendarByCityArgs struct {
	Year                     int    `json:"year" jsonschema:"Gregorian year (e.g. 2025)"`
	Month                    int    `json:"month" jsonschema:"Gregorian month (1-12)"`
	City                     string `json:"city" jsonschema:"City name"`
	Country                  string `json:"country" jsonschema:"Country name or 2-letter ISO code"`
	State                    string `json:"state,omitempty" jsonschema:"State or province (optional)"`
	Method                   *int   `json:"method,omitempty" jsonschema:"Prayer calculation method (0-23 or 99)"`
	School                   *int   `json:"school,omitempty" jsonschema:"Islamic school (0=Shafi, 1=Hanafi)"`
	MidnightMode             *int   `json:"midnightMode,omitempty" jsonschema:"Midnight calculation mode (0-1)"`
	Timezone                 string `json:"timezone,omitempty" jsonschema:"IANA timezone (e.g. Asia/Singapore)"`
	LatitudeAdjustmentMethod *int   `json:"latitudeAdjustmentMethod,omitempty" jsonschema:"Latitude adjustment method (1-3)"`
	Shafaq                   string `json:"shafaq,omitempty" jsonschema:"Shafaq type (general|ahmer|abyad)"`
	Tune                     string `json:"tune,omitempty" jsonschema:"Comma-separated minute offsets for timings"`
	ISO8601                  *bool  `json:"iso8601,omitempty" jsonschema:"Return times in ISO-8601 format"`
	Adjustment               *int   `json:"adjustment,omitempty" jsonschema:"Time adjustment in minutes"`
	X7XAPIKey                string `json:"x7xapikey,omitempty" jsonschema:"API key for premium features"`
}

func registerCalendarTools(server *mcp.Server, deps Deps) {
	register(server, deps, &mcp.Tool{
		Name:        "get_hijri_calendar_by_city",
		Description: "Get Hijri month calendar by city/country.",
	}, func(ctx context.Context, args hijriCalendarByCityArgs) ([]byte, error) {
		city, err := requiredString("city", args.City)
		if err != nil {
			return nil, err
		}
		country, err := requiredString("country", args.Country)
		if err != nil {
			return nil, err
		}

		query := url.Values{}
		query.Set("city", city)
		query.Set("country", country)
		setString(query, "state", args.State)
		setInt(query, "method", args.Method)
		if err := setSchool(query, args.School); err != nil {
			return nil, err
		}
		setTimezone(query, args.Timezone)
		if err := setLatitudeAdjustment(query, args.LatitudeAdjustmentMethod); err != nil {
			return nil, err
		}
		if err := setCalendarMethod(query, args.CalendarMethod); err != nil {
			return nil, err
		}
		if err := setMidnightMode(query, args.MidnightMode); err != nil {
			return nil, err
		}
		setBool(query, "iso8601", args.ISO8601)
		setInt(query, "adjustment", args.Adjustment)

		path := fmt.Sprintf("/hijriCalendarByCity/%d/%d", args.Year, args.Month)
		raw, err := deps.Client.GetJSON(ctx, path, query, deps.Config.CalendarTimeout)
		if err != nil {
			return nil, err
		}
		return aladhan.Unwrap(raw), nil
	})

	register(server, deps, &mcp.Tool{
		Name:        "get_hijri_calendar",
		Description: "Get prayer times for a Hijri month by coordinates.",
	}, func(ctx context.Context, args hijriCalendarArgs) ([]byte, error) {
		query := url.Values{}
		setCoords(query, args.Lat, args.Lon)
		setInt(query, "method", args.Method)
		if err := setSchool(query, args.School); err != nil {
			return nil, err
		}
		if err := setMidnightMode(query, args.MidnightMode); err != nil {
			return nil, err
		}
		setTimezone(query, args.Timezone)
		if err := setLatitudeAdjustment(query, args.LatitudeAdjustmentMethod); err != nil {
			return nil, err
		}
		if err := setCalendarMethod(query, args.CalendarMethod); err != nil {
			return nil, err
		}
		setBool(query, "iso8601", args.ISO8601)
		setInt(query, "adjustment", args.Adjustment)

		path := fmt.Sprintf("/hijriCalendar/%d/%d", args.Year, args.Month)
		raw, err := deps.Client.GetJSON(ctx, path, query, deps.Config.CalendarTimeout)
		if err != nil {
			return nil, err
		}
		return aladhan.Unwrap(raw), nil
	})

	register(server, deps, &mcp.Tool{
		Name:        "get_monthly_calendar",
		Description: "Get prayer times for a Gregorian month by coordinates.",
	}, func(ctx context.Context, args monthlyCalendarArgs) ([]byte, error) {
		query := url.Values{}
		setCoords(query, args.Lat, args.Lon)
		setInt(query, "method", args.Method)
		if err := setSchool(query, args.School); err != nil {
			return nil, err
		}
		if err := setMidnightMode(query, args.MidnightMode); err != nil {
			return nil, err
		}
		setTimezone(query, args.Timezone)
		if err := setLatitudeAdjustment(query, args.LatitudeAdjustmentMethod); err != nil {
			return nil, err
		}
		if err := setShafaq(query, args.Shafaq); err != nil {
			return nil, err
		}
		setString(query, "tune", args.Tune)
		setBool(query, "iso8601", args.ISO8601)
		setInt(query, "adjustment", args.Adjustment)

		path := fmt.Sprintf("/calendar/%d/%d", args.Year, args.Month)
		raw, err := deps.Client.GetJSON(ctx, path, query, deps.Config.CalendarTimeout)
		if err != nil {
			return nil, err
		}
		return aladhan.Unwrap(raw), nil
	})

	register(server, deps, &mcp.Tool{
		Name:        "get_monthly_calendar_by_city",
		Description: "Get prayer times for a Gregorian month by city/country.",
	}, func(ctx context.Context, args monthlyCalendarByCityArgs) ([]byte, error) {
		city, err := requiredString("city", args.City)
		if err != nil {
			return nil, err
		}
		country, err := requiredString("country", args.Country)
		if err != nil {
			return nil, err
		}

		query := url.Values{}
		query.Set("city", city)
		query.Set("country", country)
		setString(query, "state", args.State)
		setInt(query, "method", args.Method)
		if err := setSchool(query, args.School); err != nil {
			return nil, err
		}
		if err := setMidnightMode(query, args.MidnightMode); err != nil {
			return nil, err
		}
		setTimezone(query, args.Timezone)
		if err := setLatitudeAdjustment(query, args.LatitudeAdjustmentMethod); err != nil {
			return nil, err
		}
		if err := setShafaq(query, args.Shafaq); err != nil {
			return nil, err
		}
		setString(query, "tune", args.Tune)
		setBool(query, "iso8601", args.ISO8601)
		setInt(query, "adjustment", args.Adjustment)
		setString(query, "x7xapikey", args.X7XAPIKey)

		path := fmt.Sprintf("/calendarByCity/%d/%d", args.Year, args.Month)
		raw, err := deps.Client.GetJSON(ctx, path, query, deps.Config.CalendarTimeout)
		if err != nil {
			return nil, err
		}
		return aladhan.Unwrap(raw), nil
	})
}
