package tools

import (
	"context"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"adhanmcp/internal/infra/aladhan"
)

type prayerTimesArgs struct {
	Lat      float64 `json:"lat" jsonschema:"Latitude coordinate"`
	Lon      float64 `json:"lon" jsonschema:"Longitude coordinate"`
	Date     string  `json:"date,omitempty" jsonschema:"Date in DD-MM-YYYY format (defaults to today)"`
	Method   *int    `json:"method,omitempty" jsonschema:"Prayer calculation method (0-23 or 99)"`
	School   *int    `json:"school,omitempty" jsonschema:"Islamic school (0=Shafi, 1=Hanafi)"`
	Timezone string  `json:"timezone,omitempty" jsonschema:"IANA timezone (e.g. Asia/Singapore)"`
	ISO8601  *bool   `json:"iso8601,omitempty" jsonschema:"Return times in ISO-8601 format"`
}

type prayerTimesByCityArgs struct {
	City     string `json:"city" jsonschema:"City name"`
	Country  string `json:"country" jsonschema:"Country name or 2-letter ISO code"`
	State    string `json:"state,omitempty" jsonschema:"State or province (optional)"`
	Date     string `json:"date,omitempty" jsonschema:"Date in DD-MM-YYYY format (defaults to today)"`
	Method   *int   `json:"method,omitempty" jsonschema:"Prayer calculation method (0-23 or 99)"`
	School   *int   `json:"school,omitempty" jsonschema:"Islamic school (0=Shafi, 1=Hanafi)"`
	Timezone string `json:"timezone,omitempty" jsonschema:"IANA timezone (e.g. Asia/Singapore)"`
	ISO8601  *bool  `json:"iso8601,omitempty" jsonschema:"Return times in ISO-8601 format"`
}

func registerPrayerTimesTools(server *mcp.Server, deps Deps) {
	register(server, deps, &mcp.Tool{
		Name:        "get_prayer_times",
		Description: "Get daily prayer times by coordinates.",
	}, func(ctx context.Context, args prayerTimesArgs) ([]byte, error) {
		query := url.Values{}
		setCoords(query, args.Lat, args.Lon)
		if err := setSchool(query, args.School); err != nil {
			return nil, err
		}
		setInt(query, "method", args.Method)
		setTimezone(query, args.Timezone)
		setBool(query, "iso8601", args.ISO8601)

		raw, err := deps.Client.GetJSON(ctx, "/timings/"+url.PathEscape(deps.dateOrToday(args.Date)), query, deps.Config.RequestTimeout)
		if err != nil {
			return nil, err
		}
		return aladhan.UnwrapTimings(raw), nil
	})

	register(server, deps, &mcp.Tool{
		Name:        "get_prayer_times_by_city",
		Description: "Get daily prayer times by city/country.",
	}, func(ctx context.Context, args prayerTimesByCityArgs) ([]byte, error) {
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
		setBool(query, "iso8601", args.ISO8601)

		raw, err := deps.Client.GetJSON(ctx, "/timingsByCity/"+url.PathEscape(deps.dateOrToday(args.Date)), query, deps.Config.RequestTimeout)
		if err != nil {
			return nil, err
		}
		return aladhan.UnwrapTimings(raw), nil
	})

	register(server, deps, &mcp.Tool{
		Name:        "get_next_prayer",
		Description: "Get the next prayer (name and time) for given coordinates.",
	}, func(ctx context.Context, args prayerTimesArgs) ([]byte, error) {
		query := url.Values{}
		setCoords(query, args.Lat, args.Lon)
		setInt(query, "method", args.Method)
		if err := setSchool(query, args.School); err != nil {
			return nil, err
		}
		setTimezone(query, args.Timezone)
		setBool(query, "iso8601", args.ISO8601)

		raw, err := deps.Client.GetJSON(ctx, "/nextPrayer/"+url.PathEscape(deps.dateOrToday(args.Date)), query, deps.Config.RequestTimeout)
		if err != nil {
			return nil, err
		}
		return aladhan.Unwrap(raw), nil
	})
}
