package tools

import (
	"context"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"adhanmcp/internal/infra/aladhan"
)

const methodsCacheKey = "methods"

type listCalculationMethodsArgs struct{}

type convertGregorianArgs struct {
	Date string `json:"date" jsonschema:"Gregorian date in YYYY-MM-DD format"`
}

type convertHijriArgs struct {
	Date string `json:"date" jsonschema:"Hijri date in DD-MM-YYYY format"`
}

func registerDateConversionTools(server *mcp.Server, deps Deps) {
	register(server, deps, &mcp.Tool{
		Name:        "list_calculation_methods",
		Description: "List AlAdhan calculation methods (id -> name, params).",
	}, func(ctx context.Context, _ listCalculationMethodsArgs) ([]byte, error) {
		raw, hit, err := deps.Cache.GetOrFetch(ctx, methodsCacheKey, deps.Config.MethodsCacheTTL, func(ctx context.Context) ([]byte, error) {
			return deps.Client.GetJSON(ctx, "/methods", nil, deps.Config.RequestTimeout)
		})
		deps.Metrics.ObserveCacheLookup(hit)
		if err != nil {
			return nil, err
		}
		return aladhan.Unwrap(raw), nil
	})

	register(server, deps, &mcp.Tool{
		Name:        "convert_gregorian_to_hijri",
		Description: "Convert Gregorian date to Hijri. Args: date (YYYY-MM-DD).",
	}, func(ctx context.Context, args convertGregorianArgs) ([]byte, error) {
		date, err := requiredString("date", args.Date)
		if err != nil {
			return nil, err
		}
		query := url.Values{}
		query.Set("date", date)
		raw, err := deps.Client.GetJSON(ctx, "/gToH", query, deps.Config.RequestTimeout)
		if err != nil {
			return nil, err
		}
		return aladhan.Unwrap(raw), nil
	})

	register(server, deps, &mcp.Tool{
		Name:        "convert_hijri_to_gregorian",
		Description: "Convert Hijri date to Gregorian. Args: date (DD-MM-YYYY).",
	}, func(ctx context.Context, args convertHijriArgs) ([]byte, error) {
		date, err := requiredString("date", args.Date)
		if err != nil {
			return nil, err
		}
		query := url.Values{}
		query.Set("date", date)
		raw, err := deps.Client.GetJSON(ctx, "/hToG", query, deps.Config.RequestTimeout)
		if err != nil {
			return nil, err
		}
		return aladhan.Unwrap(raw), nil
	})
}
