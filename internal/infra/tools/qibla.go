package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type qiblaArgs struct {
	Lat float64 `json:"lat" jsonschema:"Latitude coordinate"`
	Lon float64 `json:"lon" jsonschema:"Longitude coordinate"`
}

func registerQiblaTools(server *mcp.Server, deps Deps) {
	register(server, deps, &mcp.Tool{
		Name:        "get_qibla",
		Description: "Get Qibla direction (bearing, degrees) from latitude/longitude.",
	}, func(ctx context.Context, args qiblaArgs) ([]byte, error) {
		path := "/qibla/" + formatCoord(args.Lat) + "/" + formatCoord(args.Lon)
		raw, err := deps.Client.GetJSON(ctx, path, nil, deps.Config.RequestTimeout)
		if err != nil {
			return nil, err
		}

		// Only the bearing is of interest; the rest of the payload repeats
		// the input coordinates.
		var env struct {
			Data struct {
				Direction json.Number `json:"direction"`
			} `json:"data"`
		}
		if err := json.Unmarshal(raw, &env); err != nil || env.Data.Direction == "" {
			return raw, nil
		}
		return marshalJSON(map[string]json.Number{"direction": env.Data.Direction})
	})
}
