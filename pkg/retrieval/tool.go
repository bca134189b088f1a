package retrieval

import (
	"context"
	"fmt"

	"floria-be/pkg/tools"
)

// ToolName is the registry name of the retrieval tool.
const ToolName = "fetch_plant_sources"

const defaultLimit = 2

// NewTool exposes the engine through the tool registry. Arguments: "query"
// (required string), "limit" (optional number, defaults to 2).
func NewTool(engine *Engine) *tools.Tool {
	return &tools.Tool{
		Name:        ToolName,
		Description: "Récupère des informations botaniques (texte + sources) pour un nom de plante depuis une whitelist de sites",
		Run: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			query, _ := args["query"].(string)
			if query == "" {
				return nil, fmt.Errorf("argument query is required")
			}

			limit := defaultLimit
			switch v := args["limit"].(type) {
			case float64: // decoded JSON numbers
				limit = int(v)
			case int:
				limit = v
			}

			return engine.FetchPlantSources(ctx, query, limit), nil
		},
	}
}
