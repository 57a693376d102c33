package tool

import (
	"context"

	"github.com/crewsearch/crewsearch/entity"
	"github.com/crewsearch/crewsearch/linkup"
)

type (
	LinkupSearchRequest struct {
		Query      string `json:"query" jsonschema_description:"The search query to perform"`
		Depth      string `json:"depth,omitempty" jsonschema_description:"Search depth: 'standard' or 'deep'"`
		OutputType string `json:"output_type,omitempty" jsonschema_description:"Output format: 'searchResults', 'sourcedAnswer', or 'structured'"`
	}

	Searcher interface {
		Search(ctx context.Context, req *linkup.SearchRequest) (*linkup.SearchResponse, error)
	}
)

// NewLinkupSearchTool adapts the Linkup client to the Tool interface. Depth
// and output type default to the values the research crew pins, but the model
// may override them when the tool call is not forced.
func NewLinkupSearchTool(client Searcher) Tool {
	return NewLocalTool(
		entity.LinkupSearchToolName,
		"Search the web for information using LinkUp and return comprehensive results",
		func(ctx context.Context, in LinkupSearchRequest) (string, error) {
			if in.Depth == "" {
				in.Depth = linkup.DepthStandard
			}
			if in.OutputType == "" {
				in.OutputType = linkup.OutputTypeStructured
			}

			resp, err := client.Search(ctx, &linkup.SearchRequest{
				Query:      in.Query,
				Depth:      in.Depth,
				OutputType: in.OutputType,
			})
			if err != nil {
				return "", err
			}
			return resp.String(), nil
		},
	)
}
