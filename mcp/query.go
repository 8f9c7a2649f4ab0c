package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/biothings/mygene-mcp/api"
)

func QueryGenes(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"query_genes",
			mcp.WithDescription("Search for genes using various query types (symbol, name, wildcards, etc.)"),
			mcp.WithString("q", mcp.Required(), mcp.Description("Query string (e.g., 'CDK2', 'cyclin*', 'entrezgene:1017')")),
			mcp.WithString("fields", mcp.Description("Comma-separated fields to return"), mcp.DefaultString(api.DefaultQueryFields)),
			mcp.WithString("species", mcp.Description("Species filter (e.g., 'human', 'mouse', or taxonomy ID)")),
			mcp.WithNumber("size", mcp.Description("Number of results to return (max 1000)"), mcp.DefaultNumber(10)),
			mcp.WithNumber("from_", mcp.Description("Starting result offset for pagination")),
			mcp.WithString("sort", mcp.Description("Sort order for results")),
			mcp.WithString("facets", mcp.Description("Facet fields for aggregation")),
			mcp.WithNumber("facet_size", mcp.Description("Number of facet results"), mcp.DefaultNumber(10)),
			mcp.WithBoolean("fetch_all", mcp.Description("Fetch all results (returns scroll_id)"), mcp.DefaultBool(false)),
			mcp.WithString("scroll_id", mcp.Description("Scroll ID for fetching next batch")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Q         string `json:"q" validate:"required"`
				Fields    string `json:"fields"`
				Species   string `json:"species"`
				Size      int    `json:"size"`
				From      *int   `json:"from_"`
				Sort      string `json:"sort"`
				Facets    string `json:"facets"`
				FacetSize int    `json:"facet_size"`
				FetchAll  bool   `json:"fetch_all"`
				ScrollID  string `json:"scroll_id"`
			}
			args := ToolArguments{
				Fields:    api.DefaultQueryFields,
				Size:      10,
				FacetSize: 10,
			}
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			resp, err := c.Query(ctx, api.QueryRequest{
				Q:         args.Q,
				Fields:    args.Fields,
				Species:   args.Species,
				Size:      &args.Size,
				From:      args.From,
				Sort:      args.Sort,
				Facets:    args.Facets,
				FacetSize: args.FacetSize,
				FetchAll:  args.FetchAll,
				ScrollID:  args.ScrollID,
			})
			if err != nil {
				return toolError(err), nil
			}

			type Result struct {
				Success  bool                       `json:"success"`
				Total    int                        `json:"total"`
				Took     int                        `json:"took"`
				Hits     []map[string]any           `json:"hits"`
				ScrollID string                     `json:"scroll_id,omitempty"`
				Facets   map[string]api.FacetResult `json:"facets"`
			}
			facets := resp.Facets
			if facets == nil {
				facets = map[string]api.FacetResult{}
			}
			return jsonResult(Result{
				Success:  true,
				Total:    resp.Total,
				Took:     resp.Took,
				Hits:     hits(resp.Hits),
				ScrollID: resp.ScrollID,
				Facets:   facets,
			})
		}
}
