package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/biothings/mygene-mcp/api"
)

func QueryGenesByInterval(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"query_genes_by_interval",
			mcp.WithDescription("Find genes in a genomic region by chromosome position"),
			mcp.WithString("chr", mcp.Required(), mcp.Description("Chromosome (e.g., '1', 'X', 'chr1')")),
			mcp.WithNumber("start", mcp.Required(), mcp.Description("Start position")),
			mcp.WithNumber("end", mcp.Required(), mcp.Description("End position")),
			mcp.WithString("species", mcp.Description("Species for the query"), mcp.DefaultString("human")),
			mcp.WithString("fields", mcp.Description("Comma-separated fields to return"), mcp.DefaultString(api.DefaultQueryFields)),
			mcp.WithNumber("size", mcp.Description("Number of results to return"), mcp.DefaultNumber(10)),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Chr     string `json:"chr" validate:"required"`
				Start   int    `json:"start"`
				End     int    `json:"end"`
				Species string `json:"species"`
				Fields  string `json:"fields"`
				Size    int    `json:"size"`
			}
			args := ToolArguments{
				Species: "human",
				Fields:  api.DefaultQueryFields,
				Size:    10,
			}
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			resp, err := c.Query(ctx, api.IntervalQuery{
				Chr:     args.Chr,
				Start:   args.Start,
				End:     args.End,
				Species: args.Species,
				Fields:  args.Fields,
				Size:    &args.Size,
			}.Request())
			if err != nil {
				return toolError(err), nil
			}

			type Interval struct {
				Chr     string `json:"chr"`
				Start   int    `json:"start"`
				End     int    `json:"end"`
				Species string `json:"species"`
			}
			type Result struct {
				Success  bool             `json:"success"`
				Interval Interval         `json:"interval"`
				Total    int              `json:"total"`
				Hits     []map[string]any `json:"hits"`
			}
			return jsonResult(Result{
				Success: true,
				Interval: Interval{
					Chr:     args.Chr,
					Start:   args.Start,
					End:     args.End,
					Species: args.Species,
				},
				Total: resp.Total,
				Hits:  hits(resp.Hits),
			})
		}
}
