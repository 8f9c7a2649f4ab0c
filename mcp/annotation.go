package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/biothings/mygene-mcp/api"
)

func GetGeneAnnotation(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_gene_annotation",
			mcp.WithDescription("Get detailed annotation for a specific gene by ID (Entrez or Ensembl)"),
			mcp.WithString("gene_id", mcp.Required(), mcp.Description("Gene ID (Entrez like '1017' or Ensembl like 'ENSG00000123374')")),
			mcp.WithString("fields", mcp.Description("Comma-separated fields to return (default: all)")),
			mcp.WithString("species", mcp.Description("Species filter")),
			mcp.WithBoolean("dotfield", mcp.Description("Control dotfield notation in response"), mcp.DefaultBool(true)),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				GeneID   string `json:"gene_id" validate:"required"`
				Fields   string `json:"fields"`
				Species  string `json:"species"`
				Dotfield *bool  `json:"dotfield"`
			}
			var args ToolArguments
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			gene, err := c.Annotation(ctx, args.GeneID, api.AnnotationRequest{
				Fields:   args.Fields,
				Species:  args.Species,
				Dotfield: args.Dotfield,
			})
			if err != nil {
				return toolError(err), nil
			}

			type Result struct {
				Success bool     `json:"success"`
				Gene    api.Gene `json:"gene"`
			}
			return jsonResult(Result{
				Success: true,
				Gene:    gene,
			})
		}
}
