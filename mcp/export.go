package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/biothings/mygene-mcp/api"
	"github.com/biothings/mygene-mcp/format"
)

func ExportGeneList(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"export_gene_list",
			mcp.WithDescription("Export gene data in various formats (TSV, CSV, JSON, XML)"),
			mcp.WithArray("gene_ids", mcp.Required(), mcp.WithStringItems(), mcp.Description("List of gene IDs to export")),
			mcp.WithString("format", mcp.Description("Export format"), mcp.DefaultString("tsv"), mcp.Enum("tsv", "csv", "json", "xml")),
			mcp.WithArray("fields", mcp.WithStringItems(), mcp.Description("Fields to include in export")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				GeneIDs []string `json:"gene_ids" validate:"required,min=1"`
				Format  string   `json:"format" validate:"omitempty,oneof=tsv csv json xml"`
				Fields  []string `json:"fields"`
			}
			args := ToolArguments{
				Format: "tsv",
			}
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			fields := args.Fields
			if len(fields) == 0 {
				fields = format.DefaultExportFields
			}

			genes, err := c.Annotations(ctx, api.BatchAnnotationRequest{
				IDs:    args.GeneIDs,
				Fields: strings.Join(fields, ","),
			})
			if err != nil {
				return toolError(err), nil
			}

			out, err := format.Export(genes, fields, format.Format(args.Format))
			if err != nil {
				return toolError(err), nil
			}
			return mcp.NewToolResultText(out), nil
		}
}
