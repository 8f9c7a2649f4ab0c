package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/biothings/mygene-mcp/api"
)

func QueryGenesByExpression(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"query_genes_by_expression",
			mcp.WithDescription("Find genes based on expression patterns in tissues or cell types"),
			mcp.WithString("tissue", mcp.Description("Tissue type (e.g., 'brain', 'liver', 'heart')")),
			mcp.WithString("cell_type", mcp.Description("Cell type or subcellular location")),
			mcp.WithString("expression_level", mcp.Description("Expression level"), mcp.Enum("high", "medium", "low", "not detected")),
			mcp.WithString("dataset", mcp.Description("Dataset source"), mcp.Enum("hpa", "gtex", "biogps")),
			mcp.WithString("species", mcp.Description("Species filter"), mcp.DefaultString("human")),
			mcp.WithNumber("size", mcp.Description("Number of results"), mcp.DefaultNumber(10)),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Tissue   string `json:"tissue"`
				CellType string `json:"cell_type"`
				Level    string `json:"expression_level"`
				Dataset  string `json:"dataset" validate:"omitempty,oneof=hpa gtex biogps"`
				Species  string `json:"species"`
				Size     int    `json:"size"`
			}
			args := ToolArguments{
				Species: "human",
				Size:    10,
			}
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			query := api.ExpressionQuery{
				Tissue:   args.Tissue,
				CellType: args.CellType,
				Level:    args.Level,
				Dataset:  args.Dataset,
				Species:  args.Species,
				Size:     &args.Size,
			}
			resp, err := c.Query(ctx, query.Request())
			if err != nil {
				return toolError(err), nil
			}

			type Result struct {
				Success bool             `json:"success"`
				Query   string           `json:"query"`
				Total   int              `json:"total"`
				Hits    []map[string]any `json:"hits"`
			}
			return jsonResult(Result{
				Success: true,
				Query:   query.Build(),
				Total:   resp.Total,
				Hits:    hits(resp.Hits),
			})
		}
}

func GetGeneExpressionProfile(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_gene_expression_profile",
			mcp.WithDescription("Get comprehensive expression profile for a gene across tissues and datasets"),
			mcp.WithString("gene_id", mcp.Required(), mcp.Description("Gene ID (Entrez, Ensembl, or symbol)")),
			mcp.WithArray("datasets", mcp.WithStringItems(), mcp.Description("Specific datasets to include (default: all)")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				GeneID   string   `json:"gene_id" validate:"required"`
				Datasets []string `json:"datasets"`
			}
			var args ToolArguments
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			datasets := args.Datasets
			if len(datasets) == 0 {
				datasets = api.ExpressionProfileDatasets
			}
			fields := strings.Join(datasets, ",") + ",symbol,name,entrezgene"

			gene, err := c.Annotation(ctx, args.GeneID, api.AnnotationRequest{Fields: fields})
			if err != nil {
				return toolError(err), nil
			}

			expressionData := map[string]any{}
			if hpa, ok := gene["hpa"].(map[string]any); ok {
				data := map[string]any{
					"tissues":                []any{},
					"subcellular_location":   []any{},
					"rna_tissue_specificity": map[string]any{},
				}
				if v, ok := hpa["tissue"]; ok {
					data["tissues"] = v
				}
				if v, ok := hpa["subcellular_location"]; ok {
					data["subcellular_location"] = v
				}
				if v, ok := hpa["rna_tissue_specificity"]; ok {
					data["rna_tissue_specificity"] = v
				}
				expressionData["hpa"] = data
			}
			if gtex, ok := gene["gtex"]; ok {
				expressionData["gtex"] = gtex
			}
			if biogps, ok := gene["biogps"]; ok {
				expressionData["biogps"] = biogps
			}
			if exac, ok := gene["exac"].(map[string]any); ok {
				if expression, ok := exac["expression"]; ok {
					expressionData["exac"] = expression
				}
			}

			type Profile struct {
				GeneID         string         `json:"gene_id"`
				Symbol         any            `json:"symbol"`
				Name           any            `json:"name"`
				ExpressionData map[string]any `json:"expression_data"`
			}
			type Result struct {
				Success bool    `json:"success"`
				Profile Profile `json:"expression_profile"`
			}
			return jsonResult(Result{
				Success: true,
				Profile: Profile{
					GeneID:         args.GeneID,
					Symbol:         gene["symbol"],
					Name:           gene["name"],
					ExpressionData: expressionData,
				},
			})
		}
}
