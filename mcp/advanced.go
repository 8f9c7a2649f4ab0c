package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/biothings/mygene-mcp/api"
)

var clauseItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"field": map[string]any{"type": "string"},
		"value": map[string]any{"type": "string"},
	},
}

func BuildComplexQuery(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"build_complex_query",
			mcp.WithDescription("Build complex boolean queries with must/should/must_not clauses"),
			mcp.WithArray("must", mcp.Items(clauseItemSchema), mcp.Description("Conditions that must all be true (AND)")),
			mcp.WithArray("should", mcp.Items(clauseItemSchema), mcp.Description("At least one condition must be true (OR)")),
			mcp.WithArray("must_not", mcp.Items(clauseItemSchema), mcp.Description("Conditions that must not be true (NOT)")),
			mcp.WithObject("filters", mcp.Description("Additional filters as field:value pairs")),
			mcp.WithObject("aggregations", mcp.Description("Fields to aggregate with optional size")),
			mcp.WithNumber("size", mcp.Description("Number of results"), mcp.DefaultNumber(10)),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Must         []api.FieldClause `json:"must"`
				Should       []api.FieldClause `json:"should"`
				MustNot      []api.FieldClause `json:"must_not"`
				Filters      map[string]any    `json:"filters"`
				Aggregations map[string]any    `json:"aggregations"`
				Size         int               `json:"size"`
			}
			args := ToolArguments{
				Size: 10,
			}
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			query := api.ComplexQuery{
				Must:         args.Must,
				Should:       args.Should,
				MustNot:      args.MustNot,
				Filters:      args.Filters,
				Aggregations: args.Aggregations,
				Size:         &args.Size,
			}
			resp, err := c.Query(ctx, query.Request())
			if err != nil {
				return toolError(err), nil
			}

			type Result struct {
				Success      bool                       `json:"success"`
				Query        string                     `json:"query"`
				Total        int                        `json:"total"`
				Hits         []map[string]any           `json:"hits"`
				Aggregations map[string]api.FacetResult `json:"aggregations,omitempty"`
			}
			result := Result{
				Success: true,
				Query:   query.Build(),
				Total:   resp.Total,
				Hits:    hits(resp.Hits),
			}
			if len(args.Aggregations) > 0 && len(resp.Facets) > 0 {
				result.Aggregations = resp.Facets
			}
			return jsonResult(result)
		}
}

func QueryWithFilters(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"query_with_filters",
			mcp.WithDescription("Query genes with multiple predefined filters"),
			mcp.WithString("q", mcp.Required(), mcp.Description("Base query string")),
			mcp.WithArray("type_of_gene", mcp.WithStringItems(), mcp.Description("Gene types (e.g., ['protein-coding', 'ncRNA'])")),
			mcp.WithArray("chromosome", mcp.WithStringItems(), mcp.Description("Chromosomes (e.g., ['1', '2', 'X'])")),
			mcp.WithArray("taxid", mcp.Items(map[string]any{"type": "integer"}), mcp.Description("Taxonomy IDs (e.g., [9606, 10090])")),
			mcp.WithBoolean("ensembl_gene_exists", mcp.Description("Filter by Ensembl annotation presence")),
			mcp.WithBoolean("refseq_exists", mcp.Description("Filter by RefSeq annotation presence")),
			mcp.WithBoolean("has_go_annotation", mcp.Description("Filter by GO annotation presence")),
			mcp.WithBoolean("has_pathway_annotation", mcp.Description("Filter by pathway annotation presence")),
			mcp.WithNumber("size", mcp.Description("Number of results"), mcp.DefaultNumber(10)),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Q                    string   `json:"q" validate:"required"`
				TypeOfGene           []string `json:"type_of_gene"`
				Chromosome           []string `json:"chromosome"`
				TaxID                []int    `json:"taxid"`
				EnsemblGeneExists    *bool    `json:"ensembl_gene_exists"`
				RefseqExists         *bool    `json:"refseq_exists"`
				HasGOAnnotation      *bool    `json:"has_go_annotation"`
				HasPathwayAnnotation *bool    `json:"has_pathway_annotation"`
				Size                 int      `json:"size"`
			}
			args := ToolArguments{
				Size: 10,
			}
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			query := api.FilteredQuery{
				Q:                    args.Q,
				TypeOfGene:           args.TypeOfGene,
				Chromosome:           args.Chromosome,
				TaxID:                args.TaxID,
				EnsemblGeneExists:    args.EnsemblGeneExists,
				RefseqExists:         args.RefseqExists,
				HasGOAnnotation:      args.HasGOAnnotation,
				HasPathwayAnnotation: args.HasPathwayAnnotation,
				Size:                 &args.Size,
			}
			resp, err := c.Query(ctx, query.Request())
			if err != nil {
				return toolError(err), nil
			}

			type FiltersApplied struct {
				TypeOfGene           []string `json:"type_of_gene"`
				Chromosome           []string `json:"chromosome"`
				TaxID                []int    `json:"taxid"`
				EnsemblGeneExists    *bool    `json:"ensembl_gene_exists"`
				RefseqExists         *bool    `json:"refseq_exists"`
				HasGOAnnotation      *bool    `json:"has_go_annotation"`
				HasPathwayAnnotation *bool    `json:"has_pathway_annotation"`
			}
			type Result struct {
				Success        bool             `json:"success"`
				Query          string           `json:"query"`
				FiltersApplied FiltersApplied   `json:"filters_applied"`
				Total          int              `json:"total"`
				Hits           []map[string]any `json:"hits"`
			}
			return jsonResult(Result{
				Success: true,
				Query:   query.Build(),
				FiltersApplied: FiltersApplied{
					TypeOfGene:           args.TypeOfGene,
					Chromosome:           args.Chromosome,
					TaxID:                args.TaxID,
					EnsemblGeneExists:    args.EnsemblGeneExists,
					RefseqExists:         args.RefseqExists,
					HasGOAnnotation:      args.HasGOAnnotation,
					HasPathwayAnnotation: args.HasPathwayAnnotation,
				},
				Total: resp.Total,
				Hits:  hits(resp.Hits),
			})
		}
}
