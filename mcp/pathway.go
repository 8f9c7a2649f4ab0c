package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/lo"

	"github.com/biothings/mygene-mcp/api"
)

func QueryGenesByPathway(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"query_genes_by_pathway",
			mcp.WithDescription("Find genes involved in specific biological pathways"),
			mcp.WithString("pathway_id", mcp.Description("Pathway ID (e.g., 'hsa04110' for KEGG cell cycle)")),
			mcp.WithString("pathway_name", mcp.Description("Pathway name (e.g., 'Cell cycle', 'Apoptosis')")),
			mcp.WithString("source", mcp.Description("Pathway database source"), mcp.Enum(api.PathwaySources...)),
			mcp.WithString("species", mcp.Description("Species filter"), mcp.DefaultString("human")),
			mcp.WithNumber("size", mcp.Description("Number of results"), mcp.DefaultNumber(10)),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				PathwayID   string `json:"pathway_id"`
				PathwayName string `json:"pathway_name"`
				Source      string `json:"source" validate:"omitempty,oneof=kegg reactome wikipathways netpath biocarta pid"`
				Species     string `json:"species"`
				Size        int    `json:"size"`
			}
			args := ToolArguments{
				Species: "human",
				Size:    10,
			}
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			query := api.PathwayQuery{
				ID:      args.PathwayID,
				Name:    args.PathwayName,
				Source:  args.Source,
				Species: args.Species,
				Size:    &args.Size,
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

func GetGenePathways(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_gene_pathways",
			mcp.WithDescription("Get all pathways associated with a specific gene"),
			mcp.WithString("gene_id", mcp.Required(), mcp.Description("Gene ID (Entrez, Ensembl, or symbol)")),
			mcp.WithArray("sources", mcp.WithStringItems(), mcp.Description("Filter by specific pathway sources")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				GeneID  string   `json:"gene_id" validate:"required"`
				Sources []string `json:"sources"`
			}
			var args ToolArguments
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			gene, err := c.Annotation(ctx, args.GeneID, api.AnnotationRequest{Fields: api.PathwayFields})
			if err != nil {
				return toolError(err), nil
			}

			bySource := map[string][]any{}
			if pathwayData := asMap(gene["pathway"]); pathwayData != nil {
				for _, source := range api.PathwaySources {
					entries, ok := pathwayData[source]
					if !ok {
						continue
					}
					if len(args.Sources) > 0 && !lo.Contains(args.Sources, source) {
						continue
					}
					bySource[source] = asList(entries)
				}
			}

			total := 0
			for _, entries := range bySource {
				total += len(entries)
			}

			type Pathways struct {
				GeneID   string           `json:"gene_id"`
				Symbol   any              `json:"symbol"`
				Name     any              `json:"name"`
				Pathways map[string][]any `json:"pathways"`
			}
			type Result struct {
				Success        bool     `json:"success"`
				TotalPathways  int      `json:"total_pathways"`
				PathwaySources []string `json:"pathway_sources"`
				Pathways       Pathways `json:"pathways"`
			}
			return jsonResult(Result{
				Success:        true,
				TotalPathways:  total,
				PathwaySources: lo.Keys(bySource),
				Pathways: Pathways{
					GeneID:   args.GeneID,
					Symbol:   gene["symbol"],
					Name:     gene["name"],
					Pathways: bySource,
				},
			})
		}
}
