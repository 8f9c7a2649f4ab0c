package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/lo"

	"github.com/biothings/mygene-mcp/api"
)

func QueryGenesByDisease(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"query_genes_by_disease",
			mcp.WithDescription("Find genes associated with specific diseases"),
			mcp.WithString("disease_name", mcp.Description("Disease name (e.g., 'breast cancer', 'alzheimer disease')")),
			mcp.WithString("disease_id", mcp.Description("Disease ID (e.g., 'OMIM:114480', 'C0006142')")),
			mcp.WithString("source", mcp.Description("Disease database source"), mcp.Enum(api.DiseaseSources...)),
			mcp.WithString("species", mcp.Description("Species filter"), mcp.DefaultString("human")),
			mcp.WithNumber("size", mcp.Description("Number of results"), mcp.DefaultNumber(10)),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				DiseaseName string `json:"disease_name"`
				DiseaseID   string `json:"disease_id"`
				Source      string `json:"source" validate:"omitempty,oneof=disgenet clinvar omim"`
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

			query := api.DiseaseQuery{
				Name:    args.DiseaseName,
				ID:      args.DiseaseID,
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

func GetGeneDiseaseAssociations(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_gene_disease_associations",
			mcp.WithDescription("Get all disease associations for a specific gene"),
			mcp.WithString("gene_id", mcp.Required(), mcp.Description("Gene ID (Entrez, Ensembl, or symbol)")),
			mcp.WithArray("sources", mcp.WithStringItems(), mcp.Description("Filter by specific disease sources")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				GeneID  string   `json:"gene_id" validate:"required"`
				Sources []string `json:"sources" validate:"omitempty,dive,oneof=disgenet clinvar omim"`
			}
			var args ToolArguments
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			gene, err := c.Annotation(ctx, args.GeneID, api.AnnotationRequest{Fields: api.DiseaseFields})
			if err != nil {
				return toolError(err), nil
			}

			wantSource := func(source string) bool {
				return len(args.Sources) == 0 || lo.Contains(args.Sources, source)
			}

			bySource := map[string]any{}
			total := 0

			if disgenet := asMap(gene["disgenet"]); disgenet != nil && wantSource("disgenet") {
				diseases := []map[string]any{}
				for _, entry := range asList(disgenet["diseases"]) {
					disease := asMap(entry)
					if disease == nil {
						continue
					}
					diseases = append(diseases, map[string]any{
						"disease_id":   disease["disease_id"],
						"disease_name": disease["disease_name"],
						"score":        disease["score"],
						"source":       disease["source"],
					})
				}
				bySource["disgenet"] = map[string]any{
					"total":    len(diseases),
					"diseases": diseases,
				}
				total += len(diseases)
			}

			if clinvar := asMap(gene["clinvar"]); clinvar != nil && wantSource("clinvar") {
				variants := []map[string]any{}
				for _, entry := range asList(clinvar["rcv"]) {
					rcv := asMap(entry)
					if rcv == nil {
						continue
					}
					variant := map[string]any{
						"rcv_accession":         asMap(rcv["accession"])["accession"],
						"conditions":            rcv["conditions"],
						"clinical_significance": rcv["clinical_significance"],
						"last_evaluated":        rcv["last_evaluated"],
					}
					if variant["conditions"] == nil {
						variant["conditions"] = map[string]any{}
					}
					variants = append(variants, variant)
				}
				bySource["clinvar"] = map[string]any{
					"total":    len(variants),
					"variants": variants,
				}
				total += len(variants)
			}

			if _, ok := gene["omim"]; ok && wantSource("omim") {
				diseases := []map[string]any{}
				for _, entry := range asList(gene["omim"]) {
					omim := asMap(entry)
					if omim == nil {
						continue
					}
					diseases = append(diseases, map[string]any{
						"omim_id":     omim["omim_id"],
						"name":        omim["name"],
						"inheritance": omim["inheritance"],
					})
				}
				bySource["omim"] = map[string]any{
					"total":    len(diseases),
					"diseases": diseases,
				}
				total += len(diseases)
			}

			type Associations struct {
				GeneID         string         `json:"gene_id"`
				Symbol         any            `json:"symbol"`
				Name           any            `json:"name"`
				DiseaseSources map[string]any `json:"disease_sources"`
			}
			type Result struct {
				Success             bool         `json:"success"`
				TotalAssociations   int          `json:"total_associations"`
				DiseaseAssociations Associations `json:"disease_associations"`
			}
			return jsonResult(Result{
				Success:           true,
				TotalAssociations: total,
				DiseaseAssociations: Associations{
					GeneID:         args.GeneID,
					Symbol:         gene["symbol"],
					Name:           gene["name"],
					DiseaseSources: bySource,
				},
			})
		}
}
