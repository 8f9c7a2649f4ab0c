package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/lo"

	"github.com/biothings/mygene-mcp/api"
)

func QueryGenesByChemical(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"query_genes_by_chemical",
			mcp.WithDescription("Find genes that interact with specific chemicals or drugs"),
			mcp.WithString("chemical_name", mcp.Description("Chemical or drug name (e.g., 'aspirin', 'imatinib')")),
			mcp.WithString("chemical_id", mcp.Description("Chemical ID (e.g., 'CHEMBL25', 'DB00619', 'CHEBI:15365')")),
			mcp.WithString("interaction_type", mcp.Description("Type of interaction (for PharmGKB)")),
			mcp.WithString("species", mcp.Description("Species filter"), mcp.DefaultString("human")),
			mcp.WithNumber("size", mcp.Description("Number of results"), mcp.DefaultNumber(10)),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				ChemicalName    string `json:"chemical_name"`
				ChemicalID      string `json:"chemical_id"`
				InteractionType string `json:"interaction_type"`
				Species         string `json:"species"`
				Size            int    `json:"size"`
			}
			args := ToolArguments{
				Species: "human",
				Size:    10,
			}
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			query := api.ChemicalQuery{
				Name:            args.ChemicalName,
				ID:              args.ChemicalID,
				InteractionType: args.InteractionType,
				Species:         args.Species,
				Size:            &args.Size,
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

func GetGeneChemicalInteractions(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_gene_chemical_interactions",
			mcp.WithDescription("Get all chemical/drug interactions for a specific gene"),
			mcp.WithString("gene_id", mcp.Required(), mcp.Description("Gene ID (Entrez, Ensembl, or symbol)")),
			mcp.WithArray("sources", mcp.WithStringItems(), mcp.Description("Filter by specific sources")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				GeneID  string   `json:"gene_id" validate:"required"`
				Sources []string `json:"sources" validate:"omitempty,dive,oneof=pharmgkb chebi chembl drugbank"`
			}
			var args ToolArguments
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			gene, err := c.Annotation(ctx, args.GeneID, api.AnnotationRequest{Fields: api.ChemicalFields})
			if err != nil {
				return toolError(err), nil
			}

			wantSource := func(source string) bool {
				return len(args.Sources) == 0 || lo.Contains(args.Sources, source)
			}

			bySource := map[string]any{}
			total := 0

			if pharmgkb := asMap(gene["pharmgkb"]); pharmgkb != nil && wantSource("pharmgkb") {
				chemicals := []map[string]any{}
				for _, entry := range asList(pharmgkb["chemical"]) {
					chemical := asMap(entry)
					if chemical == nil {
						continue
					}
					chemicals = append(chemicals, map[string]any{
						"name": chemical["name"],
						"id":   chemical["id"],
						"type": chemical["type"],
					})
				}
				bySource["pharmgkb"] = map[string]any{
					"total":     len(chemicals),
					"chemicals": chemicals,
				}
				total += len(chemicals)
			}

			if _, ok := gene["chebi"]; ok && wantSource("chebi") {
				compounds := []map[string]any{}
				for _, entry := range asList(gene["chebi"]) {
					compound := asMap(entry)
					if compound == nil {
						continue
					}
					compounds = append(compounds, map[string]any{
						"id":         compound["id"],
						"name":       compound["name"],
						"definition": compound["definition"],
					})
				}
				bySource["chebi"] = map[string]any{
					"total":     len(compounds),
					"compounds": compounds,
				}
				total += len(compounds)
			}

			if chembl := asMap(gene["chembl"]); chembl != nil && wantSource("chembl") {
				if _, ok := chembl["target_component"]; ok {
					targets := asList(chembl["target_component"])
					bySource["chembl"] = map[string]any{
						"total":   len(targets),
						"targets": targets,
					}
					total += len(targets)
				}
			}

			if _, ok := gene["drugbank"]; ok && wantSource("drugbank") {
				drugs := []map[string]any{}
				for _, entry := range asList(gene["drugbank"]) {
					drug := asMap(entry)
					if drug == nil {
						continue
					}
					groups := drug["groups"]
					if groups == nil {
						groups = []any{}
					}
					drugs = append(drugs, map[string]any{
						"id":     drug["id"],
						"name":   drug["name"],
						"groups": groups,
					})
				}
				bySource["drugbank"] = map[string]any{
					"total": len(drugs),
					"drugs": drugs,
				}
				total += len(drugs)
			}

			type Interactions struct {
				GeneID          string         `json:"gene_id"`
				Symbol          any            `json:"symbol"`
				Name            any            `json:"name"`
				ChemicalSources map[string]any `json:"chemical_sources"`
			}
			type Result struct {
				Success              bool         `json:"success"`
				TotalInteractions    int          `json:"total_interactions"`
				ChemicalInteractions Interactions `json:"chemical_interactions"`
			}
			return jsonResult(Result{
				Success:           true,
				TotalInteractions: total,
				ChemicalInteractions: Interactions{
					GeneID:          args.GeneID,
					Symbol:          gene["symbol"],
					Name:            gene["name"],
					ChemicalSources: bySource,
				},
			})
		}
}
