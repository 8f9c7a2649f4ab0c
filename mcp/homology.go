package mcp

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/biothings/mygene-mcp/api"
)

func GetGeneOrthologs(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_gene_orthologs",
			mcp.WithDescription("Get orthologous genes across different species"),
			mcp.WithString("gene_id", mcp.Required(), mcp.Description("Gene ID (Entrez, Ensembl, or symbol)")),
			mcp.WithArray("target_species", mcp.WithStringItems(), mcp.Description("Target species (e.g., ['human', 'mouse', 'rat'] or taxids)")),
			mcp.WithArray("sources", mcp.WithStringItems(), mcp.Description("Homology data sources to use")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				GeneID        string   `json:"gene_id" validate:"required"`
				TargetSpecies []string `json:"target_species"`
				Sources       []string `json:"sources" validate:"omitempty,dive,oneof=homologene ensembl pantherdb"`
			}
			var args ToolArguments
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			gene, err := c.Annotation(ctx, args.GeneID, api.AnnotationRequest{Fields: api.OrthologFields})
			if err != nil {
				return toolError(err), nil
			}

			orthologs := map[string]any{}

			if homologene := asMap(gene["homologene"]); homologene != nil {
				homologeneID := homologene["id"]
				entries := []map[string]any{}
				if homologeneID != nil {
					for _, pair := range asList(homologene["genes"]) {
						entry := asList(pair)
						if len(entry) < 2 {
							continue
						}
						taxid := cast.ToInt(entry[0])
						entrezgene := entry[1]

						// Skip the queried gene itself
						if cast.ToString(entrezgene) == args.GeneID {
							continue
						}
						if len(args.TargetSpecies) > 0 && !speciesMatch(args.TargetSpecies, taxid) {
							continue
						}

						entries = append(entries, map[string]any{
							"taxid":         taxid,
							"entrezgene":    entrezgene,
							"homologene_id": homologeneID,
						})
					}
				}
				if len(entries) > 0 {
					orthologs["homologene"] = entries
				}
			}

			if ensembl := asMap(gene["ensembl"]); ensembl != nil {
				if _, ok := ensembl["homologene"]; ok {
					orthologs["ensembl"] = asList(ensembl["homologene"])
				}
			}

			if pantherdb := asMap(gene["pantherdb"]); pantherdb != nil {
				if _, ok := pantherdb["ortholog"]; ok {
					orthologs["pantherdb"] = asList(pantherdb["ortholog"])
				}
			}

			if len(args.Sources) > 0 {
				filtered := map[string]any{}
				for _, source := range args.Sources {
					if data, ok := orthologs[source]; ok {
						filtered[source] = data
					}
				}
				orthologs = filtered
			}

			type OrthologData struct {
				GeneID    string         `json:"gene_id"`
				Symbol    any            `json:"symbol"`
				Name      any            `json:"name"`
				Orthologs map[string]any `json:"orthologs"`
			}
			type Result struct {
				Success      bool         `json:"success"`
				OrthologData OrthologData `json:"ortholog_data"`
			}
			return jsonResult(Result{
				Success: true,
				OrthologData: OrthologData{
					GeneID:    args.GeneID,
					Symbol:    gene["symbol"],
					Name:      gene["name"],
					Orthologs: orthologs,
				},
			})
		}
}

// speciesMatch reports whether taxid matches any requested species, given as
// a taxid string or a common name
func speciesMatch(species []string, taxid int) bool {
	return lo.SomeBy(species, func(s string) bool {
		if n, err := strconv.Atoi(s); err == nil {
			return n == taxid
		}
		switch s {
		case "human":
			return taxid == 9606
		case "mouse":
			return taxid == 10090
		case "rat":
			return taxid == 10116
		}
		return false
	})
}

func QueryHomologousGenes(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"query_homologous_genes",
			mcp.WithDescription("Find homologous genes with the same symbol across species"),
			mcp.WithString("gene_symbol", mcp.Required(), mcp.Description("Gene symbol to search for")),
			mcp.WithArray("species_list", mcp.Required(), mcp.WithStringItems(), mcp.Description("List of species to search")),
			mcp.WithString("homology_type", mcp.Description("Type of homology"), mcp.DefaultString("ortholog"), mcp.Enum("ortholog", "paralog")),
			mcp.WithNumber("size", mcp.Description("Results per species"), mcp.DefaultNumber(10)),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				GeneSymbol   string   `json:"gene_symbol" validate:"required"`
				SpeciesList  []string `json:"species_list" validate:"required,min=1"`
				HomologyType string   `json:"homology_type" validate:"omitempty,oneof=ortholog paralog"`
				Size         int      `json:"size"`
			}
			args := ToolArguments{
				HomologyType: "ortholog",
				Size:         10,
			}
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			query := api.HomologousQuery{
				Symbol:      args.GeneSymbol,
				SpeciesList: args.SpeciesList,
				SizePer:     args.Size,
			}
			resp, err := c.Query(ctx, query.Request())
			if err != nil {
				return toolError(err), nil
			}

			type Group struct {
				HomologeneID any              `json:"homologene_id"`
				Genes        []map[string]any `json:"genes"`
			}

			// Group hits by homologene id, keeping first-seen order
			groups := []*Group{}
			groupIndex := map[string]*Group{}
			for _, hit := range resp.Hits {
				homologene := asMap(hit["homologene"])
				if homologene == nil {
					continue
				}
				id, ok := homologene["id"]
				if !ok {
					continue
				}

				key := cast.ToString(id)
				group, ok := groupIndex[key]
				if !ok {
					group = &Group{HomologeneID: id, Genes: []map[string]any{}}
					groupIndex[key] = group
					groups = append(groups, group)
				}
				group.Genes = append(group.Genes, map[string]any{
					"symbol":     hit["symbol"],
					"name":       hit["name"],
					"entrezgene": hit["entrezgene"],
					"taxid":      hit["taxid"],
				})
			}

			type Result struct {
				Success        bool     `json:"success"`
				Query          string   `json:"query"`
				TotalGenes     int      `json:"total_genes"`
				HomologyGroups []*Group `json:"homology_groups"`
				HomologyType   string   `json:"homology_type"`
			}
			return jsonResult(Result{
				Success:        true,
				Query:          query.Build(),
				TotalGenes:     resp.Total,
				HomologyGroups: groups,
				HomologyType:   args.HomologyType,
			})
		}
}
