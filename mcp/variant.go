package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cast"

	"github.com/biothings/mygene-mcp/api"
)

// VariantFields is the field set fetched for variant lookups
const VariantFields = "symbol,name,entrezgene,clinvar,snpeff,grasp"

func GetGeneVariants(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_gene_variants",
			mcp.WithDescription("Get genetic variants associated with a gene from ClinVar and other sources"),
			mcp.WithString("gene_id", mcp.Required(), mcp.Description("Gene ID (Entrez, Ensembl, or symbol)")),
			mcp.WithString("variant_type", mcp.Description("Type of variant"), mcp.Enum("Deletion", "Duplication", "Insertion", "Indel", "single nucleotide variant")),
			mcp.WithString("clinical_significance", mcp.Description("Clinical significance filter"), mcp.Enum("Pathogenic", "Likely pathogenic", "Uncertain significance", "Likely benign", "Benign")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				GeneID               string `json:"gene_id" validate:"required"`
				VariantType          string `json:"variant_type"`
				ClinicalSignificance string `json:"clinical_significance"`
			}
			var args ToolArguments
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			gene, err := c.Annotation(ctx, args.GeneID, api.AnnotationRequest{Fields: VariantFields})
			if err != nil {
				return toolError(err), nil
			}

			bySource := map[string]any{}
			total := 0

			if clinvar := asMap(gene["clinvar"]); clinvar != nil {
				variants := []map[string]any{}
				for _, entry := range asList(clinvar["rcv"]) {
					rcv := asMap(entry)
					if rcv == nil {
						continue
					}
					if args.ClinicalSignificance != "" {
						significance := strings.ToLower(cast.ToString(rcv["clinical_significance"]))
						if !strings.Contains(significance, strings.ToLower(args.ClinicalSignificance)) {
							continue
						}
					}

					variant := map[string]any{
						"accession":             asMap(rcv["accession"])["accession"],
						"title":                 rcv["title"],
						"clinical_significance": rcv["clinical_significance"],
						"last_evaluated":        rcv["last_evaluated"],
						"review_status":         rcv["review_status"],
						"conditions":            rcv["conditions"],
					}
					if variant["conditions"] == nil {
						variant["conditions"] = map[string]any{}
					}

					if measureSet := asMap(rcv["measure_set"]); measureSet != nil {
						for _, m := range asList(measureSet["measure"]) {
							measure := asMap(m)
							if measure == nil {
								continue
							}
							if args.VariantType != "" && cast.ToString(measure["type"]) != args.VariantType {
								continue
							}
							variant["variant_type"] = measure["type"]
							variant["name"] = measure["name"]
						}
					}

					variants = append(variants, variant)
				}
				bySource["clinvar"] = map[string]any{
					"total":    len(variants),
					"variants": variants,
				}
				total += len(variants)
			}

			if snpeff := asMap(gene["snpeff"]); snpeff != nil {
				annotations := []map[string]any{}
				for _, entry := range asList(snpeff["ann"]) {
					ann := asMap(entry)
					if ann == nil {
						continue
					}
					annotations = append(annotations, map[string]any{
						"effect":          ann["effect"],
						"putative_impact": ann["putative_impact"],
						"gene_name":       ann["gene_name"],
						"feature_type":    ann["feature_type"],
					})
				}
				bySource["snpeff"] = map[string]any{
					"total":       len(annotations),
					"annotations": annotations,
				}
				total += len(annotations)
			}

			if grasp := asMap(gene["grasp"]); grasp != nil {
				associations := []map[string]any{}
				for _, entry := range asList(grasp["publication"]) {
					pub := asMap(entry)
					if pub == nil {
						continue
					}
					associations = append(associations, map[string]any{
						"phenotype": pub["phenotype"],
						"snp_id":    pub["snp_id"],
						"p_value":   pub["p_value"],
						"pmid":      pub["pmid"],
					})
				}
				bySource["grasp"] = map[string]any{
					"total":        len(associations),
					"associations": associations,
				}
				total += len(associations)
			}

			type Variants struct {
				GeneID         string         `json:"gene_id"`
				Symbol         any            `json:"symbol"`
				Name           any            `json:"name"`
				VariantSources map[string]any `json:"variant_sources"`
			}
			type Result struct {
				Success       bool     `json:"success"`
				TotalVariants int      `json:"total_variants"`
				Variants      Variants `json:"variants"`
			}
			return jsonResult(Result{
				Success:       true,
				TotalVariants: total,
				Variants: Variants{
					GeneID:         args.GeneID,
					Symbol:         gene["symbol"],
					Name:           gene["name"],
					VariantSources: bySource,
				},
			})
		}
}
