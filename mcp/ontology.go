package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/biothings/mygene-mcp/api"
)

func QueryGenesByGOTerm(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"query_genes_by_go_term",
			mcp.WithDescription("Find genes associated with specific GO terms and evidence"),
			mcp.WithString("go_id", mcp.Description("GO ID (e.g., 'GO:0006468' for protein phosphorylation)")),
			mcp.WithString("go_name", mcp.Description("GO term name (e.g., 'protein kinase activity')")),
			mcp.WithArray("evidence_codes", mcp.WithStringItems(), mcp.Description("Evidence codes (e.g., ['EXP', 'IDA', 'IMP'])")),
			mcp.WithString("qualifier", mcp.Description("GO qualifier"), mcp.Enum("enables", "NOT", "contributes_to", "involved_in", "located_in")),
			mcp.WithString("aspect", mcp.Description("GO aspect"), mcp.Enum("BP", "MF", "CC")),
			mcp.WithString("species", mcp.Description("Species filter"), mcp.DefaultString("human")),
			mcp.WithNumber("size", mcp.Description("Number of results"), mcp.DefaultNumber(10)),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				GOID          string   `json:"go_id"`
				GOName        string   `json:"go_name"`
				EvidenceCodes []string `json:"evidence_codes"`
				Qualifier     string   `json:"qualifier"`
				Aspect        string   `json:"aspect" validate:"omitempty,oneof=BP MF CC"`
				Species       string   `json:"species"`
				Size          int      `json:"size"`
			}
			args := ToolArguments{
				Species: "human",
				Size:    10,
			}
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			query := api.OntologyQuery{
				ID:            args.GOID,
				Name:          args.GOName,
				EvidenceCodes: args.EvidenceCodes,
				Qualifier:     args.Qualifier,
				Aspect:        args.Aspect,
				Species:       args.Species,
				Size:          &args.Size,
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

func GetGeneGOAnnotations(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_gene_go_annotations",
			mcp.WithDescription("Get detailed GO annotations for a gene with evidence codes"),
			mcp.WithString("gene_id", mcp.Required(), mcp.Description("Gene ID (Entrez, Ensembl, or symbol)")),
			mcp.WithString("aspect", mcp.Description("Filter by GO aspect"), mcp.Enum("BP", "MF", "CC")),
			mcp.WithArray("evidence_codes", mcp.WithStringItems(), mcp.Description("Filter by evidence codes")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				GeneID        string   `json:"gene_id" validate:"required"`
				Aspect        string   `json:"aspect" validate:"omitempty,oneof=BP MF CC"`
				EvidenceCodes []string `json:"evidence_codes"`
			}
			var args ToolArguments
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			gene, err := c.Annotation(ctx, args.GeneID, api.AnnotationRequest{Fields: api.OntologyFields})
			if err != nil {
				return toolError(err), nil
			}

			type Annotation struct {
				ID        any `json:"id"`
				Term      any `json:"term"`
				Evidence  any `json:"evidence"`
				Qualifier any `json:"qualifier"`
				Pubmed    any `json:"pubmed"`
			}

			byAspect := map[string][]Annotation{}
			for _, aspect := range api.GOAspects {
				byAspect[aspect] = []Annotation{}
			}

			if goData := asMap(gene["go"]); goData != nil {
				for _, aspect := range api.GOAspects {
					if args.Aspect != "" && aspect != args.Aspect {
						continue
					}
					for _, entry := range asList(goData[aspect]) {
						annotation := asMap(entry)
						if annotation == nil {
							continue
						}
						if len(args.EvidenceCodes) > 0 &&
							!lo.Contains(args.EvidenceCodes, cast.ToString(annotation["evidence"])) {
							continue
						}

						qualifier := annotation["qualifier"]
						if qualifier == nil {
							qualifier = []any{}
						}
						pubmed := annotation["pubmed"]
						if pubmed == nil {
							pubmed = []any{}
						}
						byAspect[aspect] = append(byAspect[aspect], Annotation{
							ID:        annotation["id"],
							Term:      annotation["term"],
							Evidence:  annotation["evidence"],
							Qualifier: qualifier,
							Pubmed:    pubmed,
						})
					}
				}
			}

			total := 0
			for _, annotations := range byAspect {
				total += len(annotations)
			}

			type GOAnnotations struct {
				GeneID      string                  `json:"gene_id"`
				Symbol      any                     `json:"symbol"`
				Name        any                     `json:"name"`
				Annotations map[string][]Annotation `json:"annotations"`
			}
			type Result struct {
				Success          bool          `json:"success"`
				TotalAnnotations int           `json:"total_annotations"`
				GOAnnotations    GOAnnotations `json:"go_annotations"`
			}
			return jsonResult(Result{
				Success:          true,
				TotalAnnotations: total,
				GOAnnotations: GOAnnotations{
					GeneID:      args.GeneID,
					Symbol:      gene["symbol"],
					Name:        gene["name"],
					Annotations: byAspect,
				},
			})
		}
}
