package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cast"

	"github.com/biothings/mygene-mcp/api"
)

// DefaultBatchScopes are the fields searched when resolving batch ids
const DefaultBatchScopes = "entrezgene,ensemblgene,symbol"

func QueryGenesBatch(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"query_genes_batch",
			mcp.WithDescription("Query multiple genes in a single request (up to 1000)"),
			mcp.WithArray("gene_ids", mcp.Required(), mcp.WithStringItems(), mcp.Description("List of gene IDs or symbols to query")),
			mcp.WithString("scopes", mcp.Description("Comma-separated fields to search"), mcp.DefaultString(DefaultBatchScopes)),
			mcp.WithString("fields", mcp.Description("Comma-separated fields to return"), mcp.DefaultString(api.DefaultQueryFields)),
			mcp.WithString("species", mcp.Description("Species filter")),
			mcp.WithBoolean("dotfield", mcp.Description("Control dotfield notation"), mcp.DefaultBool(true)),
			mcp.WithBoolean("returnall", mcp.Description("Return all results including no matches"), mcp.DefaultBool(true)),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				GeneIDs   []string `json:"gene_ids" validate:"required,min=1"`
				Scopes    string   `json:"scopes"`
				Fields    string   `json:"fields"`
				Species   string   `json:"species"`
				Dotfield  *bool    `json:"dotfield"`
				ReturnAll bool     `json:"returnall"`
			}
			args := ToolArguments{
				Scopes:    DefaultBatchScopes,
				Fields:    api.DefaultQueryFields,
				ReturnAll: true,
			}
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			results, err := c.QueryMany(ctx, api.QueryManyRequest{
				IDs:       args.GeneIDs,
				Scopes:    args.Scopes,
				Fields:    args.Fields,
				Species:   args.Species,
				Dotfield:  args.Dotfield,
				ReturnAll: &args.ReturnAll,
			})
			if err != nil {
				return toolError(err), nil
			}

			found := 0
			missing := []string{}
			for _, result := range results {
				if ok, _ := result["found"].(bool); ok {
					found++
					continue
				}
				if query := cast.ToString(result["query"]); query != "" {
					missing = append(missing, query)
				} else {
					missing = append(missing, "Unknown")
				}
			}

			type Result struct {
				Success    bool             `json:"success"`
				Total      int              `json:"total"`
				Found      int              `json:"found"`
				Missing    int              `json:"missing"`
				Results    []map[string]any `json:"results"`
				MissingIDs []string         `json:"missing_ids"`
			}
			return jsonResult(Result{
				Success:    true,
				Total:      len(results),
				Found:      found,
				Missing:    len(missing),
				Results:    hits(results),
				MissingIDs: missing,
			})
		}
}

func GetGenesBatch(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_genes_batch",
			mcp.WithDescription("Get full annotations for multiple genes (up to 1000)"),
			mcp.WithArray("gene_ids", mcp.Required(), mcp.WithStringItems(), mcp.Description("List of gene IDs")),
			mcp.WithString("fields", mcp.Description("Comma-separated fields to return")),
			mcp.WithString("species", mcp.Description("Species filter")),
			mcp.WithBoolean("dotfield", mcp.Description("Control dotfield notation"), mcp.DefaultBool(true)),
			mcp.WithString("filter_", mcp.Description("Filter expression")),
			mcp.WithString("email", mcp.Description("Email for large requests")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				GeneIDs  []string `json:"gene_ids" validate:"required,min=1"`
				Fields   string   `json:"fields"`
				Species  string   `json:"species"`
				Dotfield *bool    `json:"dotfield"`
				Filter   string   `json:"filter_"`
				Email    string   `json:"email"`
			}
			var args ToolArguments
			if err := decodeArgs(ctx, req, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			genes, err := c.Annotations(ctx, api.BatchAnnotationRequest{
				IDs:      args.GeneIDs,
				Fields:   args.Fields,
				Species:  args.Species,
				Dotfield: args.Dotfield,
				Filter:   args.Filter,
				Email:    args.Email,
			})
			if err != nil {
				return toolError(err), nil
			}

			type Result struct {
				Success bool       `json:"success"`
				Total   int        `json:"total"`
				Genes   []api.Gene `json:"genes"`
			}
			return jsonResult(Result{
				Success: true,
				Total:   len(genes),
				Genes:   hits(genes),
			})
		}
}
