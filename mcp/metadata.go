package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/biothings/mygene-mcp/api"
)

func GetMygeneMetadata(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_mygene_metadata",
			mcp.WithDescription("Get metadata about MyGene.info API including data sources and statistics"),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			meta, err := c.Metadata(ctx)
			if err != nil {
				return toolError(err), nil
			}

			type Result struct {
				Success  bool           `json:"success"`
				Metadata map[string]any `json:"metadata"`
			}
			return jsonResult(Result{
				Success:  true,
				Metadata: meta,
			})
		}
}

func GetAvailableFields(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_available_fields",
			mcp.WithDescription("Get a list of all available fields in MyGene.info"),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			fields, err := c.MetadataFields(ctx)
			if err != nil {
				return toolError(err), nil
			}

			type Result struct {
				Success bool           `json:"success"`
				Fields  map[string]any `json:"fields"`
			}
			return jsonResult(Result{
				Success: true,
				Fields:  fields,
			})
		}
}

func GetSpeciesList(c *api.Client) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_species_list",
			mcp.WithDescription("Get supported species with taxonomy IDs and gene counts"),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			species, err := c.SpeciesList(ctx)
			if err != nil {
				return toolError(err), nil
			}
			if species == nil {
				species = []api.Species{}
			}

			type Result struct {
				Success      bool          `json:"success"`
				TotalSpecies int           `json:"total_species"`
				Species      []api.Species `json:"species"`
			}
			return jsonResult(Result{
				Success:      true,
				TotalSpecies: len(species),
				Species:      species,
			})
		}
}
