package mcp

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
	"github.com/morikuni/failure/v2"

	"github.com/biothings/mygene-mcp/api"
)

var validate = validator.New()

// InitTools returns every tool exposed by the server
func InitTools(c *api.Client) []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(QueryGenes(c)))
	tools = append(tools, newServerTool(GetGeneAnnotation(c)))
	tools = append(tools, newServerTool(QueryGenesBatch(c)))
	tools = append(tools, newServerTool(GetGenesBatch(c)))
	tools = append(tools, newServerTool(QueryGenesByInterval(c)))
	tools = append(tools, newServerTool(GetMygeneMetadata(c)))
	tools = append(tools, newServerTool(GetAvailableFields(c)))
	tools = append(tools, newServerTool(GetSpeciesList(c)))
	tools = append(tools, newServerTool(QueryGenesByExpression(c)))
	tools = append(tools, newServerTool(GetGeneExpressionProfile(c)))
	tools = append(tools, newServerTool(QueryGenesByPathway(c)))
	tools = append(tools, newServerTool(GetGenePathways(c)))
	tools = append(tools, newServerTool(QueryGenesByGOTerm(c)))
	tools = append(tools, newServerTool(GetGeneGOAnnotations(c)))
	tools = append(tools, newServerTool(QueryGenesByDisease(c)))
	tools = append(tools, newServerTool(GetGeneDiseaseAssociations(c)))
	tools = append(tools, newServerTool(GetGeneVariants(c)))
	tools = append(tools, newServerTool(QueryGenesByChemical(c)))
	tools = append(tools, newServerTool(GetGeneChemicalInteractions(c)))
	tools = append(tools, newServerTool(GetGeneOrthologs(c)))
	tools = append(tools, newServerTool(QueryHomologousGenes(c)))
	tools = append(tools, newServerTool(ExportGeneList(c)))
	tools = append(tools, newServerTool(BuildComplexQuery(c)))
	tools = append(tools, newServerTool(QueryWithFilters(c)))

	return tools
}

// decodeArgs decodes tool-call arguments into args and validates it.
// Decoding is weakly typed because JSON numbers arrive as float64.
func decodeArgs(ctx context.Context, req mcp.CallToolRequest, args any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           args,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return failure.Wrap(err)
	}
	if err := dec.Decode(req.GetArguments()); err != nil {
		return err
	}
	return validate.StructCtx(ctx, args)
}

// jsonResult marshals a tool response envelope as indented JSON
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// toolError renders an upstream or internal error as a tool error result,
// preferring the attached user-facing message
func toolError(err error) *mcp.CallToolResult {
	if msg := failure.MessageOf(err); msg != "" {
		return mcp.NewToolResultError(msg.String())
	}
	return mcp.NewToolResultError(err.Error())
}

// hits normalizes an absent hit list to an empty one so envelopes always
// carry a JSON array
func hits(h []map[string]any) []map[string]any {
	if h == nil {
		return []map[string]any{}
	}
	return h
}

// asList normalizes annotation fields that hold either a single object or a
// list, a MyGene.info convention for collapsed singletons
func asList(v any) []any {
	switch v := v.(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}

// asMap narrows an annotation field to an object, returning nil otherwise
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
