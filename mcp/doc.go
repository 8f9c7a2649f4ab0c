// Package mcp implements the Model Context Protocol server for mygene-mcp.
//
// The mcp package provides:
// - MCP server over stdio or streamable HTTP
// - Tool definitions covering the MyGene.info query, annotation, batch,
//   interval, metadata, expression, pathway, GO, disease, variant,
//   chemical, homology, export and advanced-query surfaces
// - Argument decoding and validation shared by every tool handler
package mcp
