// Package api implements the client for the MyGene.info v3 REST API.
//
// The api package provides:
// - HTTP client with GET/POST JSON helpers against mygene.info
// - Request builders translating structured parameters into the
//   MyGene.info query-string grammar
// - Typed responses for the query, gene and metadata endpoints
package api
