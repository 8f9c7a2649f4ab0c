package api

import (
	"context"
	"net/url"
	"strconv"
)

// DefaultQueryFields is the field set returned by search-style tools unless overridden
const DefaultQueryFields = "symbol,name,taxid,entrezgene"

// QueryRequest holds parameters for the GET /query endpoint
type QueryRequest struct {
	Q         string
	Fields    string
	Species   string
	Size      *int
	From      *int
	Sort      string
	Facets    string
	FacetSize int
	FetchAll  bool
	ScrollID  string
}

// Values translates the request into MyGene.info query-string parameters.
// Optional parameters are omitted entirely rather than sent empty, matching
// the documented query syntax.
func (r QueryRequest) Values() url.Values {
	params := url.Values{}
	params.Set("q", r.Q)
	if r.Fields != "" {
		params.Set("fields", r.Fields)
	}
	if r.Species != "" {
		params.Set("species", r.Species)
	}
	if r.Size != nil {
		params.Set("size", strconv.Itoa(*r.Size))
	}
	if r.From != nil {
		params.Set("from", strconv.Itoa(*r.From))
	}
	if r.Sort != "" {
		params.Set("sort", r.Sort)
	}
	if r.Facets != "" {
		params.Set("facets", r.Facets)
		params.Set("facet_size", strconv.Itoa(r.FacetSize))
	}
	if r.FetchAll {
		params.Set("fetch_all", "true")
	}
	if r.ScrollID != "" {
		params.Set("scroll_id", r.ScrollID)
	}
	return params
}

// FacetTerm is a single term bucket in a facet aggregation
type FacetTerm struct {
	Term  any `json:"term"`
	Count int `json:"count"`
}

// FacetResult is the aggregation result for one facet field
type FacetResult struct {
	Total int         `json:"total"`
	Terms []FacetTerm `json:"terms"`
}

// QueryResponse is the envelope of the /query endpoint
type QueryResponse struct {
	Total    int                    `json:"total"`
	Took     int                    `json:"took"`
	Hits     []map[string]any       `json:"hits"`
	ScrollID string                 `json:"_scroll_id"`
	Facets   map[string]FacetResult `json:"facets"`
}

// Query searches genes via GET /query
func (c *Client) Query(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	var resp QueryResponse
	if err := c.Get(ctx, "query", req.Values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QueryManyRequest holds parameters for the POST /query batch endpoint
type QueryManyRequest struct {
	IDs       []string
	Scopes    string
	Fields    string
	Species   string
	Dotfield  *bool
	ReturnAll *bool
}

// Body translates the request into the POST /query JSON body
func (r QueryManyRequest) Body() map[string]any {
	body := map[string]any{
		"ids":    r.IDs,
		"scopes": r.Scopes,
		"fields": r.Fields,
	}
	if r.Species != "" {
		body["species"] = r.Species
	}
	if r.Dotfield != nil && !*r.Dotfield {
		body["dotfield"] = false
	}
	if r.ReturnAll != nil {
		body["returnall"] = *r.ReturnAll
	}
	return body
}

// QueryMany resolves up to MaxBatchSize ids/symbols in a single POST /query call
func (c *Client) QueryMany(ctx context.Context, req QueryManyRequest) ([]map[string]any, error) {
	if err := checkBatchSize(len(req.IDs)); err != nil {
		return nil, err
	}

	var results []map[string]any
	if err := c.Post(ctx, "query", req.Body(), &results); err != nil {
		return nil, err
	}
	return results, nil
}
