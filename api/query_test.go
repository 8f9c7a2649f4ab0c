package api

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func TestQueryRequestValues(t *testing.T) {
	tests := []struct {
		name string
		req  QueryRequest
		want url.Values
	}{
		{
			name: "Minimal request",
			req:  QueryRequest{Q: "CDK2"},
			want: url.Values{"q": {"CDK2"}},
		},
		{
			name: "Default search parameters",
			req: QueryRequest{
				Q:      "CDK2",
				Fields: DefaultQueryFields,
				Size:   intPtr(10),
			},
			want: url.Values{
				"q":      {"CDK2"},
				"fields": {"symbol,name,taxid,entrezgene"},
				"size":   {"10"},
			},
		},
		{
			name: "Zero size is still sent",
			req:  QueryRequest{Q: "*", Size: intPtr(0)},
			want: url.Values{"q": {"*"}, "size": {"0"}},
		},
		{
			name: "Facet size only sent with facets",
			req:  QueryRequest{Q: "*", FacetSize: 25},
			want: url.Values{"q": {"*"}},
		},
		{
			name: "Facets carry facet size",
			req:  QueryRequest{Q: "*", Facets: "taxid", FacetSize: 25},
			want: url.Values{
				"q":          {"*"},
				"facets":     {"taxid"},
				"facet_size": {"25"},
			},
		},
		{
			name: "Pagination and sort",
			req:  QueryRequest{Q: "cyclin*", From: intPtr(20), Sort: "symbol"},
			want: url.Values{
				"q":    {"cyclin*"},
				"from": {"20"},
				"sort": {"symbol"},
			},
		},
		{
			name: "Fetch all",
			req:  QueryRequest{Q: "kinase", FetchAll: true},
			want: url.Values{"q": {"kinase"}, "fetch_all": {"true"}},
		},
		{
			name: "Scroll id",
			req:  QueryRequest{Q: "kinase", ScrollID: "abc123"},
			want: url.Values{"q": {"kinase"}, "scroll_id": {"abc123"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Values()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Values() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQueryManyRequestBody(t *testing.T) {
	tests := []struct {
		name string
		req  QueryManyRequest
		want map[string]any
	}{
		{
			name: "Defaults always carry ids, scopes and fields",
			req: QueryManyRequest{
				IDs:    []string{"1017", "CDK2"},
				Scopes: "entrezgene,ensemblgene,symbol",
				Fields: DefaultQueryFields,
			},
			want: map[string]any{
				"ids":    []string{"1017", "CDK2"},
				"scopes": "entrezgene,ensemblgene,symbol",
				"fields": "symbol,name,taxid,entrezgene",
			},
		},
		{
			name: "Dotfield true is omitted",
			req: QueryManyRequest{
				IDs:      []string{"1017"},
				Scopes:   "symbol",
				Fields:   "symbol",
				Dotfield: boolPtr(true),
			},
			want: map[string]any{
				"ids":    []string{"1017"},
				"scopes": "symbol",
				"fields": "symbol",
			},
		},
		{
			name: "Dotfield false is sent",
			req: QueryManyRequest{
				IDs:      []string{"1017"},
				Scopes:   "symbol",
				Fields:   "symbol",
				Dotfield: boolPtr(false),
			},
			want: map[string]any{
				"ids":      []string{"1017"},
				"scopes":   "symbol",
				"fields":   "symbol",
				"dotfield": false,
			},
		},
		{
			name: "Returnall sent when set",
			req: QueryManyRequest{
				IDs:       []string{"1017"},
				Scopes:    "symbol",
				Fields:    "symbol",
				Species:   "human",
				ReturnAll: boolPtr(true),
			},
			want: map[string]any{
				"ids":       []string{"1017"},
				"scopes":    "symbol",
				"fields":    "symbol",
				"species":   "human",
				"returnall": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Body()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Body() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBatchAnnotationRequestBody(t *testing.T) {
	req := BatchAnnotationRequest{
		IDs:      []string{"1017", "1018"},
		Fields:   "symbol,name",
		Dotfield: boolPtr(false),
		Filter:   "taxid:9606",
		Email:    "dev@example.org",
	}

	want := map[string]any{
		"ids":      []string{"1017", "1018"},
		"fields":   "symbol,name",
		"dotfield": false,
		"filter":   "taxid:9606",
		"email":    "dev@example.org",
	}
	if diff := cmp.Diff(want, req.Body()); diff != "" {
		t.Errorf("Body() mismatch (-want +got):\n%s", diff)
	}
}

func TestAnnotationRequestValues(t *testing.T) {
	tests := []struct {
		name string
		req  AnnotationRequest
		want url.Values
	}{
		{
			name: "Empty request sends nothing",
			req:  AnnotationRequest{},
			want: url.Values{},
		},
		{
			name: "Dotfield true is omitted",
			req:  AnnotationRequest{Dotfield: boolPtr(true)},
			want: url.Values{},
		},
		{
			name: "Dotfield false is sent",
			req:  AnnotationRequest{Fields: "symbol", Dotfield: boolPtr(false)},
			want: url.Values{"fields": {"symbol"}, "dotfield": {"false"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Values()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Values() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
