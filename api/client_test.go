package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/morikuni/failure/v2"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL))
}

func TestClientQuery(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/query" {
			t.Errorf("path = %v, want /query", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "symbol:CDK2" {
			t.Errorf("q = %v, want symbol:CDK2", got)
		}
		if got := r.URL.Query().Get("size"); got != "5" {
			t.Errorf("size = %v, want 5", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"total": 1,
			"took":  3,
			"hits": []map[string]any{
				{"symbol": "CDK2", "taxid": 9606},
			},
		})
	})

	size := 5
	resp, err := client.Query(context.Background(), QueryRequest{Q: "symbol:CDK2", Size: &size})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("Total = %v, want 1", resp.Total)
	}
	if len(resp.Hits) != 1 || resp.Hits[0]["symbol"] != "CDK2" {
		t.Errorf("Hits = %v, want one CDK2 hit", resp.Hits)
	}
}

func TestClientAnnotation(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gene/1017" {
			t.Errorf("path = %v, want /gene/1017", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"_id":    "1017",
			"symbol": "CDK2",
		})
	})

	gene, err := client.Annotation(context.Background(), "1017", AnnotationRequest{})
	if err != nil {
		t.Fatalf("Annotation() error = %v", err)
	}
	if gene["symbol"] != "CDK2" {
		t.Errorf("symbol = %v, want CDK2", gene["symbol"])
	}
}

func TestClientPostBody(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %v, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %v, want application/json", ct)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		ids, _ := body["ids"].([]any)
		if len(ids) != 2 {
			t.Errorf("ids = %v, want 2 entries", body["ids"])
		}

		json.NewEncoder(w).Encode([]map[string]any{
			{"_id": "1017", "found": true},
			{"query": "bogus", "notfound": true},
		})
	})

	results, err := client.QueryMany(context.Background(), QueryManyRequest{
		IDs:    []string{"1017", "bogus"},
		Scopes: "entrezgene,symbol",
		Fields: "symbol",
	})
	if err != nil {
		t.Fatalf("QueryMany() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %v, want 2", len(results))
	}
}

func TestClientUpstreamError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"success": false, "error": "bad request"}`, http.StatusBadRequest)
	})

	_, err := client.Query(context.Background(), QueryRequest{Q: "CDK2"})
	if err == nil {
		t.Fatal("Query() error = nil, want upstream status error")
	}
	if code := failure.CodeOf(err); code != ErrUpstreamStatus {
		t.Errorf("CodeOf(err) = %v, want %v", code, ErrUpstreamStatus)
	}
}

func TestClientDecodeError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.Metadata(context.Background())
	if err == nil {
		t.Fatal("Metadata() error = nil, want decode error")
	}
	if code := failure.CodeOf(err); code != ErrDecodeResponse {
		t.Errorf("CodeOf(err) = %v, want %v", code, ErrDecodeResponse)
	}
}

func TestBatchSizeLimit(t *testing.T) {
	client := NewClient()

	ids := make([]string, MaxBatchSize+1)
	for i := range ids {
		ids[i] = "1017"
	}

	_, err := client.Annotations(context.Background(), BatchAnnotationRequest{IDs: ids})
	if err == nil {
		t.Fatal("Annotations() error = nil, want batch size error")
	}
	if code := failure.CodeOf(err); code != ErrBatchTooLarge {
		t.Errorf("CodeOf(err) = %v, want %v", code, ErrBatchTooLarge)
	}
	if msg := failure.MessageOf(err); !strings.Contains(msg.String(), "1000") {
		t.Errorf("MessageOf(err) = %v, want the limit mentioned", msg)
	}
}

func TestAnnotationsParallelPreservesOrder(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/gene/")
		json.NewEncoder(w).Encode(map[string]any{"_id": id})
	})

	ids := []string{"1017", "1018", "7157", "672"}
	genes, err := client.AnnotationsParallel(context.Background(), ids, AnnotationRequest{})
	if err != nil {
		t.Fatalf("AnnotationsParallel() error = %v", err)
	}
	for i, id := range ids {
		if genes[i]["_id"] != id {
			t.Errorf("genes[%d] = %v, want %v", i, genes[i]["_id"], id)
		}
	}
}
