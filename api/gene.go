package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/morikuni/failure/v2"
	"golang.org/x/sync/errgroup"
)

// MaxBatchSize is the MyGene.info limit on ids per batch request
const MaxBatchSize = 1000

// Gene is an opaque annotation document as returned by MyGene.info.
// The structure is owned by the upstream service; we never validate it.
type Gene = map[string]any

// AnnotationRequest holds optional parameters for the GET /gene/{id} endpoint
type AnnotationRequest struct {
	Fields   string
	Species  string
	Dotfield *bool
}

// Values translates the request into query-string parameters.
// dotfield defaults to true upstream, so only the false case is sent.
func (r AnnotationRequest) Values() url.Values {
	params := url.Values{}
	if r.Fields != "" {
		params.Set("fields", r.Fields)
	}
	if r.Species != "" {
		params.Set("species", r.Species)
	}
	if r.Dotfield != nil && !*r.Dotfield {
		params.Set("dotfield", "false")
	}
	return params
}

// Annotation fetches the full annotation document for a single gene id
// (Entrez, Ensembl, or symbol)
func (c *Client) Annotation(ctx context.Context, geneID string, req AnnotationRequest) (Gene, error) {
	var gene Gene
	endpoint := fmt.Sprintf("gene/%s", url.PathEscape(geneID))
	if err := c.Get(ctx, endpoint, req.Values(), &gene); err != nil {
		return nil, err
	}
	return gene, nil
}

// BatchAnnotationRequest holds parameters for the POST /gene endpoint
type BatchAnnotationRequest struct {
	IDs      []string
	Fields   string
	Species  string
	Dotfield *bool
	Filter   string
	Email    string
}

// Body translates the request into the POST /gene JSON body
func (r BatchAnnotationRequest) Body() map[string]any {
	body := map[string]any{
		"ids": r.IDs,
	}
	if r.Fields != "" {
		body["fields"] = r.Fields
	}
	if r.Species != "" {
		body["species"] = r.Species
	}
	if r.Dotfield != nil && !*r.Dotfield {
		body["dotfield"] = false
	}
	if r.Filter != "" {
		body["filter"] = r.Filter
	}
	if r.Email != "" {
		body["email"] = r.Email
	}
	return body
}

// Annotations fetches annotations for up to MaxBatchSize genes in one POST /gene call
func (c *Client) Annotations(ctx context.Context, req BatchAnnotationRequest) ([]Gene, error) {
	if err := checkBatchSize(len(req.IDs)); err != nil {
		return nil, err
	}

	var genes []Gene
	if err := c.Post(ctx, "gene", req.Body(), &genes); err != nil {
		return nil, err
	}
	return genes, nil
}

// annotationConcurrency bounds parallel per-id fetches in AnnotationsParallel
const annotationConcurrency = 4

// AnnotationsParallel fetches annotations for several ids with one GET each,
// preserving input order. Used by the CLI where ids are few and per-id errors
// should name the offending id.
func (c *Client) AnnotationsParallel(ctx context.Context, geneIDs []string, req AnnotationRequest) ([]Gene, error) {
	genes := make([]Gene, len(geneIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(annotationConcurrency)
	for i, id := range geneIDs {
		g.Go(func() error {
			gene, err := c.Annotation(ctx, id, req)
			if err != nil {
				return failure.Wrap(err, failure.Context{"gene_id": id})
			}
			genes[i] = gene
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return genes, nil
}

func checkBatchSize(n int) error {
	if n > MaxBatchSize {
		return failure.New(ErrBatchTooLarge,
			failure.Message(fmt.Sprintf("Batch size exceeds maximum of %d", MaxBatchSize)),
			failure.Context{"size": fmt.Sprintf("%d", n)},
		)
	}
	return nil
}
