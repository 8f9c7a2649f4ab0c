package api

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Metadata returns service metadata: data sources, build stats, timestamps
func (c *Client) Metadata(ctx context.Context) (map[string]any, error) {
	var meta map[string]any
	if err := c.Get(ctx, "metadata", nil, &meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// MetadataFields returns every queryable field with its type information
func (c *Client) MetadataFields(ctx context.Context) (map[string]any, error) {
	var fields map[string]any
	if err := c.Get(ctx, "metadata/fields", nil, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Species is one supported organism with its gene count
type Species struct {
	TaxID     int    `json:"taxid"`
	Name      string `json:"name"`
	GeneCount int    `json:"gene_count"`
}

// commonSpeciesNames maps well-known taxonomy ids to their MyGene.info aliases
var commonSpeciesNames = map[int]string{
	9606:  "human",
	10090: "mouse",
	10116: "rat",
	7227:  "fruitfly",
	6239:  "nematode",
	7955:  "zebrafish",
	3702:  "thale-cress",
	8364:  "frog",
	9823:  "pig",
}

// SpeciesList derives the supported species from a taxid facet aggregation
// over the whole index
func (c *Client) SpeciesList(ctx context.Context) ([]Species, error) {
	size := 0
	resp, err := c.Query(ctx, QueryRequest{
		Q:         "*",
		Facets:    "taxid",
		FacetSize: 1000,
		Size:      &size,
	})
	if err != nil {
		return nil, err
	}

	facet, ok := resp.Facets["taxid"]
	if !ok {
		return nil, nil
	}

	species := lo.Map(facet.Terms, func(term FacetTerm, _ int) Species {
		taxid := cast.ToInt(term.Term)
		name, ok := commonSpeciesNames[taxid]
		if !ok {
			name = fmt.Sprintf("taxid:%d", taxid)
		}
		return Species{
			TaxID:     taxid,
			Name:      name,
			GeneCount: term.Count,
		}
	})

	sort.SliceStable(species, func(i, j int) bool {
		return species[i].GeneCount > species[j].GeneCount
	})

	return species, nil
}
