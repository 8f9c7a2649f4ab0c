package api

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// FilteredFields is the field set returned by filtered queries
const FilteredFields = "symbol,name,taxid,type_of_gene,genomic_pos,ensembl,refseq"

// FieldClause is a single field/value condition in a boolean query
type FieldClause struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ComplexQuery assembles a boolean query from must/should/must_not clauses,
// extra filters and facet aggregations
type ComplexQuery struct {
	Must         []FieldClause
	Should       []FieldClause
	MustNot      []FieldClause
	Filters      map[string]any
	Aggregations map[string]any
	Size         *int
}

func clauseTerms(clauses []FieldClause) []string {
	var terms []string
	for _, c := range clauses {
		if c.Field != "" && c.Value != "" {
			terms = append(terms, Term(c.Field, c.Value))
		}
	}
	return terms
}

// Build renders the boolean query string; with no clauses at all it matches everything
func (q ComplexQuery) Build() string {
	var parts []string

	if terms := clauseTerms(q.Must); len(terms) > 0 {
		parts = append(parts, "("+strings.Join(terms, " AND ")+")")
	}

	if terms := clauseTerms(q.Should); len(terms) > 0 {
		parts = append(parts, AnyOf(terms...))
	}

	for _, c := range q.MustNot {
		if c.Field != "" && c.Value != "" {
			parts = append(parts, "NOT "+Term(c.Field, c.Value))
		}
	}

	// Filters are sorted by field name for deterministic queries
	fields := lo.Keys(q.Filters)
	sort.Strings(fields)
	for _, field := range fields {
		switch values := q.Filters[field].(type) {
		case []any:
			parts = append(parts, AnyOf(lo.Map(values, func(v any, _ int) string {
				return Term(field, cast.ToString(v))
			})...))
		default:
			parts = append(parts, Term(field, cast.ToString(values)))
		}
	}

	if len(parts) == 0 {
		return "*"
	}
	return AllOf(parts...)
}

// Request renders the query with any facet aggregations attached.
// The aggregation map uses field names as keys; an optional "size" entry
// sets facet_size rather than naming a facet field.
func (q ComplexQuery) Request() QueryRequest {
	req := QueryRequest{
		Q:    q.Build(),
		Size: q.Size,
	}

	if len(q.Aggregations) > 0 {
		facetSize := 10
		var facets []string
		for field, v := range q.Aggregations {
			if field == "size" {
				facetSize = cast.ToInt(v)
				continue
			}
			facets = append(facets, field)
		}
		sort.Strings(facets)
		if len(facets) > 0 {
			req.Facets = strings.Join(facets, ",")
			req.FacetSize = facetSize
		}
	}

	return req
}

// FilteredQuery narrows a base query with common structural filters
type FilteredQuery struct {
	Q                    string
	TypeOfGene           []string
	Chromosome           []string
	TaxID                []int
	EnsemblGeneExists    *bool
	RefseqExists         *bool
	HasGOAnnotation      *bool
	HasPathwayAnnotation *bool
	Size                 *int
}

func existsClause(parts []string, set *bool, field string) []string {
	if set == nil {
		return parts
	}
	if *set {
		return append(parts, Exists(field))
	}
	return append(parts, "NOT "+Exists(field))
}

// Build renders the base query ANDed with every active filter
func (q FilteredQuery) Build() string {
	parts := []string{q.Q}

	if len(q.TypeOfGene) > 0 {
		parts = append(parts, AnyOf(lo.Map(q.TypeOfGene, func(t string, _ int) string {
			return Term("type_of_gene", t)
		})...))
	}

	if len(q.Chromosome) > 0 {
		parts = append(parts, AnyOf(lo.Map(q.Chromosome, func(c string, _ int) string {
			return Term("genomic_pos.chr", c)
		})...))
	}

	if len(q.TaxID) > 0 {
		parts = append(parts, AnyOf(lo.Map(q.TaxID, func(t int, _ int) string {
			return RawTerm("taxid", strconv.Itoa(t))
		})...))
	}

	parts = existsClause(parts, q.EnsemblGeneExists, "ensembl.gene")
	parts = existsClause(parts, q.RefseqExists, "refseq")
	parts = existsClause(parts, q.HasGOAnnotation, "go")
	parts = existsClause(parts, q.HasPathwayAnnotation, "pathway")

	return AllOf(parts...)
}

// Request renders the query with the structural field set
func (q FilteredQuery) Request() QueryRequest {
	return QueryRequest{
		Q:      q.Build(),
		Fields: FilteredFields,
		Size:   q.Size,
	}
}
