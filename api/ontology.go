package api

import "github.com/samber/lo"

// OntologyFields is the field set returned for Gene Ontology queries
const OntologyFields = "symbol,name,entrezgene,go"

// GOAspects are the three Gene Ontology branches
var GOAspects = []string{"BP", "MF", "CC"}

// OntologyQuery finds genes by GO term, evidence codes and qualifiers
type OntologyQuery struct {
	ID            string
	Name          string
	EvidenceCodes []string
	Qualifier     string
	Aspect        string
	Species       string
	Size          *int
}

// Build renders the GO query string. Without an aspect, term searches fan
// out across BP, MF and CC.
func (q OntologyQuery) Build() string {
	var parts []string

	if q.ID != "" {
		if q.Aspect != "" {
			parts = append(parts, Term("go."+q.Aspect, q.ID))
		} else {
			parts = append(parts, AnyOf(
				Term("go.BP", q.ID),
				Term("go.MF", q.ID),
				Term("go.CC", q.ID),
			))
		}
	}

	if q.Name != "" {
		if q.Aspect != "" {
			parts = append(parts, Term("go."+q.Aspect+".term", q.Name))
		} else {
			parts = append(parts, AnyOf(
				Term("go.BP.term", q.Name),
				Term("go.MF.term", q.Name),
				Term("go.CC.term", q.Name),
			))
		}
	}

	if len(q.EvidenceCodes) > 0 {
		parts = append(parts, AnyOf(lo.Map(q.EvidenceCodes, func(code string, _ int) string {
			return Term("go.evidence", code)
		})...))
	}

	if q.Qualifier != "" {
		parts = append(parts, Term("go.qualifier", q.Qualifier))
	}

	if len(parts) == 0 {
		parts = append(parts, Exists("go"))
	}

	return AllOf(parts...)
}

// Request renders the query with the GO field set
func (q OntologyQuery) Request() QueryRequest {
	return QueryRequest{
		Q:       q.Build(),
		Fields:  OntologyFields,
		Species: q.Species,
		Size:    q.Size,
	}
}
