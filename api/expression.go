package api

import "fmt"

// ExpressionFields is the field set returned for expression queries
const ExpressionFields = "symbol,name,hpa,gtex,biogps"

// ExpressionProfileDatasets are the default datasets for expression profiles
var ExpressionProfileDatasets = []string{"hpa", "gtex", "biogps", "exac"}

// ExpressionQuery finds genes by expression patterns across the HPA, GTEx
// and BioGPS datasets
type ExpressionQuery struct {
	Tissue   string
	CellType string
	Level    string
	Dataset  string
	Species  string
	Size     *int
}

// Build renders the expression query string
func (q ExpressionQuery) Build() string {
	var parts []string

	if q.Tissue != "" {
		// Tissue annotations use dotted-quoted syntax across all three sources
		parts = append(parts, fmt.Sprintf("(hpa.tissue.%q OR gtex.tissue.%q OR biogps.tissue.%q)",
			q.Tissue, q.Tissue, q.Tissue))
	}

	if q.CellType != "" {
		parts = append(parts, Term("hpa.subcellular_location", q.CellType))
	}

	if q.Level != "" {
		if q.Dataset != "" {
			parts = append(parts, Term(q.Dataset+".expression_level", q.Level))
		} else {
			parts = append(parts, Term("expression_level", q.Level))
		}
	}

	if q.Dataset != "" && q.Level == "" && q.Tissue == "" {
		// Any gene with data from this dataset
		parts = append(parts, Exists(q.Dataset))
	}

	if len(parts) == 0 {
		parts = append(parts, "_exists_:hpa OR _exists_:gtex OR _exists_:biogps")
	}

	return AllOf(parts...)
}

// Request renders the query with the expression field set
func (q ExpressionQuery) Request() QueryRequest {
	return QueryRequest{
		Q:       q.Build(),
		Fields:  ExpressionFields,
		Species: q.Species,
		Size:    q.Size,
	}
}
