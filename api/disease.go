package api

import "strings"

// DiseaseFields is the field set returned for disease queries
const DiseaseFields = "symbol,name,entrezgene,disgenet,clinvar,omim"

// DiseaseSources are the disease association databases aggregated by MyGene.info
var DiseaseSources = []string{"disgenet", "clinvar", "omim"}

// DiseaseQuery finds genes associated with diseases
type DiseaseQuery struct {
	Name    string
	ID      string
	Source  string
	Species string
	Size    *int
}

// Build renders the disease query string. Disease ids carry their own
// prefixes (OMIM:, UMLS C-numbers), which pick the source when none is given.
func (q DiseaseQuery) Build() string {
	var parts []string

	if q.Name != "" {
		switch q.Source {
		case "disgenet":
			parts = append(parts, Term("disgenet.diseases.disease_name", q.Name))
		case "clinvar":
			parts = append(parts, Term("clinvar.rcv.conditions.name", q.Name))
		case "omim":
			parts = append(parts, Term("omim.name", q.Name))
		default:
			parts = append(parts, AnyOf(
				Term("disgenet.diseases.disease_name", q.Name),
				Term("clinvar.rcv.conditions.name", q.Name),
				Term("omim.name", q.Name),
			))
		}
	}

	if q.ID != "" {
		switch {
		case q.Source != "":
			parts = append(parts, Term(q.Source+".disease_id", q.ID))
		case strings.HasPrefix(q.ID, "OMIM:"):
			parts = append(parts, Term("omim.omim_id", strings.TrimPrefix(q.ID, "OMIM:")))
		case strings.HasPrefix(q.ID, "C"):
			parts = append(parts, Term("disgenet.diseases.disease_id", q.ID))
		default:
			parts = append(parts, Term("disease_id", q.ID))
		}
	}

	if len(parts) == 0 {
		parts = append(parts, "_exists_:disgenet OR _exists_:clinvar OR _exists_:omim")
	}

	return AllOf(parts...)
}

// Request renders the query with the disease field set
func (q DiseaseQuery) Request() QueryRequest {
	return QueryRequest{
		Q:       q.Build(),
		Fields:  DiseaseFields,
		Species: q.Species,
		Size:    q.Size,
	}
}
