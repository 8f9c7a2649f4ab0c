package api

import "strings"

// ChemicalFields is the field set returned for chemical interaction queries
const ChemicalFields = "symbol,name,entrezgene,pharmgkb,chebi,chembl,drugbank"

// ChemicalSources are the chemical/drug databases aggregated by MyGene.info
var ChemicalSources = []string{"pharmgkb", "chebi", "chembl", "drugbank"}

// ChemicalQuery finds genes interacting with chemicals or drugs
type ChemicalQuery struct {
	Name            string
	ID              string
	InteractionType string
	Species         string
	Size            *int
}

// Build renders the chemical query string. Chemical ids carry database
// prefixes (CHEMBL, DB, CHEBI:), which pick the source field.
func (q ChemicalQuery) Build() string {
	var parts []string

	if q.Name != "" {
		parts = append(parts, AnyOf(
			Term("pharmgkb.chemical.name", q.Name),
			Term("chebi.name", q.Name),
			Term("chembl.molecule_chembl_id", q.Name),
			Term("drugbank.name", q.Name),
		))
	}

	if q.ID != "" {
		switch {
		case strings.HasPrefix(q.ID, "CHEMBL"):
			parts = append(parts, Term("chembl.molecule_chembl_id", q.ID))
		case strings.HasPrefix(q.ID, "DB"):
			parts = append(parts, Term("drugbank.id", q.ID))
		case strings.HasPrefix(q.ID, "CHEBI:"):
			parts = append(parts, Term("chebi.id", q.ID))
		default:
			parts = append(parts, Term("chemical_id", q.ID))
		}
	}

	if q.InteractionType != "" {
		parts = append(parts, Term("pharmgkb.type", q.InteractionType))
	}

	if len(parts) == 0 {
		parts = append(parts, "_exists_:pharmgkb OR _exists_:chebi OR _exists_:chembl OR _exists_:drugbank")
	}

	return AllOf(parts...)
}

// Request renders the query with the chemical field set
func (q ChemicalQuery) Request() QueryRequest {
	return QueryRequest{
		Q:       q.Build(),
		Fields:  ChemicalFields,
		Species: q.Species,
		Size:    q.Size,
	}
}
