package api

// PathwayFields is the field set returned for pathway queries
const PathwayFields = "symbol,name,entrezgene,pathway"

// PathwaySources are the pathway databases aggregated by MyGene.info
var PathwaySources = []string{"kegg", "reactome", "wikipathways", "netpath", "biocarta", "pid"}

// PathwayQuery finds genes belonging to biological pathways
type PathwayQuery struct {
	ID      string
	Name    string
	Source  string
	Species string
	Size    *int
}

// Build renders the pathway query string. Without an explicit source the
// query fans out across the major pathway databases.
func (q PathwayQuery) Build() string {
	var parts []string

	if q.ID != "" {
		if q.Source != "" {
			parts = append(parts, Term("pathway."+q.Source+".id", q.ID))
		} else {
			parts = append(parts, AnyOf(
				Term("pathway.kegg.id", q.ID),
				Term("pathway.reactome.id", q.ID),
				Term("pathway.wikipathways.id", q.ID),
			))
		}
	}

	if q.Name != "" {
		if q.Source != "" {
			parts = append(parts, Term("pathway."+q.Source+".name", q.Name))
		} else {
			parts = append(parts, AnyOf(
				Term("pathway.kegg.name", q.Name),
				Term("pathway.reactome.name", q.Name),
				Term("pathway.wikipathways.name", q.Name),
				Term("pathway.netpath.name", q.Name),
				Term("pathway.biocarta.name", q.Name),
			))
		}
	}

	if len(parts) == 0 {
		parts = append(parts, Exists("pathway"))
	}

	return AllOf(parts...)
}

// Request renders the query with the pathway field set
func (q PathwayQuery) Request() QueryRequest {
	return QueryRequest{
		Q:       q.Build(),
		Fields:  PathwayFields,
		Species: q.Species,
		Size:    q.Size,
	}
}
