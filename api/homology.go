package api

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// HomologyFields is the field set returned for homologous gene searches
const HomologyFields = "symbol,name,entrezgene,taxid,homologene,pantherdb"

// OrthologFields is the field set fetched for per-gene ortholog lookups
const OrthologFields = "symbol,name,entrezgene,homologene,ensembl.homologene,pantherdb.ortholog"

// OrthologSources are the homology databases aggregated by MyGene.info
var OrthologSources = []string{"homologene", "ensembl", "pantherdb"}

// HomologousQuery searches for the same gene symbol across several species
type HomologousQuery struct {
	Symbol      string
	SpeciesList []string
	SizePer     int
}

// Build renders one OR clause per species
func (q HomologousQuery) Build() string {
	parts := lo.Map(q.SpeciesList, func(species string, _ int) string {
		return fmt.Sprintf("(symbol:%q AND species:%s)", q.Symbol, species)
	})
	return strings.Join(parts, " OR ")
}

// Request renders the query, scaling the result size so every species is covered
func (q HomologousQuery) Request() QueryRequest {
	size := q.SizePer * len(q.SpeciesList)
	return QueryRequest{
		Q:      q.Build(),
		Fields: HomologyFields,
		Size:   &size,
	}
}
