package api

import (
	"fmt"
	"strings"
)

// IntervalFields is the field set returned for interval queries
const IntervalFields = DefaultQueryFields

// IntervalQuery finds genes overlapping a genomic region
type IntervalQuery struct {
	Chr     string
	Start   int
	End     int
	Species string
	Fields  string
	Size    *int
}

// Request renders the interval as a region query, e.g. chr17:41196312-41277500.
// A bare chromosome name gets the chr prefix added.
func (q IntervalQuery) Request() QueryRequest {
	chr := q.Chr
	if !strings.HasPrefix(chr, "chr") {
		chr = "chr" + chr
	}

	return QueryRequest{
		Q:       fmt.Sprintf("%s:%d-%d", chr, q.Start, q.End),
		Fields:  q.Fields,
		Species: q.Species,
		Size:    q.Size,
	}
}
