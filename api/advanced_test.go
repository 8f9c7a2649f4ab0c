package api

import "testing"

func TestComplexQueryBuild(t *testing.T) {
	tests := []struct {
		name  string
		query ComplexQuery
		want  string
	}{
		{
			name: "Must clauses join with AND",
			query: ComplexQuery{
				Must: []FieldClause{
					{Field: "type_of_gene", Value: "protein-coding"},
					{Field: "taxid", Value: "9606"},
				},
			},
			want: `(type_of_gene:"protein-coding" AND taxid:"9606")`,
		},
		{
			name: "Should clauses join with OR",
			query: ComplexQuery{
				Should: []FieldClause{
					{Field: "symbol", Value: "CDK2"},
					{Field: "symbol", Value: "CDK4"},
				},
			},
			want: `(symbol:"CDK2" OR symbol:"CDK4")`,
		},
		{
			name: "Must not clauses negate",
			query: ComplexQuery{
				MustNot: []FieldClause{
					{Field: "type_of_gene", Value: "pseudo"},
				},
			},
			want: `NOT type_of_gene:"pseudo"`,
		},
		{
			name: "Incomplete clauses are dropped",
			query: ComplexQuery{
				Must: []FieldClause{
					{Field: "symbol"},
					{Field: "taxid", Value: "9606"},
				},
			},
			want: `(taxid:"9606")`,
		},
		{
			name: "Scalar filter",
			query: ComplexQuery{
				Filters: map[string]any{"taxid": 9606},
			},
			want: `taxid:"9606"`,
		},
		{
			name: "List filter becomes OR group",
			query: ComplexQuery{
				Filters: map[string]any{"type_of_gene": []any{"protein-coding", "ncRNA"}},
			},
			want: `(type_of_gene:"protein-coding" OR type_of_gene:"ncRNA")`,
		},
		{
			name: "Filters sorted by field name",
			query: ComplexQuery{
				Filters: map[string]any{
					"taxid":           9606,
					"genomic_pos.chr": "17",
				},
			},
			want: `genomic_pos.chr:"17" AND taxid:"9606"`,
		},
		{
			name:  "Empty query matches everything",
			query: ComplexQuery{},
			want:  "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Build(); got != tt.want {
				t.Errorf("Build() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComplexQueryRequestAggregations(t *testing.T) {
	query := ComplexQuery{
		Aggregations: map[string]any{
			"type_of_gene": true,
			"taxid":        true,
			"size":         50,
		},
	}

	req := query.Request()
	if req.Facets != "taxid,type_of_gene" {
		t.Errorf("Request().Facets = %v, want taxid,type_of_gene", req.Facets)
	}
	if req.FacetSize != 50 {
		t.Errorf("Request().FacetSize = %v, want 50", req.FacetSize)
	}
}

func TestFilteredQueryBuild(t *testing.T) {
	tests := []struct {
		name  string
		query FilteredQuery
		want  string
	}{
		{
			name:  "Base query only",
			query: FilteredQuery{Q: "kinase"},
			want:  "kinase",
		},
		{
			name: "Type and chromosome filters",
			query: FilteredQuery{
				Q:          "kinase",
				TypeOfGene: []string{"protein-coding", "ncRNA"},
				Chromosome: []string{"17", "X"},
			},
			want: `kinase AND (type_of_gene:"protein-coding" OR type_of_gene:"ncRNA") AND (genomic_pos.chr:"17" OR genomic_pos.chr:"X")`,
		},
		{
			name: "Taxid filter is unquoted",
			query: FilteredQuery{
				Q:     "kinase",
				TaxID: []int{9606, 10090},
			},
			want: "kinase AND (taxid:9606 OR taxid:10090)",
		},
		{
			name: "Existence filters",
			query: FilteredQuery{
				Q:                 "kinase",
				EnsemblGeneExists: boolPtr(true),
				RefseqExists:      boolPtr(false),
			},
			want: "kinase AND _exists_:ensembl.gene AND NOT _exists_:refseq",
		},
		{
			name: "Annotation presence filters",
			query: FilteredQuery{
				Q:                    "kinase",
				HasGOAnnotation:      boolPtr(true),
				HasPathwayAnnotation: boolPtr(false),
			},
			want: "kinase AND _exists_:go AND NOT _exists_:pathway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Build(); got != tt.want {
				t.Errorf("Build() = %v, want %v", got, tt.want)
			}
		})
	}
}
