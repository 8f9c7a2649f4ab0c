package api

import "testing"

func TestTerm(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		want  string
	}{
		{
			name:  "Simple field",
			field: "symbol",
			value: "CDK2",
			want:  `symbol:"CDK2"`,
		},
		{
			name:  "Dotted field",
			field: "pathway.kegg.id",
			value: "hsa04110",
			want:  `pathway.kegg.id:"hsa04110"`,
		},
		{
			name:  "Value with spaces",
			field: "omim.name",
			value: "breast cancer",
			want:  `omim.name:"breast cancer"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Term(tt.field, tt.value); got != tt.want {
				t.Errorf("Term() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnyOf(t *testing.T) {
	got := AnyOf(Term("go.BP", "GO:0007049"), Term("go.MF", "GO:0007049"))
	want := `(go.BP:"GO:0007049" OR go.MF:"GO:0007049")`
	if got != want {
		t.Errorf("AnyOf() = %v, want %v", got, want)
	}
}

func TestAllOf(t *testing.T) {
	got := AllOf(Exists("go"), Term("go.qualifier", "enables"))
	want := `_exists_:go AND go.qualifier:"enables"`
	if got != want {
		t.Errorf("AllOf() = %v, want %v", got, want)
	}
}

func TestIntervalQuery(t *testing.T) {
	tests := []struct {
		name string
		chr  string
		want string
	}{
		{
			name: "Bare chromosome gets prefix",
			chr:  "1",
			want: "chr1:100-200",
		},
		{
			name: "Prefixed chromosome kept as is",
			chr:  "chrX",
			want: "chrX:100-200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := IntervalQuery{Chr: tt.chr, Start: 100, End: 200}.Request()
			if req.Q != tt.want {
				t.Errorf("Request().Q = %v, want %v", req.Q, tt.want)
			}
		})
	}
}

func TestExpressionQueryBuild(t *testing.T) {
	tests := []struct {
		name  string
		query ExpressionQuery
		want  string
	}{
		{
			name:  "Tissue fans out across datasets",
			query: ExpressionQuery{Tissue: "brain"},
			want:  `(hpa.tissue."brain" OR gtex.tissue."brain" OR biogps.tissue."brain")`,
		},
		{
			name:  "Cell type",
			query: ExpressionQuery{CellType: "nucleus"},
			want:  `hpa.subcellular_location:"nucleus"`,
		},
		{
			name:  "Level with dataset",
			query: ExpressionQuery{Level: "high", Dataset: "hpa"},
			want:  `hpa.expression_level:"high"`,
		},
		{
			name:  "Level without dataset",
			query: ExpressionQuery{Level: "high"},
			want:  `expression_level:"high"`,
		},
		{
			name:  "Dataset alone",
			query: ExpressionQuery{Dataset: "gtex"},
			want:  "_exists_:gtex",
		},
		{
			name:  "Empty query matches any expression source",
			query: ExpressionQuery{},
			want:  "_exists_:hpa OR _exists_:gtex OR _exists_:biogps",
		},
		{
			name:  "Tissue and level combine with AND",
			query: ExpressionQuery{Tissue: "liver", Level: "high", Dataset: "hpa"},
			want:  `(hpa.tissue."liver" OR gtex.tissue."liver" OR biogps.tissue."liver") AND hpa.expression_level:"high"`,
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

func TestPathwayQueryBuild(t *testing.T) {
	tests := []struct {
		name  string
		query PathwayQuery
		want  string
	}{
		{
			name:  "ID without source fans out",
			query: PathwayQuery{ID: "hsa04110"},
			want:  `(pathway.kegg.id:"hsa04110" OR pathway.reactome.id:"hsa04110" OR pathway.wikipathways.id:"hsa04110")`,
		},
		{
			name:  "ID with source",
			query: PathwayQuery{ID: "hsa04110", Source: "kegg"},
			want:  `pathway.kegg.id:"hsa04110"`,
		},
		{
			name:  "Name without source fans out",
			query: PathwayQuery{Name: "Cell cycle"},
			want:  `(pathway.kegg.name:"Cell cycle" OR pathway.reactome.name:"Cell cycle" OR pathway.wikipathways.name:"Cell cycle" OR pathway.netpath.name:"Cell cycle" OR pathway.biocarta.name:"Cell cycle")`,
		},
		{
			name:  "Empty query matches any pathway",
			query: PathwayQuery{},
			want:  "_exists_:pathway",
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

func TestOntologyQueryBuild(t *testing.T) {
	tests := []struct {
		name  string
		query OntologyQuery
		want  string
	}{
		{
			name:  "ID without aspect fans out",
			query: OntologyQuery{ID: "GO:0006468"},
			want:  `(go.BP:"GO:0006468" OR go.MF:"GO:0006468" OR go.CC:"GO:0006468")`,
		},
		{
			name:  "ID with aspect",
			query: OntologyQuery{ID: "GO:0006468", Aspect: "BP"},
			want:  `go.BP:"GO:0006468"`,
		},
		{
			name:  "Name with aspect",
			query: OntologyQuery{Name: "protein kinase activity", Aspect: "MF"},
			want:  `go.MF.term:"protein kinase activity"`,
		},
		{
			name:  "Evidence codes",
			query: OntologyQuery{ID: "GO:0006468", Aspect: "BP", EvidenceCodes: []string{"EXP", "IDA"}},
			want:  `go.BP:"GO:0006468" AND (go.evidence:"EXP" OR go.evidence:"IDA")`,
		},
		{
			name:  "Qualifier",
			query: OntologyQuery{Qualifier: "enables"},
			want:  `go.qualifier:"enables"`,
		},
		{
			name:  "Empty query matches any GO annotation",
			query: OntologyQuery{},
			want:  "_exists_:go",
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

func TestDiseaseQueryBuild(t *testing.T) {
	tests := []struct {
		name  string
		query DiseaseQuery
		want  string
	}{
		{
			name:  "Name without source fans out",
			query: DiseaseQuery{Name: "breast cancer"},
			want:  `(disgenet.diseases.disease_name:"breast cancer" OR clinvar.rcv.conditions.name:"breast cancer" OR omim.name:"breast cancer")`,
		},
		{
			name:  "Name with source",
			query: DiseaseQuery{Name: "breast cancer", Source: "omim"},
			want:  `omim.name:"breast cancer"`,
		},
		{
			name:  "OMIM id strips prefix",
			query: DiseaseQuery{ID: "OMIM:114480"},
			want:  `omim.omim_id:"114480"`,
		},
		{
			name:  "UMLS concept id goes to DisGeNET",
			query: DiseaseQuery{ID: "C0006142"},
			want:  `disgenet.diseases.disease_id:"C0006142"`,
		},
		{
			name:  "Unrecognized id searched verbatim",
			query: DiseaseQuery{ID: "114480"},
			want:  `disease_id:"114480"`,
		},
		{
			name:  "Empty query matches any disease source",
			query: DiseaseQuery{},
			want:  "_exists_:disgenet OR _exists_:clinvar OR _exists_:omim",
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

func TestChemicalQueryBuild(t *testing.T) {
	tests := []struct {
		name  string
		query ChemicalQuery
		want  string
	}{
		{
			name:  "Name fans out across databases",
			query: ChemicalQuery{Name: "aspirin"},
			want:  `(pharmgkb.chemical.name:"aspirin" OR chebi.name:"aspirin" OR chembl.molecule_chembl_id:"aspirin" OR drugbank.name:"aspirin")`,
		},
		{
			name:  "ChEMBL id",
			query: ChemicalQuery{ID: "CHEMBL25"},
			want:  `chembl.molecule_chembl_id:"CHEMBL25"`,
		},
		{
			name:  "DrugBank id",
			query: ChemicalQuery{ID: "DB00619"},
			want:  `drugbank.id:"DB00619"`,
		},
		{
			name:  "ChEBI id",
			query: ChemicalQuery{ID: "CHEBI:15365"},
			want:  `chebi.id:"CHEBI:15365"`,
		},
		{
			name:  "Interaction type",
			query: ChemicalQuery{InteractionType: "drug"},
			want:  `pharmgkb.type:"drug"`,
		},
		{
			name:  "Empty query matches any chemical source",
			query: ChemicalQuery{},
			want:  "_exists_:pharmgkb OR _exists_:chebi OR _exists_:chembl OR _exists_:drugbank",
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

func TestHomologousQuery(t *testing.T) {
	query := HomologousQuery{
		Symbol:      "TP53",
		SpeciesList: []string{"human", "mouse"},
		SizePer:     10,
	}

	want := `(symbol:"TP53" AND species:human) OR (symbol:"TP53" AND species:mouse)`
	if got := query.Build(); got != want {
		t.Errorf("Build() = %v, want %v", got, want)
	}

	req := query.Request()
	if req.Size == nil || *req.Size != 20 {
		t.Errorf("Request().Size = %v, want 20", req.Size)
	}
	if req.Fields != HomologyFields {
		t.Errorf("Request().Fields = %v, want %v", req.Fields, HomologyFields)
	}
}
