package format

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

var testGenes = []map[string]any{
	{
		"symbol":     "CDK2",
		"name":       "cyclin dependent kinase 2",
		"taxid":      9606,
		"entrezgene": 1017,
		"ensembl":    map[string]any{"gene": "ENSG00000123374"},
	},
	{
		"symbol": "BRCA1",
		"taxid":  9606,
	},
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  any
	}{
		{
			name:  "Top level field",
			field: "symbol",
			want:  "CDK2",
		},
		{
			name:  "Nested field",
			field: "ensembl.gene",
			want:  "ENSG00000123374",
		},
		{
			name:  "Missing field",
			field: "refseq.rna",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(testGenes[0], tt.field); got != tt.want {
				t.Errorf("Lookup() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten(testGenes[0], []string{"symbol", "ensembl.gene", "refseq.rna"})
	want := map[string]any{
		"symbol":       "CDK2",
		"ensembl.gene": "ENSG00000123374",
		"refseq.rna":   nil,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
	}
}

func TestExportTSV(t *testing.T) {
	out, err := Export(testGenes, []string{"symbol", "taxid", "ensembl.gene"}, FormatTSV)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := []string{
		"symbol\ttaxid\tensembl.gene",
		"CDK2\t9606\tENSG00000123374",
		"BRCA1\t9606\t",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("Export(tsv) mismatch (-want +got):\n%s", diff)
	}
}

func TestExportCSVQuotesCommas(t *testing.T) {
	genes := []map[string]any{
		{"symbol": "CDK2", "name": "cyclin dependent kinase 2, something"},
	}

	out, err := Export(genes, []string{"symbol", "name"}, FormatCSV)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(out, `"cyclin dependent kinase 2, something"`) {
		t.Errorf("Export(csv) = %q, want the comma value quoted", out)
	}
}

func TestExportJSON(t *testing.T) {
	out, err := Export(testGenes[:1], nil, FormatJSON)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(out, `"symbol": "CDK2"`) {
		t.Errorf("Export(json) = %q, want indented symbol field", out)
	}
}

func TestExportXML(t *testing.T) {
	genes := []map[string]any{
		{"symbol": "CDK2", "name": "kinase <2>"},
	}

	out, err := Export(genes, []string{"symbol", "name"}, FormatXML)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	for _, want := range []string{
		"<genes>",
		"<gene>",
		"<symbol>CDK2</symbol>",
		"<name>kinase &lt;2&gt;</name>",
		"</genes>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Export(xml) missing %q in:\n%s", want, out)
		}
	}
}

func TestExportXMLEncodesComposites(t *testing.T) {
	genes := []map[string]any{
		{"symbol": "CDK2", "ensembl": map[string]any{"gene": "ENSG00000123374"}},
	}

	out, err := Export(genes, []string{"ensembl"}, FormatXML)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(out, `{&#34;gene&#34;:&#34;ENSG00000123374&#34;}`) {
		t.Errorf("Export(xml) = %q, want JSON-encoded composite value", out)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, err := Export(testGenes, nil, Format("yaml"))
	if err == nil {
		t.Fatal("Export() error = nil, want unsupported format error")
	}
	if code := failure.CodeOf(err); code != ErrUnsupportedFormat {
		t.Errorf("CodeOf(err) = %v, want %v", code, ErrUnsupportedFormat)
	}
}

func TestExportDefaultFields(t *testing.T) {
	out, err := Export(testGenes[:1], nil, FormatTSV)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	header := strings.SplitN(out, "\n", 2)[0]
	want := strings.Join(DefaultExportFields, "\t")
	if header != want {
		t.Errorf("header = %q, want %q", header, want)
	}
}

func TestGeneSummary(t *testing.T) {
	gene := map[string]any{
		"symbol":       "CDK2",
		"name":         "cyclin dependent kinase 2",
		"entrezgene":   1017,
		"taxid":        9606,
		"type_of_gene": "protein-coding",
		"ensembl":      map[string]any{"gene": "ENSG00000123374"},
		"genomic_pos":  map[string]any{"chr": "12", "start": 55966769, "end": 55972784},
		"summary":      "This gene encodes a member of a family of kinases.",
	}

	out := GeneSummary(gene)

	for _, want := range []string{
		"# CDK2",
		"cyclin dependent kinase 2",
		"**Entrez**: 1017",
		"**Ensembl**: ENSG00000123374",
		"**Location**: chr12:55966769-55972784",
		"a member of a family of kinases",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("GeneSummary() missing %q in:\n%s", want, out)
		}
	}
}

func TestGeneSummaryFallsBackToID(t *testing.T) {
	out := GeneSummary(map[string]any{"_id": "1017"})
	if !strings.HasPrefix(out, "# 1017") {
		t.Errorf("GeneSummary() = %q, want _id heading", out)
	}
}
