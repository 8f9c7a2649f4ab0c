package format

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/spf13/cast"
)

// Format identifies an export output format
type Format string

const (
	FormatTSV  Format = "tsv"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ErrorCode defines error types for export operations
type ErrorCode string

const (
	// ErrUnsupportedFormat represents an unknown export format
	ErrUnsupportedFormat ErrorCode = "UnsupportedFormat"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// DefaultExportFields are the columns exported when none are requested
var DefaultExportFields = []string{"symbol", "name", "taxid", "entrezgene", "ensembl.gene", "type_of_gene"}

// Export renders gene documents in the requested format
func Export(genes []map[string]any, fields []string, format Format) (string, error) {
	if len(fields) == 0 {
		fields = DefaultExportFields
	}

	switch format {
	case FormatJSON:
		return JSON(genes)
	case FormatTSV:
		return Table(genes, fields, '\t')
	case FormatCSV:
		return Table(genes, fields, ',')
	case FormatXML:
		return XML(genes, fields)
	default:
		return "", failure.New(ErrUnsupportedFormat,
			failure.Message("Unsupported format: "+string(format)),
			failure.Context{"format": string(format)},
		)
	}
}

// JSON renders genes as an indented JSON array
func JSON(genes []map[string]any) (string, error) {
	b, err := json.MarshalIndent(genes, "", "  ")
	if err != nil {
		return "", failure.Wrap(err)
	}
	return string(b), nil
}

// Table renders genes as delimiter-separated values with a header row.
// Dotted fields are resolved into nested objects.
func Table(genes []map[string]any, fields []string, comma rune) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	w.Comma = comma

	if err := w.Write(fields); err != nil {
		return "", failure.Wrap(err)
	}

	row := make([]string, len(fields))
	for _, gene := range genes {
		flat := Flatten(gene, fields)
		for i, field := range fields {
			row[i] = cellString(flat[field])
		}
		if err := w.Write(row); err != nil {
			return "", failure.Wrap(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", failure.Wrap(err)
	}
	return buf.String(), nil
}

// XML renders genes as a flat element-per-field document. Field names become
// element names verbatim (dots are valid in XML names); composite values are
// JSON-encoded.
func XML(genes []map[string]any, fields []string) (string, error) {
	var buf strings.Builder
	buf.WriteString(xml.Header)
	buf.WriteString("<genes>\n")

	for _, gene := range genes {
		buf.WriteString("  <gene>\n")
		for _, field := range fields {
			buf.WriteString("    <" + field + ">")
			if err := xml.EscapeText(&buf, []byte(cellString(gene[field]))); err != nil {
				return "", failure.Wrap(err)
			}
			buf.WriteString("</" + field + ">\n")
		}
		buf.WriteString("  </gene>\n")
	}

	buf.WriteString("</genes>\n")
	return buf.String(), nil
}

// cellString renders a single value for tabular output. Scalars are cast to
// their plain string form; lists and objects are JSON-encoded; nil is empty.
func cellString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return cast.ToString(v)
	}
}
