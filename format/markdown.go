package format

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// GeneSummary renders a markdown summary of an annotation document for
// terminal display. Only well-known top-level fields are summarized; the
// full document is the JSON output's job.
func GeneSummary(gene map[string]any) string {
	var b strings.Builder

	symbol := cast.ToString(gene["symbol"])
	if symbol == "" {
		symbol = cast.ToString(gene["_id"])
	}
	fmt.Fprintf(&b, "# %s\n\n", symbol)

	if name := cast.ToString(gene["name"]); name != "" {
		fmt.Fprintf(&b, "%s\n\n", name)
	}

	writeRow := func(label string, value any) {
		s := cellString(value)
		if s != "" {
			fmt.Fprintf(&b, "- **%s**: %s\n", label, s)
		}
	}

	writeRow("Entrez", gene["entrezgene"])
	writeRow("Taxid", gene["taxid"])
	writeRow("Type", gene["type_of_gene"])
	writeRow("Ensembl", Lookup(gene, "ensembl.gene"))
	writeRow("Aliases", gene["alias"])

	if pos, ok := gene["genomic_pos"].(map[string]any); ok {
		fmt.Fprintf(&b, "- **Location**: chr%s:%s-%s\n",
			cast.ToString(pos["chr"]),
			cast.ToString(pos["start"]),
			cast.ToString(pos["end"]),
		)
	}

	if summary := cast.ToString(gene["summary"]); summary != "" {
		fmt.Fprintf(&b, "\n%s\n", summary)
	}

	return b.String()
}
