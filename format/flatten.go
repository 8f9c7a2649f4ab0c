package format

import "strings"

// Lookup resolves a dotted field path (e.g. "ensembl.gene") inside a nested
// annotation document. Returns nil when any path segment is missing or not
// an object.
func Lookup(gene map[string]any, field string) any {
	if !strings.Contains(field, ".") {
		return gene[field]
	}

	var value any = gene
	for _, part := range strings.Split(field, ".") {
		obj, ok := value.(map[string]any)
		if !ok {
			return nil
		}
		value, ok = obj[part]
		if !ok {
			return nil
		}
	}
	return value
}

// Flatten projects a gene document onto the requested fields, resolving
// dotted paths into nested objects
func Flatten(gene map[string]any, fields []string) map[string]any {
	flat := make(map[string]any, len(fields))
	for _, field := range fields {
		flat[field] = Lookup(gene, field)
	}
	return flat
}
