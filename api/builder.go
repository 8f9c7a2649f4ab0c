package api

import (
	"fmt"
	"strings"
)

// Helpers for assembling MyGene.info query strings. The grammar is
// Lucene-like: quoted field terms, _exists_ filters, AND/OR/NOT operators,
// and parenthesized groups.

// Term renders a quoted field match: field:"value"
func Term(field, value string) string {
	return fmt.Sprintf("%s:%q", field, value)
}

// RawTerm renders an unquoted field match: field:value
func RawTerm(field string, value any) string {
	return fmt.Sprintf("%s:%v", field, value)
}

// Exists renders an existence filter: _exists_:field
func Exists(field string) string {
	return "_exists_:" + field
}

// AnyOf renders a parenthesized OR group: (a OR b OR c)
func AnyOf(parts ...string) string {
	return "(" + strings.Join(parts, " OR ") + ")"
}

// AllOf joins top-level clauses with AND
func AllOf(parts ...string) string {
	return strings.Join(parts, " AND ")
}
