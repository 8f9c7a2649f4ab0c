// Package format converts gene annotation documents into export formats
// (TSV, CSV, JSON, XML) and terminal-friendly markdown summaries.
package format
