// Package cli implements the mygene-mcp command line interface.
package cli
