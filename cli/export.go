package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"

	"github.com/biothings/mygene-mcp/api"
	"github.com/biothings/mygene-mcp/format"
)

var (
	exportFormatFlag string
	exportFieldsFlag string
	exportOutFlag    string

	exportCmd = &cobra.Command{
		Use:   "export <id>...",
		Short: "Export gene data",
		Long: `Fetch annotations for a list of gene ids and write them as TSV, CSV,
JSON or XML.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExport,
	}
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormatFlag, "format", "f", "tsv", "output format: tsv, csv, json, xml")
	exportCmd.Flags().StringVar(&exportFieldsFlag, "fields", strings.Join(format.DefaultExportFields, ","), "comma-separated fields to export")
	exportCmd.Flags().StringVarP(&exportOutFlag, "out", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	fields := strings.Split(exportFieldsFlag, ",")

	genes, err := client.Annotations(cmd.Context(), api.BatchAnnotationRequest{
		IDs:    args,
		Fields: strings.Join(fields, ","),
	})
	if err != nil {
		return err
	}

	out, err := format.Export(genes, fields, format.Format(exportFormatFlag))
	if err != nil {
		return err
	}

	if exportOutFlag == "" {
		fmt.Print(out)
		return nil
	}

	if err := os.WriteFile(exportOutFlag, []byte(out), 0o644); err != nil {
		return failure.New(WriteFailed,
			failure.Message("Failed to write output file"),
			failure.Context{"path": exportOutFlag, "cause": err.Error()},
		)
	}
	fmt.Printf("Wrote %d genes to %s\n", len(genes), exportOutFlag)
	return nil
}
