package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/biothings/mygene-mcp/api"
	"github.com/biothings/mygene-mcp/format"
)

var (
	geneFieldsFlag  string
	geneSpeciesFlag string
	geneBrowserFlag bool
	geneJSONFlag    bool

	geneCmd = &cobra.Command{
		Use:   "gene <id>...",
		Short: "Show gene annotations",
		Long: `Fetch annotation documents for one or more gene ids (Entrez, Ensembl,
or symbol) and display them as a terminal summary or raw JSON.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runGene,
	}
)

func init() {
	geneCmd.Flags().StringVar(&geneFieldsFlag, "fields", "", "comma-separated fields to fetch (default: all)")
	geneCmd.Flags().StringVar(&geneSpeciesFlag, "species", "", "species filter")
	geneCmd.Flags().BoolVarP(&geneBrowserFlag, "browser", "b", false, "open the annotation in the browser instead")
	geneCmd.Flags().BoolVar(&geneJSONFlag, "json", false, "print raw JSON instead of a summary")
	rootCmd.AddCommand(geneCmd)
}

func runGene(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	if geneBrowserFlag {
		for _, id := range args {
			u := client.AnnotationURL(id)
			fmt.Printf("Opening %s\n", u)
			if err := browser.OpenURL(u); err != nil {
				return failure.Wrap(err)
			}
		}
		return nil
	}

	genes, err := client.AnnotationsParallel(cmd.Context(), args, api.AnnotationRequest{
		Fields:  geneFieldsFlag,
		Species: geneSpeciesFlag,
	})
	if err != nil {
		return err
	}

	if geneJSONFlag || !isatty.IsTerminal(os.Stdout.Fd()) {
		b, err := json.MarshalIndent(genes, "", "  ")
		if err != nil {
			return failure.Wrap(err)
		}
		fmt.Println(string(b))
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return failure.Wrap(err)
	}

	for _, gene := range genes {
		out, err := renderer.Render(format.GeneSummary(gene))
		if err != nil {
			return failure.Wrap(err)
		}
		fmt.Print(out)
	}
	return nil
}
