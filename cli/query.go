package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"

	"github.com/biothings/mygene-mcp/api"
	"github.com/biothings/mygene-mcp/format"
)

var (
	queryFieldsFlag  string
	querySpeciesFlag string
	querySizeFlag    int
	querySortFlag    string
	queryJSONFlag    bool

	queryCmd = &cobra.Command{
		Use:   "query <q>",
		Short: "Search genes",
		Long: `Search genes with the MyGene.info query syntax, e.g.

  mygene-mcp query CDK2
  mygene-mcp query 'cyclin*' --species human
  mygene-mcp query 'go.BP.term:"cell cycle"' --size 25`,
		Args: cobra.ExactArgs(1),
		RunE: runQuery,
	}
)

func init() {
	queryCmd.Flags().StringVar(&queryFieldsFlag, "fields", api.DefaultQueryFields, "comma-separated fields to return")
	queryCmd.Flags().StringVar(&querySpeciesFlag, "species", "", "species filter")
	queryCmd.Flags().IntVar(&querySizeFlag, "size", 10, "number of results")
	queryCmd.Flags().StringVar(&querySortFlag, "sort", "", "sort order")
	queryCmd.Flags().BoolVar(&queryJSONFlag, "json", false, "print the raw response instead of a table")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	resp, err := client.Query(cmd.Context(), api.QueryRequest{
		Q:       args[0],
		Fields:  queryFieldsFlag,
		Species: querySpeciesFlag,
		Size:    &querySizeFlag,
		Sort:    querySortFlag,
	})
	if err != nil {
		return err
	}

	if queryJSONFlag {
		b, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return failure.Wrap(err)
		}
		fmt.Println(string(b))
		return nil
	}

	fmt.Printf("%d hits (showing %d)\n", resp.Total, len(resp.Hits))
	if len(resp.Hits) == 0 {
		return nil
	}

	table, err := format.Table(resp.Hits, strings.Split(queryFieldsFlag, ","), '\t')
	if err != nil {
		return err
	}
	fmt.Print(table)
	return nil
}
