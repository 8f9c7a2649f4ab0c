package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/biothings/mygene-mcp/api"
	"github.com/biothings/mygene-mcp/api/cache"
	"github.com/biothings/mygene-mcp/config"
)

var (
	refreshFlag    bool
	fieldsJSONFlag bool

	speciesCmd = &cobra.Command{
		Use:   "species",
		Short: "List supported species",
		Long:  "List supported species with taxonomy ids and gene counts. Results are cached locally.",
		RunE:  runSpecies,
	}

	fieldsCmd = &cobra.Command{
		Use:   "fields",
		Short: "List queryable fields",
		Long:  "List every queryable MyGene.info field. Results are cached locally.",
		RunE:  runFields,
	}
)

func init() {
	speciesCmd.Flags().BoolVar(&refreshFlag, "refresh", false, "bypass the local cache")
	fieldsCmd.Flags().BoolVar(&refreshFlag, "refresh", false, "bypass the local cache")
	fieldsCmd.Flags().BoolVar(&fieldsJSONFlag, "json", false, "print full field metadata as JSON")
	rootCmd.AddCommand(speciesCmd)
	rootCmd.AddCommand(fieldsCmd)
}

// configureCache applies cache settings from config to a metadata cache
func configureCache[T any](c *cache.Cache[T], cfg config.Config) {
	if cfg.Cache.Dir != "" {
		c.SetDir(cfg.Cache.Dir)
	}
	if cfg.Cache.TTLHours > 0 {
		c.SetTTL(time.Duration(cfg.Cache.TTLHours) * time.Hour)
	}
}

func runSpecies(cmd *cobra.Command, args []string) error {
	client, cfg, err := newAPIClient()
	if err != nil {
		return err
	}

	speciesCache := cache.New[[]api.Species]("metadata")
	configureCache(speciesCache, cfg)

	species, err := speciesCache.GetOrSet("species", func() ([]api.Species, error) {
		return client.SpeciesList(cmd.Context())
	}, refreshFlag)
	if err != nil {
		return err
	}

	fmt.Printf("%-10s %-16s %s\n", "TAXID", "NAME", "GENES")
	for _, s := range species {
		fmt.Printf("%-10d %-16s %d\n", s.TaxID, s.Name, s.GeneCount)
	}
	return nil
}

func runFields(cmd *cobra.Command, args []string) error {
	client, cfg, err := newAPIClient()
	if err != nil {
		return err
	}

	fieldsCache := cache.New[map[string]any]("metadata")
	configureCache(fieldsCache, cfg)

	fields, err := fieldsCache.GetOrSet("fields", func() (map[string]any, error) {
		return client.MetadataFields(cmd.Context())
	}, refreshFlag)
	if err != nil {
		return err
	}

	if fieldsJSONFlag {
		b, err := json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return failure.Wrap(err)
		}
		fmt.Println(string(b))
		return nil
	}

	names := lo.Keys(fields)
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
