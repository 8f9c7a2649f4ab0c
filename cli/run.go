package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biothings/mygene-mcp/api"
	"github.com/biothings/mygene-mcp/config"
	"github.com/biothings/mygene-mcp/mcp"
)

var (
	configFlag string

	// Root command
	rootCmd = &cobra.Command{
		Use:           "mygene-mcp",
		Short:         "MyGene.info gene queries from the terminal and over MCP",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `mygene-mcp exposes the MyGene.info gene annotation service as MCP tools
and as a set of query subcommands for terminal use.

Run 'mygene-mcp serve' to start the MCP server, or use the gene, query,
export, species and fields subcommands directly.`,
	}

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mygene-mcp version %s\n", api.Version)
			if api.VersionCommit != "" {
				fmt.Printf("  commit: %s\n", api.VersionCommit)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to a TOML config file")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcp.Command())
}

// Run executes the main CLI functionality
func Run() error {
	return rootCmd.Execute()
}

// loadConfig reads the configured TOML file plus environment overrides
func loadConfig() (config.Config, error) {
	return config.Load(configFlag)
}

// newAPIClient builds a MyGene.info client from the loaded configuration
func newAPIClient() (*api.Client, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}

	client := api.NewClient(
		api.WithBaseURL(cfg.API.BaseURL),
		api.WithTimeout(cfg.Timeout()),
	)
	return client, cfg, nil
}
