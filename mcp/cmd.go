package mcp

import (
	"github.com/spf13/cobra"

	"github.com/biothings/mygene-mcp/api"
	"github.com/biothings/mygene-mcp/config"
	"github.com/biothings/mygene-mcp/log"
)

// Command returns the serve subcommand, speaking MCP over stdio by default
// or streamable HTTP when an address is configured
func Command() *cobra.Command {
	var httpAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long:  "Start the MCP server exposing MyGene.info tools over stdio or streamable HTTP.",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			client := api.NewClient(
				api.WithBaseURL(cfg.API.BaseURL),
				api.WithTimeout(cfg.Timeout()),
			)
			srv := NewServer(cfg.Server.Name, client)

			addr := httpAddr
			if addr == "" {
				addr = cfg.Server.HTTP
			}
			if addr != "" {
				return srv.RunHTTP(addr)
			}

			log.Debug("Starting MCP server on stdio")
			return srv.Run()
		},
	}

	cmd.Flags().StringVar(&httpAddr, "http", "", "serve over streamable HTTP on this address (e.g. :8080) instead of stdio")

	return cmd
}
