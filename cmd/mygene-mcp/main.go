// Command mygene-mcp exposes MyGene.info as MCP tools and CLI subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/morikuni/failure/v2"

	"github.com/biothings/mygene-mcp/cli"
)

func main() {
	if err := cli.Run(); err != nil {
		var userMessage string
		if fmsg := failure.MessageOf(err); fmsg != "" {
			userMessage = fmsg.String()
		} else {
			userMessage = err.Error()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", userMessage)
		os.Exit(1)
	}
}
