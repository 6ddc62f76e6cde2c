package commands

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the journal over the Model Context Protocol.",
		Long: options.Wrap80("Start an MCP server that lets assistants log moods and read entries, " +
			"calendar months, per-mood counts and exports. Serves on stdio unless --transport http is given."),
		Example: `
mood mcp
mood mcp --transport http --http-port 0
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			transport, err := mo.GetTransport()
			if err != nil {
				return err
			}
			// stdout carries the protocol on stdio, so only log to a file.
			s, err := openSession(cmd.Context(), transport == mcp.TransportStdio)
			if err != nil {
				return err
			}
			defer s.Close()

			r := mcp.Runner{
				Service:          s.svc,
				WeatherTimeout:   s.cfg.WeatherTimeout,
				Version:          version,
				Transport:        transport,
				HTTPEndpointPath: mo.Path,
			}
			if transport == mcp.TransportHTTP {
				addr, err := mo.Addr()
				if err != nil {
					return err
				}
				r.HTTPListenAddr = addr
				r.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s%s\n", a, mo.Path)
				}
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddMCPArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
