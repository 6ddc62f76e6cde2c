package options

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/runner/mcp"
)

// MCPOptions
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", string(mcp.TransportStdio),
		"Transport to serve on. One of "+strings.Join(mcp.Transports(), ", ")+".")
	cmd.Flags().StringVar(&o.Host, "http-host", "127.0.0.1", "Interface for the http transport.")
	cmd.Flags().IntVar(&o.Port, "http-port", 8080, "Port for the http transport. Use 0 for a random port.")
	cmd.Flags().StringVar(&o.Path, "http-path", "/mcp", "Endpoint path for the http transport.")
	_ = cmd.RegisterFlagCompletionFunc("transport", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return mcp.Transports(), cobra.ShellCompDirectiveNoFileComp
	})
}

// GetTransport normalizes and validates the transport flag.
func (o *MCPOptions) GetTransport() (mcp.Transport, error) {
	switch t := mcp.Transport(strings.ToLower(strings.TrimSpace(o.Transport))); t {
	case "", mcp.TransportStdio:
		return mcp.TransportStdio, nil
	case mcp.TransportHTTP:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported transport %q (expected %s)", o.Transport, strings.Join(mcp.Transports(), " or "))
	}
}

// Addr is the listen address for the http transport.
func (o *MCPOptions) Addr() (string, error) {
	if o.Port < 0 || o.Port > 65535 {
		return "", fmt.Errorf("invalid http-port %d", o.Port)
	}
	host := strings.TrimSpace(o.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(o.Port)), nil
}
