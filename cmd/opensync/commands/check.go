package commands

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/opensync/opensync/internal/errors"
	"github.com/opensync/opensync/internal/mcp"
	"github.com/opensync/opensync/internal/probe"
)

var (
	checkTimeout time.Duration
	checkJSON    bool
)

func init() {
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", probe.DefaultTimeout,
		"per-server probe timeout")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [server...]",
	Short: "Verify servers actually start and answer",
	Long: `Connect to each server with a real MCP handshake and list its tools.

Local servers are spawned as a subprocess for the duration of the
check; remote servers are contacted over HTTP or SSE. With no
arguments, every discovered server in the scope is checked.`,
	Example: `  # Check everything
  opensync check

  # Check one server with a longer timeout
  opensync check github --timeout 30s`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	discovered := newEngine().Discover(activeScope(), projectFlag)

	var servers []*mcp.Server
	if len(args) == 0 {
		for _, s := range discovered {
			servers = append(servers, s)
		}
		sort.Slice(servers, func(i, j int) bool { return servers[i].Name < servers[j].Name })
	} else {
		for _, name := range args {
			s, ok := discovered[name]
			if !ok {
				return errors.NewUserError(
					errors.Wrapf(errors.ErrNotFound, "server %q", name),
					"run 'opensync list' to see known servers")
			}
			servers = append(servers, s)
		}
	}

	if len(servers) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No MCP servers to check.")
		return nil
	}

	out := cmd.OutOrStdout()
	reports := make([]*probe.Report, 0, len(servers))
	failed := 0
	for _, s := range servers {
		ctx, cancel := cmdContextWithTimeout(cmd, checkTimeout)
		report := probe.Probe(ctx, s)
		cancel()
		reports = append(reports, report)

		if checkJSON {
			continue
		}
		if report.OK {
			fmt.Fprintf(out, "%s %s (%s, %d tool(s), %s)\n",
				color.GreenString("✓"), report.Server, report.Transport,
				len(report.Tools), report.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(out, "%s %s (%s): %s\n",
				color.RedString("✗"), report.Server, report.Transport, report.Error)
			failed++
		}
	}

	if checkJSON {
		if err := writeJSON(out, reports); err != nil {
			return err
		}
		for _, r := range reports {
			if !r.OK {
				failed++
			}
		}
	}

	if failed > 0 {
		return errors.NewExitError(
			errors.Newf("%d of %d server(s) failed the check", failed, len(reports)),
			errors.ExitSystem)
	}
	return nil
}

func cmdContextWithTimeout(cmd *cobra.Command, timeout time.Duration) (ctx context.Context, cancel context.CancelFunc) {
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	return context.WithTimeout(base, timeout)
}
