// Package commands implements the CLI commands for opensync.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opensync/opensync/internal/config"
	"github.com/opensync/opensync/internal/errors"
	"github.com/opensync/opensync/internal/logging"
	"github.com/opensync/opensync/internal/target"
)

// version is shown for --version; the version subcommand reports the
// full ldflags build info.
const version = "0.1.0"

// scopeFlag holds the value of the --scope flag.
var scopeFlag string

// projectFlag holds the value of the --project flag.
var projectFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// cfg is the loaded configuration, populated by initConfig.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&scopeFlag, "scope", "s", "",
		"config scope: global, project (default: from config file)")
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "C", "",
		"project directory for project-scope configs (default: current directory)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("opensync version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "opensync",
	Short: "Synchronize MCP server configs across AI tools",
	Long: `opensync keeps MCP server definitions consistent across the config
files of AI coding tools: Claude Code, Claude Desktop, Cursor, VS Code,
Windsurf, OpenCode, Gemini CLI, Codex, and others.

Each tool stores servers in its own file format and dialect. opensync
reads them all into one canonical view, lets you pick what is true, and
writes that truth back out in each tool's native shape. Tools that only
speak stdio get remote servers bridged through npx mcp-remote.

Use --scope to choose between user-wide configs (global) and per-project
configs (project).`,
	Example: `  # See every server every tool knows about
  opensync list

  # Push the github server everywhere
  opensync sync github --all

  # Remove a server from every tool
  opensync remove old-server

  # Verify a server actually answers
  opensync check github`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return validateGlobalFlags(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("OPENSYNC_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		handler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctx)

	return nil
}

// validateGlobalFlags checks the persistent flags shared by every command.
func validateGlobalFlags(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewUserError(configLoadErr, "check ~/.config/opensync/config.yaml")
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		err := errors.Wrapf(errors.ErrInvalidConfig, "%s", strings.Join(msgs, "; "))
		return errors.NewUserError(err, "check ~/.config/opensync/config.yaml")
	}

	switch scopeFlag {
	case "", string(target.ScopeGlobal), string(target.ScopeProject):
	default:
		err := errors.Newf("invalid scope %q (valid: %s, %s)",
			scopeFlag, target.ScopeGlobal, target.ScopeProject)
		return errors.NewUserError(err, "use --scope global or --scope project")
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Hint: %s\n", exitErr.Suggestion)
		}
	}
	return err
}
