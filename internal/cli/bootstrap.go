// Package cli provides CLI commands for the hive application.
package cli

import (
	gocontext "context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/example/hive/internal/config"
	"github.com/example/hive/internal/ctxutil"
	"github.com/example/hive/internal/logging"
	"github.com/example/hive/internal/version"
	"github.com/example/hive/internal/wire"
)

var (
	// globalActorID is the --user flag for the current CLI invocation.
	globalActorID string

	// configDir is the directory holding .hive/config.yaml.
	configDir string
)

// RegisterGlobalFlags adds the persistent flags shared by every command.
func RegisterGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&globalActorID, "user", "", "actor recorded on changes (defaults to default_user from config)")
	root.PersistentFlags().StringVar(&configDir, "dir", ".", "directory containing .hive/config.yaml")
}

// Bootstrap loads the configuration, sets up logging and hands the config to
// the wire package. It is the root command's PersistentPreRunE.
func Bootstrap(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	logging.Setup(cfg.LogLevel, cfg.DevMode, version.Version)
	wire.Configure(cfg)

	log.Debug().
		Str("driver", cfg.Driver).
		Str("command", cmd.CommandPath()).
		Msg("configuration loaded")
	return nil
}

// GetActorID returns the actor given with --user, or empty string.
func GetActorID() string {
	return globalActorID
}

// NewContext creates a context.Background() with the current actor ID embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() gocontext.Context {
	ctx := gocontext.Background()
	if globalActorID != "" {
		return ctxutil.WithActorID(ctx, globalActorID)
	}
	return ctx
}

// parseID parses a numeric hive or section identifier argument.
func parseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid %s ID %q: must be a non-negative integer", kind, arg)
	}
	return id, nil
}
