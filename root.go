package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"lasker/agent"
	"lasker/config"
	"lasker/logging"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	cfg       config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "lasker",
	Short: "Lasker Morris player and rules referee",
	Long: `lasker plays Lasker Morris (Ten Men's Morris) against a referee over stdin/stdout,
runs local self-play series and checks move sequences against the rules.

Standard output carries moves only; logs go to stderr or to --log-file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := applyFlags(cmd); err != nil {
			return err
		}
		logCloser, err = logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser == nil {
			return nil
		}
		return logCloser.Close()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "lasker.yaml", "YAML config file (ignored when missing)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Append JSON logs to this file instead of stderr")
	rootCmd.PersistentFlags().Int("max-turns", 0, "Moves after which a local game is a draw")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for the random agents")
	rootCmd.PersistentFlags().String("model", "", "Generative model used by the remote agent")
}

// applyFlags lets explicitly set flags override the loaded configuration.
func applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("max-turns") {
		cfg.MaxTurns, _ = flags.GetInt("max-turns")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("model") {
		cfg.Model, _ = flags.GetString("model")
	}
	return cfg.Validate()
}

// newAgent builds the agent named kind: "random" or "remote".
func newAgent(kind string, seed uint64) (agent.Agent, error) {
	switch kind {
	case "random":
		return agent.NewRandom(seed), nil
	case "remote":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("remote agent needs an API key (LASKER_API_KEY or api_key)")
		}
		return agent.NewRemote(cfg.Endpoint, cfg.Model, cfg.APIKey, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown agent %q, want random or remote", kind)
	}
}
