package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wlmitm/pkg/config"
	"wlmitm/pkg/errors"
	"wlmitm/pkg/logger"
	"wlmitm/pkg/proxy"

	"github.com/spf13/cobra"
)

const unknownValue = "unknown"

var (
	Version   string
	BuildTime string
	GitCommit string
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "wlmitm [config.toml]",
	Short: "Filtering man-in-the-middle proxy for Wayland",
	Long: `wlmitm sits between Wayland clients and the real compositor. It
impersonates the compositor on a local socket, parses every message in both
directions, tracks object lifecycles, and enforces a configurable policy
over which globals are advertised and which requests go through.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Explicit flag takes precedence over env var; the config file's
		// log_level applies last, once it has been read.
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if envLevel := os.Getenv("WL_MITM_LOG_LEVEL"); envLevel != "" {
				level = envLevel
			}
		}
		logger.SetLevel(level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.DefaultConfigPath
		if len(args) > 0 {
			configPath = args[0]
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("log-level") && os.Getenv("WL_MITM_LOG_LEVEL") == "" {
			logger.SetLevel(cfg.Logging.LogLevel)
		}

		server, err := proxy.NewServer(cfg)
		if err != nil {
			return err
		}
		defer server.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = unknownValue
		}
		gc := GitCommit
		if gc == "" {
			gc = unknownValue
		}

		fmt.Printf("wlmitm version %s\n", ver)
		fmt.Printf("Built: %s\n", bt)
		fmt.Printf("Git commit: %s\n", gc)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
