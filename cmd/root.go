package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/BRIKEV/twd-mcp/internal/config"
	"github.com/BRIKEV/twd-mcp/internal/logging"
	"github.com/BRIKEV/twd-mcp/internal/output"
	"github.com/BRIKEV/twd-mcp/internal/version"
)

var (
	cfgFile string
	v       = viper.New()
	cfg     *config.Config
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "twd-mcp",
	Short: "Generate TWD tests from recorded browser sessions",
	Long: `twd-mcp turns DOM element descriptors, captured network traffic and recorded
user interactions into TWD (twd-js) test code.

Run "twd-mcp serve" to expose the generators as MCP tools, or use the
selectors, mocks and generate commands directly.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default ./twd-mcp.yaml)")
	pf.String("format", "yaml", "Output format for structured results: yaml, json")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "console", "Log format: console, json")
	pf.String("log-file", "", "Also write JSON logs to this file, rotated by size")
	bindFlag("output.format", pf.Lookup("format"))
	bindFlag("log.level", pf.Lookup("log-level"))
	bindFlag("log.format", pf.Lookup("log-format"))
	bindFlag("log.file", pf.Lookup("log-file"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(".env"); err != nil {
			return err
		}
		loaded, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		l, err := logging.New(loaded.Log)
		if err != nil {
			return err
		}
		cfg, logger = loaded, l
		logger.Debug("configuration loaded",
			zap.String("config_file", v.ConfigFileUsed()),
			zap.String("version", version.Version),
		)
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	}
}

// outputFormat returns the validated --format setting.
func outputFormat() (output.Format, error) {
	if cfg == nil {
		return output.FormatYAML, nil
	}
	return output.ParseFormat(cfg.Output.Format)
}
