package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/papapumpkin/astronexus/internal/config"
)

// logger is built in PersistentPreRunE from the loaded config.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "astronexus",
	Short: "Explore the universe from your terminal",
	Long: `AstroNexus is an interactive space exploration guide: a gallery of
astronomical images, the solar system, a cosmic timeline, a telescope
simulator, planet comparisons, a mission builder, a space mentor and a
deep space radio.

Run without arguments on a terminal to open the interactive browser.`,
	SilenceUsage: true,
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logger.Sync()
	},
	RunE: runRootDefault,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentPreRunE = setupLogger

	rootCmd.PersistentFlags().String("config", "", "config file (default .astronexus.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("log-level", "", "diagnostic log level (debug, info, warn, error)")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".astronexus")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// setupLogger builds the diagnostic logger. The interactive browser owns
// the terminal, so it only logs when a log file is configured.
func setupLogger(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, err := buildLogger(cfg, launchesTUI(cmd))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

// runRootDefault opens the browser on a terminal and prints help otherwise.
func runRootDefault(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdout) {
		return cmd.Help()
	}
	return runTUI(tuiCmd, nil)
}
