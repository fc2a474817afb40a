package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/astronexus/internal/browse"
	"github.com/papapumpkin/astronexus/internal/tui"
)

// tuiCmd launches the interactive browser.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive browser",
	Long: `Launch the AstroNexus browser. Number keys and tab switch between the
ten sections; each footer lists the keys that section accepts.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().String("section", "", "section to open on (see 'astronexus sections')")
	tuiCmd.Flags().Bool("no-splash", false, "skip the startup splash animation")
	rootCmd.AddCommand(tuiCmd)
}

// errNoTTY is returned when the browser is started without a terminal.
var errNoTTY = errors.New("astronexus tui requires a TTY (terminal)")

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdout) {
		return errNoTTY
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	name := s.cfg.DefaultSection
	if flag, _ := cmd.Flags().GetString("section"); flag != "" {
		name = flag
	}
	section, err := browse.ParseSection(name)
	if err != nil {
		return err
	}
	if noSplash, _ := cmd.Flags().GetBool("no-splash"); noSplash {
		s.cfg.NoSplash = true
	}

	ctx, cancel := signalContext()
	defer cancel()

	logger.Debug("starting tui", zap.String("section", section.Label()), zap.Int64("seed", s.cfg.Seed))
	return tui.Run(tui.Options{
		Library:  s.lib,
		Config:   s.cfg,
		Section:  section,
		Logger:   logger,
		Recorder: s.recorder,
		Rand:     newRand(s.cfg.Seed),
		Context:  ctx,
	})
}
