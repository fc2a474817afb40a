package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/papapumpkin/astronexus/internal/config"
	"github.com/papapumpkin/astronexus/internal/dataset"
	"github.com/papapumpkin/astronexus/internal/telemetry"
	"github.com/papapumpkin/astronexus/internal/ui"
)

// buildLogger returns a zap logger writing to the configured log file, or
// to stderr for line-oriented commands. The interactive browser gets a nop
// logger unless a file is set.
func buildLogger(cfg config.Config, interactive bool) (*zap.Logger, error) {
	if interactive && cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.LogFile != "" {
		zc.OutputPaths = []string{cfg.LogFile}
		zc.ErrorOutputPaths = []string{cfg.LogFile}
	} else {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		zc.OutputPaths = []string{"stderr"}
	}
	return zc.Build()
}

// launchesTUI reports whether cmd will take over the terminal.
func launchesTUI(cmd *cobra.Command) bool {
	switch cmd {
	case tuiCmd:
		return true
	case rootCmd:
		return isTerminal(os.Stdout)
	}
	return false
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newRand seeds a generator from seed, or randomly when seed is zero.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// newPrinter writes command output to cmd's stdout, colored on a terminal.
func newPrinter(cmd *cobra.Command) *ui.Printer {
	out := cmd.OutOrStdout()
	f, ok := out.(*os.File)
	return ui.NewTo(out, ok && isTerminal(f) && os.Getenv("NO_COLOR") == "")
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// session is the state shared by every command: config, content and the
// telemetry sinks.
type session struct {
	cfg      config.Config
	lib      *dataset.Library
	recorder *telemetry.Recorder
}

// openSession loads config and content and opens the configured telemetry
// sinks. Close flushes them.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	lib, err := dataset.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	s := &session{cfg: cfg, lib: lib}

	if cfg.TelemetryPath != "" || cfg.MetricsPath != "" {
		s.recorder = &telemetry.Recorder{}
	}
	if cfg.TelemetryPath != "" {
		em, err := telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			return nil, err
		}
		s.recorder.Emitter = em
	}
	if cfg.MetricsPath != "" {
		s.recorder.Metrics = telemetry.NewMetrics()
	}
	s.record(telemetry.Event{Kind: telemetry.KindSessionStart})
	return s, nil
}

// record logs rather than fails when telemetry cannot be written.
func (s *session) record(evt telemetry.Event) {
	if err := s.recorder.Record(evt); err != nil {
		logger.Warn("telemetry write failed", zap.String("kind", evt.Kind), zap.Error(err))
	}
}

// Close records the end of the session, writes the metrics textfile and
// closes the event stream.
func (s *session) Close() error {
	if s.recorder == nil {
		return nil
	}
	s.record(telemetry.Event{Kind: telemetry.KindSessionDone})
	var errs []error
	if s.cfg.MetricsPath != "" {
		if err := s.recorder.Metrics.WriteTextfile(s.cfg.MetricsPath); err != nil {
			errs = append(errs, err)
		} else {
			logger.Debug("metrics written", zap.String("path", s.cfg.MetricsPath))
		}
	}
	if err := s.recorder.Emitter.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
