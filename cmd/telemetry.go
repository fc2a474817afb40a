package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/astronexus/internal/config"
	"github.com/papapumpkin/astronexus/internal/telemetry"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "View recorded session events",
	Long: `Reads and formats the JSONL event file written when telemetry_path is set.

With --follow (-f), watches the file for new events (like tail -f).`,
	Args: cobra.NoArgs,
	RunE: runTelemetry,
}

func init() {
	telemetryCmd.Flags().String("path", "", "event file to read (default: telemetry_path)")
	telemetryCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	rootCmd.AddCommand(telemetryCmd)
}

// errNoTelemetryPath is returned when there is no event file to read.
var errNoTelemetryPath = errors.New("telemetry: no event file (set telemetry_path or pass --path)")

func runTelemetry(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("path")
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		path = cfg.TelemetryPath
	}
	if path == "" {
		return errNoTelemetryPath
	}
	follow, _ := cmd.Flags().GetBool("follow")

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	if err := printLines(cmd.OutOrStdout(), reader); err != nil {
		return fmt.Errorf("telemetry: read %s: %w", path, err)
	}
	if !follow {
		return nil
	}

	ctx, cancel := signalContext()
	defer cancel()
	return tailFollow(ctx, cmd.OutOrStdout(), reader, path)
}

// printLines prints every complete event available from r.
func printLines(w io.Writer, r *bufio.Reader) error {
	for {
		line, err := r.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			printEvent(w, line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// tailFollow watches path and prints events as they are appended, until
// ctx is cancelled.
func tailFollow(ctx context.Context, w io.Writer, r *bufio.Reader, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("telemetry: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("telemetry: watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("telemetry: watch %s: %w", path, err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
			if err := printLines(w, r); err != nil {
				return fmt.Errorf("telemetry: read %s: %w", path, err)
			}
		}
	}
}

// printEvent decodes a JSONL line and prints a human-readable representation.
func printEvent(w io.Writer, line string) {
	var evt telemetry.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(w, "??? %s\n", line)
		return
	}

	parts := []string{fmt.Sprintf("[%s]", evt.Timestamp.Format(time.TimeOnly)), evt.Kind}
	if evt.Section != "" {
		parts = append(parts, "section="+evt.Section)
	}
	if evt.Dataset != "" {
		parts = append(parts, "dataset="+evt.Dataset)
	}
	switch d := evt.Data.(type) {
	case nil:
	case map[string]any:
		parts = append(parts, formatDataMap(d))
	case string:
		parts = append(parts, fmt.Sprintf("%q", d))
	default:
		data, _ := json.Marshal(d)
		parts = append(parts, string(data))
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
}

// formatDataMap formats a data map as key=value pairs sorted by key.
func formatDataMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, m[k])
	}
	return b.String()
}
