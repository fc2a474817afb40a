package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/astronexus/internal/catalog"
	"github.com/papapumpkin/astronexus/internal/dataset"
	"github.com/papapumpkin/astronexus/internal/derive"
	"github.com/papapumpkin/astronexus/internal/mentor"
	"github.com/papapumpkin/astronexus/internal/schedule"
	"github.com/papapumpkin/astronexus/internal/telemetry"
)

var compareCmd = &cobra.Command{
	Use:   "compare <body> <body>",
	Short: "Compare two bodies by size, mass or temperature",
	Long: `Compare two bodies from the comparison catalog ('astronexus list bodies').
An unknown id falls back to the default pair with a notice.`,
	Example: "  astronexus compare earth jupiter --by mass",
	Args:    cobra.ExactArgs(2),
	RunE:    runCompare,
}

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Assemble a mission and optionally simulate its launch",
	Long: `Assemble a mission from the component catalog ('astronexus list components')
and report its cost, reliability and compatibility issues. With --simulate,
roll a launch once every slot is filled.`,
	Example: "  astronexus mission --rocket falcon-9 --payload communications-sat --orbit geo --destination earth --simulate",
	Args:    cobra.NoArgs,
	RunE:    runMission,
}

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask the space mentor a question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	compareCmd.Flags().String("by", "size", "dimension: size, mass or temperature")

	missionCmd.Flags().String("rocket", "", "rocket component id")
	missionCmd.Flags().String("payload", "", "payload component id")
	missionCmd.Flags().String("orbit", "", "orbit component id")
	missionCmd.Flags().String("destination", "", "destination component id")
	missionCmd.Flags().Bool("simulate", false, "simulate a launch")
	missionCmd.Flags().Int64("seed", 0, "random seed for the simulation (default: config seed, else random)")

	askCmd.Flags().Bool("no-delay", false, "answer at once instead of pausing to think")

	rootCmd.AddCommand(compareCmd, missionCmd, askCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	by, _ := cmd.Flags().GetString("by")
	dim, err := derive.ParseDimension(by)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	p := newPrinter(cmd)
	defA, defB := s.lib.DefaultBodies()
	bodies := [2]dataset.Body{defA, defB}
	for i, id := range args {
		b, err := s.lib.Bodies.Get(id)
		if errors.Is(err, catalog.ErrNotFound) {
			p.Notice(fmt.Sprintf("no body %q; comparing %s", id, bodies[i].ID))
			continue
		} else if err != nil {
			return err
		}
		bodies[i] = b
	}

	c := derive.Compare(bodies[0], bodies[1], dim)
	p.Comparison(bodies[0], bodies[1], c)
	s.record(telemetry.Event{Kind: telemetry.KindComparison, Dataset: dataset.StoreBodies, Data: c.String()})
	return nil
}

func runMission(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	var m derive.Mission
	for _, slot := range derive.Slots {
		id, _ := cmd.Flags().GetString(slot.String())
		if id == "" {
			continue
		}
		c, err := s.lib.Components.Get(id)
		if err != nil {
			return fmt.Errorf("--%s: %w", slot, err)
		}
		if got, _ := derive.SlotFor(c.Type); got != slot {
			return fmt.Errorf("--%s: %s is a %s, not a %s", slot, c.ID, c.Type, slot)
		}
		if m, err = m.Set(c); err != nil {
			return err
		}
	}

	p := newPrinter(cmd)
	p.Mission(m)

	if simulate, _ := cmd.Flags().GetBool("simulate"); !simulate {
		return nil
	}
	seed := s.cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetInt64("seed")
	}
	out, ok := derive.Run(m, newRand(seed))
	if !ok {
		return errors.New("choose a rocket, payload, orbit and destination before launching")
	}
	logger.Debug("simulated launch", zap.Float64("probability", out.Probability), zap.Bool("success", out.Success))
	p.Outcome(out)
	s.record(telemetry.Event{Kind: telemetry.KindSimulation, Dataset: dataset.StoreComponents,
		Data: telemetry.SimulationData{Probability: out.Probability, Success: out.Success}})
	return nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s)

	question := strings.Join(args, " ")
	reply := mentor.NewResponder(s.lib.Mentor).Respond(question)

	p := newPrinter(cmd)
	p.Question(question)

	delay := mentor.DelayRange{Min: s.cfg.Mentor.MinDelay, Max: s.cfg.Mentor.MaxDelay}.Pick(newRand(s.cfg.Seed))
	if noDelay, _ := cmd.Flags().GetBool("no-delay"); noDelay {
		delay = 0
	}

	ctx, cancel := signalContext()
	defer cancel()

	p.Typing()
	task := schedule.After(ctx, delay, func() string { return reply })
	answer, ok := task.Wait()
	p.ClearTyping()
	if !ok {
		return context.Cause(ctx)
	}

	p.Answer(answer)
	s.record(telemetry.Event{Kind: telemetry.KindMentorAnswer, Data: question})
	return nil
}
