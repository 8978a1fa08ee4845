package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-steering/pkg/render"
	"github.com/lao-tseu-is-alive/go-steering/pkg/simulation"
	"github.com/spf13/cobra"
	golog "github.com/tochemey/goakt/v3/log"
)

type options struct {
	configFile string
	schemaFile string
	logLevel   string
}

func (o *options) logger(w io.Writer) (golog.Logger, error) {
	switch strings.ToLower(o.logLevel) {
	case "debug":
		return golog.New(golog.DebugLevel, w), nil
	case "info":
		return golog.New(golog.InfoLevel, w), nil
	case "error":
		return golog.New(golog.ErrorLevel, w), nil
	case "off", "none":
		return golog.DiscardLogger, nil
	default:
		return nil, fmt.Errorf("unknown log level %q", o.logLevel)
	}
}

// loadConfig reads the scenario file, or falls back to the built-in demo when none is given.
func (o *options) loadConfig() (*simulation.Config, error) {
	if o.configFile == "" {
		return simulation.DefaultConfig(), nil
	}
	return simulation.LoadConfig(o.configFile, o.schemaFile)
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "steering",
		Short:         "Seek, arrive and evade steering agents avoiding walls",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "scenario file (.json, .yaml)")
	root.PersistentFlags().StringVar(&opts.schemaFile, "schema", "", "JSON schema overriding the embedded one")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug, info, error or off")

	root.AddCommand(newRunCmd(opts), newTraceCmd(opts), newValidateCmd(opts))
	return root
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := opts.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			game, err := render.NewGame(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := game.Close(); err != nil {
					logger.Errorf("stopping swarm: %v", err)
				}
			}()

			ebiten.SetWindowSize(game.WindowSize())
			ebiten.SetWindowTitle("Steering: seek, arrive, evade")
			ebiten.SetTPS(int(1 / cfg.Steering.FixedDeltaTime))
			return ebiten.RunGame(game)
		},
	}
}

func newTraceCmd(opts *options) *cobra.Command {
	var (
		ticks int
		out   string
	)
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Run headless and write every agent's state per tick as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ticks <= 0 {
				return fmt.Errorf("--ticks must be positive, got %d", ticks)
			}
			logger, err := opts.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return runTrace(cmd.Context(), cfg, logger, ticks, out, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 500, "number of fixed steps to simulate")
	cmd.Flags().StringVarP(&out, "out", "o", "", "CSV output file (default stdout)")
	return cmd
}

func runTrace(ctx context.Context, cfg *simulation.Config, logger golog.Logger, ticks int, out string, stdout io.Writer) error {
	swarm, err := simulation.NewSwarm(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := swarm.Stop(ctx); err != nil {
			logger.Errorf("stopping swarm: %v", err)
		}
	}()

	rec := simulation.NewRecorder()
	if err := swarm.Run(ctx, ticks, rec); err != nil {
		return err
	}

	w := stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create trace file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := rec.WriteCSV(w); err != nil {
		return fmt.Errorf("failed to write trace: %w", err)
	}
	logger.Infof("Wrote %d rows over %d ticks", len(rec.Rows()), ticks)
	return nil
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a scenario file against the schema and steering rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d agents, %d walls, %.0fx%.0f world\n",
				len(cfg.Agents), len(cfg.BuildWorld().Walls()), cfg.WorldWidth, cfg.WorldHeight)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
