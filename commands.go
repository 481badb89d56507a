package main

import (
	"fmt"
	"time"

	"github.com/automoto/coinhop/assets"
	"github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/core"
	"github.com/automoto/coinhop/sim"
	"github.com/spf13/cobra"
)

var (
	flagSeconds   float64
	flagFPS       int
	flagLeft      bool
	flagRight     bool
	flagJumpEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless with scripted input",
	Long: `Run the level without a window, holding the given directions and
pressing jump on a fixed frame interval, then log where everything ended up.

Examples:
  coinhop sim --seconds 5 --right
  coinhop sim --seconds 10 --right --jump-every 40 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		out, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the embedded levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := assets.LevelNames()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	simCmd.Flags().Float64Var(&flagSeconds, "seconds", 5, "Simulated wall-clock time")
	simCmd.Flags().IntVar(&flagFPS, "fps", 60, "Host frame rate")
	simCmd.Flags().BoolVar(&flagLeft, "left", false, "Hold left")
	simCmd.Flags().BoolVar(&flagRight, "right", false, "Hold right")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Press jump every N frames (0 = never)")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, cfg, layout, err := setup()
	if err != nil {
		return err
	}

	world, err := core.NewWorld(cfg, layout)
	if err != nil {
		return err
	}

	sum, err := sim.Run(world, sim.Script{
		Duration:  time.Duration(flagSeconds * float64(time.Second)),
		FPS:       flagFPS,
		Left:      flagLeft,
		Right:     flagRight,
		JumpEvery: flagJumpEvery,
	}, logger)
	if err != nil {
		return err
	}

	logger.Info("simulation finished",
		"level", layout.Name,
		"frames", sum.Frames,
		"steps", sum.Steps,
		"score", sum.Score,
		"x", fmt.Sprintf("%.2f", sum.PlayerX),
		"y", fmt.Sprintf("%.2f", sum.PlayerY),
		"grounded", sum.Grounded,
		"coins", sum.CoinsTaken,
		"blocks", sum.BlocksHit,
		"enemies_alive", sum.EnemiesAlive,
	)
	for id, n := range sum.Cues {
		logger.Debug("cue", "sound", id, "count", n)
	}
	return nil
}
