package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/coinhop/assets"
	"github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/fonts"
	"github.com/automoto/coinhop/scenes"
	"github.com/automoto/coinhop/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const defaultLevel = "level1"

var (
	// Global flags
	flagConfig   string
	flagLevel    string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "coinhop",
	Short: "coinhop - a tiny single-screen platformer",
	Long: `coinhop opens a window with one level: bump the ? blocks, collect the
coins and stomp the patrolling enemy.

Controls:
  Arrows/A/D     - Move
  Space/W/Up     - Jump (twice in the air)
  Enter          - Start / pause
  R              - Reset the level
  F3             - Collider overlay

Examples:
  coinhop
  coinhop --level ./mylevel.tmx
  coinhop sim --seconds 10 --right --jump-every 40
  coinhop config > configs/coinhop.yaml`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", defaultLevel, `Embedded level name, "default" for the built-in layout, or a path to a .tmx file`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(levelsCmd)
}

func newLogger() (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "coinhop",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// setup resolves the logger, configuration and level shared by every command.
func setup() (*log.Logger, config.Config, *leveldata.Layout, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, cfg, nil, err
	}
	logger.Debug("config loaded", "source", source)

	layout, err := loadLevel(flagLevel)
	if err != nil {
		return nil, cfg, nil, err
	}
	return logger, cfg, layout, nil
}

func loadLevel(name string) (*leveldata.Layout, error) {
	switch {
	case name == "default":
		return leveldata.Default(), nil
	case strings.HasSuffix(name, ".tmx"):
		dir, file := filepath.Split(name)
		if dir == "" {
			dir = "."
		}
		return leveldata.LoadLayout(os.DirFS(dir), file)
	default:
		return assets.LoadLevel(name)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	logger, cfg, layout, err := setup()
	if err != nil {
		return err
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	scene, err := scenes.NewPlayScene(cfg, layout, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Display.WindowWidth, cfg.Display.WindowHeight)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("bye", "score", scene.Driver().World().Score())
	return nil
}
