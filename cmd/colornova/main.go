// Package main provides the CLI entrypoint for colornova.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/colornova/internal/achievement"
	"github.com/verte-zerg/colornova/internal/config"
	"github.com/verte-zerg/colornova/internal/game"
	"github.com/verte-zerg/colornova/internal/generator"
	"github.com/verte-zerg/colornova/internal/logging"
	"github.com/verte-zerg/colornova/internal/model"
	"github.com/verte-zerg/colornova/internal/recorder"
	"github.com/verte-zerg/colornova/internal/store"
	"github.com/verte-zerg/colornova/internal/tui"
)

const (
	defaultMode = string(model.ModeEasy)
	defaultName = "Player"
)

var (
	logLevel string

	playMode  string
	playShape bool
	playName  string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "colornova",
		Short:         "Timed color matching game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error, fatal)")
	addPlayFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play a session",
		Args:  cobra.NoArgs,
		RunE:  runPlayCmd,
	}
	addPlayFlags(playCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newAchievementsCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newModesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&playMode, "mode", defaultMode, "game mode (easy, moderate, hard)")
	cmd.Flags().BoolVar(&playShape, "shape", false, "match shape as well as color")
	cmd.Flags().StringVar(&playName, "name", defaultName, "player name for a new profile")
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "mode", &playMode, fileCfg.Game.Mode)
	applyBoolConfig(cmd, "shape", &playShape, fileCfg.Game.ShapeMode)
	applyStringConfig(cmd, "name", &playName, fileCfg.Player.Name)

	modeID, err := model.ParseMode(playMode)
	if err != nil {
		return err
	}
	cfg := model.Config{
		PlayerName: strings.TrimSpace(playName),
		Mode:       modeID,
		ShapeMode:  playShape,
	}
	if cfg.PlayerName == "" {
		return fmt.Errorf("--name must not be empty")
	}

	log, logFile, err := logging.OpenFile(logLevel, config.DefaultLogPath())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			// Best-effort log close.
			_ = cerr
		}
	}()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	profile, err := st.EnsureProfile(ctx, cfg.PlayerName)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if nameRequested(cmd, fileCfg) && profile.Name != cfg.PlayerName {
		if err := st.RenameProfile(ctx, profile.ID, cfg.PlayerName); err != nil {
			return fmt.Errorf("failed to rename profile: %w", err)
		}
		profile.Name = cfg.PlayerName
	}
	log.WithFields(logrus.Fields{"user": profile.ID, "mode": cfg.Mode, "shape": cfg.ShapeMode}).Info("starting game")

	ctrl := game.NewController(generator.New())
	var program *tea.Program
	rec := recorder.New(st, achievement.NewTracker(st), profile, log,
		recorder.WithUnlockHandler(func(list []achievement.Achievement) {
			if program != nil {
				program.Send(tui.UnlockMsg{Achievements: list})
			}
		}))
	unsubscribe := rec.Attach(ctrl)
	defer unsubscribe()

	ui := tui.NewModel(ctrl, cfg, log)
	if err := ui.Start(); err != nil {
		if errors.Is(err, game.ErrModeUnavailable) {
			return fmt.Errorf("%s mode is coming soon, pick easy, moderate or hard", cfg.Mode)
		}
		return fmt.Errorf("failed to start game: %w", err)
	}
	program = tea.NewProgram(ui, tea.WithAltScreen())
	_, runErr := program.Run()
	rec.Wait()
	if runErr != nil {
		return fmt.Errorf("failed to run TUI: %w", runErr)
	}
	if res, ok := ctrl.Result(); ok {
		return printResult(cmd.OutOrStdout(), res)
	}
	return nil
}

func printResult(w io.Writer, res game.Result) error {
	_, err := fmt.Fprintf(w, "%s %s · score %d · best streak %d\n", res.Rank.Emoji, res.Rank.Label, res.Score, res.BestStreak)
	return err
}

func nameRequested(cmd *cobra.Command, fileCfg config.FileConfig) bool {
	return cmd.Flags().Changed("name") || fileCfg.Player.Name != nil
}

func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	if fileCfg.Log.Level != nil && !cmd.Flags().Changed("log-level") {
		logLevel = *fileCfg.Log.Level
	}
	if _, err := logging.ParseLevel(logLevel); err != nil {
		return config.FileConfig{}, err
	}
	return fileCfg, nil
}

func newStderrLogger() *logrus.Logger {
	log, err := logging.New(logLevel, os.Stderr)
	if err != nil {
		return logging.Discard()
	}
	return log
}

func openStore() (*store.Store, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
