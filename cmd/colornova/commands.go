package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/colornova/internal/achievement"
	"github.com/verte-zerg/colornova/internal/config"
	"github.com/verte-zerg/colornova/internal/leaderboardui"
	"github.com/verte-zerg/colornova/internal/model"
	"github.com/verte-zerg/colornova/internal/profileui"
	"github.com/verte-zerg/colornova/internal/stats"
)

const defaultTrendWindow = 5

var (
	leaderboardMode   string
	leaderboardShape  string
	leaderboardWindow int
	leaderboardPlain  bool

	statsMode   string
	statsSince  string
	statsLast   int
	statsWindow int

	profileRename bool
)

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the leaderboard",
		Args:  cobra.NoArgs,
		RunE:  runLeaderboardCmd,
	}
	cmd.Flags().StringVar(&leaderboardMode, "mode", "", "mode filter")
	cmd.Flags().StringVar(&leaderboardShape, "shape", "all", "variant filter (all, on, off)")
	cmd.Flags().IntVar(&leaderboardWindow, "window", stats.DefaultWindow, "number of top entries to aggregate")
	cmd.Flags().BoolVar(&leaderboardPlain, "plain", false, "print a plain table instead of the TUI")
	return cmd
}

func runLeaderboardCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "window", &leaderboardWindow, fileCfg.Leaderboard.Window)
	if leaderboardWindow <= 0 {
		return fmt.Errorf("--window must be > 0")
	}
	filter, err := parseLeaderboardFilter(leaderboardMode, leaderboardShape)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if !leaderboardPlain {
		ui := leaderboardui.NewModel(st, filter, leaderboardWindow)
		program := tea.NewProgram(ui, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run leaderboard TUI: %w", err)
		}
		return nil
	}

	entries, err := st.ListTopScores(context.Background(), leaderboardWindow)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}
	newStderrLogger().WithField("entries", len(entries)).Debug("aggregating leaderboard")
	return stats.RenderLeaderboard(cmd.OutOrStdout(), stats.Aggregate(entries, filter))
}

func parseLeaderboardFilter(mode, shape string) (model.LeaderboardFilter, error) {
	var filter model.LeaderboardFilter
	if strings.TrimSpace(mode) != "" {
		id, err := model.ParseMode(mode)
		if err != nil {
			return filter, err
		}
		filter.Mode = &id
	}
	switch strings.ToLower(strings.TrimSpace(shape)) {
	case "", "all":
	case "on", "true", "shapes":
		v := true
		filter.ShapeMode = &v
	case "off", "false", "colors":
		v := false
		filter.ShapeMode = &v
	default:
		return filter, fmt.Errorf("invalid --shape value %q (use all, on or off)", shape)
	}
	return filter, nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show your score history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsMode, "mode", "", "mode filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N games")
	cmd.Flags().IntVar(&statsWindow, "trend-window", defaultTrendWindow, "moving average window for the trend line")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	cfg := model.StatsConfig{Last: statsLast}
	if statsMode != "" {
		id, err := model.ParseMode(statsMode)
		if err != nil {
			return err
		}
		cfg.Mode = &id
	}
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		cfg.Since = &parsed
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	profile, err := st.EnsureProfile(ctx, profileName(fileCfg))
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	entries, err := st.ListScoresForUser(ctx, profile.ID, cfg)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}
	return stats.RenderSummary(cmd.OutOrStdout(), entries, statsWindow)
}

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements",
		Args:  cobra.NoArgs,
		RunE:  runAchievementsCmd,
	}
}

func runAchievementsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	profile, err := st.EnsureProfile(ctx, profileName(fileCfg))
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	list, err := achievement.NewTracker(st).List(ctx, profile.ID)
	if err != nil {
		return err
	}
	return printAchievements(cmd.OutOrStdout(), list)
}

func printAchievements(w io.Writer, list []achievement.Achievement) error {
	for _, a := range list {
		mark := " "
		when := ""
		if a.Unlocked {
			mark = "✓"
			when = "  " + a.UnlockedAt.Local().Format("2006-01-02")
		}
		if _, err := fmt.Fprintf(w, "[%s] %s %s: %s%s\n", mark, a.Emoji, a.Title, a.Description, when); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	p := achievement.ProgressOf(list)
	if _, err := fmt.Fprintf(w, "Unlocked %d/%d (%.0f%%)\n", p.Unlocked, p.Total, p.Percent()*100); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or rename your profile",
		Args:  cobra.NoArgs,
		RunE:  runProfileCmd,
	}
	cmd.Flags().BoolVar(&profileRename, "rename", false, "open the rename form")
	return cmd
}

func runProfileCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	profile, err := st.EnsureProfile(ctx, profileName(fileCfg))
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if profileRename {
		form := profileui.NewModel(st, profile)
		if _, err := tea.NewProgram(form).Run(); err != nil {
			return fmt.Errorf("failed to run profile TUI: %w", err)
		}
		if !form.Saved() {
			return nil
		}
		newStderrLogger().WithField("user", profile.ID).Info("profile renamed")
		profile.Name = form.Name()
	}
	return printProfile(cmd.OutOrStdout(), profile)
}

func printProfile(w io.Writer, p model.Profile) error {
	lines := []string{
		fmt.Sprintf("Name:          %s", p.Name),
		fmt.Sprintf("ID:            %s", p.ID),
		fmt.Sprintf("Created:       %s", p.CreatedAt.Local().Format("2006-01-02")),
		fmt.Sprintf("Games played:  %d", p.GamesPlayed),
		fmt.Sprintf("Highest score: %d", p.HighestScore),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List game modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printModes(cmd.OutOrStdout())
		},
	}
}

func printModes(w io.Writer) error {
	for _, m := range model.Modes() {
		line := fmt.Sprintf("%-9s %-11s round %2ds  session %2ds  %s", m.ID, m.Subtitle, m.RoundSeconds, m.SessionSeconds, m.Tip)
		if !m.Playable {
			line = fmt.Sprintf("%-9s %s", m.ID, m.Tip)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.Template), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func profileName(fileCfg config.FileConfig) string {
	if fileCfg.Player.Name != nil && strings.TrimSpace(*fileCfg.Player.Name) != "" {
		return strings.TrimSpace(*fileCfg.Player.Name)
	}
	return defaultName
}
