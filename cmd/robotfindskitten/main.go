// cmd/robotfindskitten/main.go
//
// This is the entry point for robotfindskitten.
//
// Flow:
// 1. Resolve the data directory and load config.yaml
// 2. Build the item catalog from the built-in list plus any packs
// 3. Launch the TUI, then record how the session ended

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/robotfindskitten/internal/config"
	"github.com/kingrea/robotfindskitten/internal/game"
	"github.com/kingrea/robotfindskitten/internal/items"
	"github.com/kingrea/robotfindskitten/internal/journal"
	"github.com/kingrea/robotfindskitten/internal/logging"
	"github.com/kingrea/robotfindskitten/internal/manual"
	"github.com/kingrea/robotfindskitten/internal/records"
	"github.com/kingrea/robotfindskitten/internal/tui"
)

var (
	homeDir  string
	seed     int64
	noTitle  bool
	verbose  bool
	remember bool
)

var rootCmd = &cobra.Command{
	Use:   "robotfindskitten [N]",
	Short: "robotfindskitten: a Zen simulation",
	Long: `In this game, you are robot (#). Your job is to find kitten. This task is
complicated by the existence of various things which are not kitten.
Robot must touch items to determine if they are kitten or not.

N is the number of things that are not kitten on the screen.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "data directory (default $RFK_HOME or ~/.robotfindskitten)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write debug-level diagnostics to the log")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.Flags().BoolVar(&noTitle, "no-title", false, "skip the title screen")
	rootCmd.Flags().BoolVar(&remember, "remember", false, "save N as the default number of items")

	journalCmd.Flags().IntVarP(&journalLines, "lines", "n", 20, "number of entries to show")
	itemsCmd.Flags().BoolVar(&listPacks, "packs", false, "list item packs instead of descriptions")
	statsCmd.Flags().IntVar(&recentLimit, "recent", 10, "number of recent sessions to show")

	rootCmd.AddCommand(statsCmd, journalCmd, itemsCmd, manualCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// environment bundles what every command needs from the data directory.
type environment struct {
	cfg    *config.Config
	logger *logging.Logger
}

func openEnvironment() (*environment, error) {
	home := homeDir
	if home == "" {
		var err error
		if home, err = config.DefaultHomeDir(); err != nil {
			return nil, err
		}
	}
	if err := config.InitHomeDir(home); err != nil {
		return nil, fmt.Errorf("initialize %s: %w", home, err)
	}
	cfg, err := config.NewConfig(home)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogsDir(), verbose)
	if err != nil {
		return nil, err
	}
	return &environment{cfg: cfg, logger: logger}, nil
}

func (e *environment) Close() {
	_ = e.logger.Close()
}

func (e *environment) loadCatalog(ctx context.Context) (*items.Catalog, error) {
	catalog, err := items.Load(ctx, e.cfg.ItemsDir(), e.cfg.BuiltinItems(), e.cfg.PackFilter())
	if err != nil {
		return nil, err
	}
	e.logger.Zap().Debug("catalog loaded",
		zap.Int("descriptions", catalog.Len()),
		zap.Int("packs", len(catalog.Packs())),
	)
	return catalog, nil
}

func runGame(cmd *cobra.Command, args []string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	catalog, err := env.loadCatalog(ctx)
	if err != nil {
		return err
	}

	n, err := resolveItemCount(env.cfg, env.logger, args, catalog.Len(), remember)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Items:       n,
		Seed:        resolveSeed(cmd, env.cfg),
		ShowTitle:   env.cfg.ShowTitle() && !noTitle,
		Color:       env.cfg.ColorEnabled(),
		RobotColor:  env.cfg.RobotColor(),
		ManualStyle: manualStyle(env.cfg.ColorEnabled()),
	}
	appOpts := []tui.AppOption{tui.WithLogger(env.logger)}

	if j, err := journal.New(env.cfg.JournalPath()); err != nil {
		env.logger.Warnf("journal unavailable: %v", err)
	} else {
		appOpts = append(appOpts, tui.WithJournal(j))
	}
	if env.cfg.RecordsEnabled() {
		store, err := records.Open(env.cfg.RecordsPath())
		if err != nil {
			env.logger.Warnf("session records unavailable: %v", err)
		} else {
			defer store.Close()
			appOpts = append(appOpts, tui.WithRecorder(store))
		}
	}

	env.logger.Printf("starting: %d items, seed %d", opts.Items, opts.Seed)
	app := tui.NewApp(opts, catalog, appOpts...)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	if err := app.Err(); err != nil {
		return err
	}
	if sess := app.Session(); sess != nil && sess.Result == game.ResultFound {
		fmt.Fprintln(cmd.OutOrStdout(), game.FoundMessage)
	}
	return nil
}

// resolveItemCount picks N from the argument or the configured default. The
// default is clamped to the catalog; an explicit N must fit it. With
// remember, N becomes the new default when config.yaml can hold it.
func resolveItemCount(cfg *config.Config, logger *logging.Logger, args []string, available int, remember bool) (int, error) {
	if len(args) == 0 {
		return min(cfg.DefaultItems(), available), nil
	}
	n, err := parseItemCount(args[0], available)
	if err != nil {
		return 0, err
	}
	if !remember {
		return n, nil
	}
	if n > config.MaxDefaultItems {
		logger.Warnf("not remembering %d items: the saved default is capped at %d", n, config.MaxDefaultItems)
		return n, nil
	}
	if err := cfg.SetDefaultItems(n); err != nil {
		return 0, err
	}
	return n, nil
}

// parseItemCount validates the N argument against the catalog size.
func parseItemCount(arg string, available int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 || n > available {
		return 0, fmt.Errorf("invalid number of items %q: choose 0 to %d", arg, available)
	}
	return n, nil
}

func resolveSeed(cmd *cobra.Command, cfg *config.Config) int64 {
	s := cfg.Seed()
	if cmd.Flags().Changed("seed") {
		s = seed
	}
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return s
}

// manualStyle picks the glamour style before the alt screen takes over
// the terminal.
func manualStyle(color bool) string {
	if !color {
		return manual.StyleNoTTY
	}
	if lipgloss.HasDarkBackground() {
		return manual.StyleDark
	}
	return manual.StyleLight
}
