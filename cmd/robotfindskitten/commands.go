package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kingrea/robotfindskitten/internal/game"
	"github.com/kingrea/robotfindskitten/internal/journal"
	"github.com/kingrea/robotfindskitten/internal/manual"
	"github.com/kingrea/robotfindskitten/internal/records"
	"github.com/kingrea/robotfindskitten/internal/tui"
)

var (
	journalLines int
	listPacks    bool
	recentLimit  int
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0")).Width(16)
	foundStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#718096"))
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize recorded sessions",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show the most recent journal entries",
	Args:  cobra.NoArgs,
	RunE:  runJournal,
}

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the things that are not kitten",
	Args:  cobra.NoArgs,
	RunE:  runItems,
}

var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Print the player's manual",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := manual.Render(80, manual.StyleAuto)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "robotfindskitten v%s\n", tui.Version)
	},
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runStats(cmd *cobra.Command, args []string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	out := cmd.OutOrStdout()
	if !env.cfg.RecordsEnabled() {
		fmt.Fprintln(out, "Session records are disabled in config.yaml.")
		return nil
	}
	store, err := records.Open(env.cfg.RecordsPath())
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := commandContext(cmd)
	sum, err := store.Summary(ctx)
	if err != nil {
		return err
	}
	recent, err := store.Recent(ctx, recentLimit)
	if err != nil {
		return err
	}
	printSummary(out, sum)
	if len(recent) > 0 {
		fmt.Fprintln(out)
		printRecent(out, recent)
	}
	return nil
}

func printSummary(out io.Writer, sum records.Summary) {
	fmt.Fprintln(out, headingStyle.Render("robotfindskitten records"))
	if sum.Sessions == 0 {
		fmt.Fprintln(out, dimStyle.Render("No sessions yet. Go find kitten."))
		return
	}
	row := func(label, value string) {
		fmt.Fprintln(out, labelStyle.Render(label)+value)
	}
	row("Sessions", fmt.Sprint(sum.Sessions))
	row("Kittens found", fmt.Sprint(sum.Finds))
	row("Gave up", fmt.Sprint(sum.Quits))
	row("Average moves", fmt.Sprintf("%.1f", sum.AverageMoves))
	if sum.Finds > 0 {
		row("Fewest moves", fmt.Sprint(sum.FewestMoves))
		row("Fastest find", sum.FastestFind.Round(time.Millisecond).String())
	}
}

func printRecent(out io.Writer, recent []records.Record) {
	fmt.Fprintln(out, headingStyle.Render("Recent sessions"))
	for _, rec := range recent {
		fmt.Fprintf(out, "%s  %s  %4d moves  %3d items  %s\n",
			rec.StartedAt.Local().Format("2006-01-02 15:04"),
			resultCell(rec.Result),
			rec.Moves,
			rec.Items,
			rec.Duration().Round(time.Second),
		)
	}
}

// resultCell pads before styling; escape codes would otherwise count
// toward the column width.
func resultCell(result game.Result) string {
	cell := fmt.Sprintf("%-5s", result)
	if result == game.ResultFound {
		return foundStyle.Render(cell)
	}
	return dimStyle.Render(cell)
}

func runJournal(cmd *cobra.Command, args []string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	j, err := journal.New(env.cfg.JournalPath())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	lines, total := j.Tail(journalLines)
	if total == 0 {
		fmt.Fprintln(out, dimStyle.Render("The journal is empty."))
		return nil
	}
	if total > len(lines) {
		fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("(last %d of %d entries)", len(lines), total)))
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

func runItems(cmd *cobra.Command, args []string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	catalog, err := env.loadCatalog(commandContext(cmd))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if listPacks {
		packs := catalog.Packs()
		if len(packs) == 0 {
			fmt.Fprintf(out, "No packs in %s\n", env.cfg.ItemsDir())
			return nil
		}
		for _, pf := range packs {
			fmt.Fprintf(out, "%s  %d items  %s\n", headingStyle.Render(pf.Pack.DisplayName()), len(pf.Pack.Items), dimStyle.Render(pf.Path))
		}
		return nil
	}
	for _, desc := range catalog.Descriptions() {
		fmt.Fprintln(out, desc)
	}
	return nil
}
