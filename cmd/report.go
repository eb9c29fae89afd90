package cmd

import (
	"fmt"
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"cmdheat/internal/command"
	"cmdheat/internal/config"
	"cmdheat/internal/freq"
	"cmdheat/internal/history"
	"cmdheat/internal/logger"
	"cmdheat/internal/terminal"
	"cmdheat/internal/ui"
)

// displayMode selects the aggregation key.
type displayMode string

const (
	modeExact displayMode = "exact"
	modeFuzzy displayMode = "fuzzy"
	modeHeat  displayMode = "heat"
)

var (
	showFuzzy bool
	showExact bool
	showHeat  bool

	flavorFlag string
	fileFlag   string
	countFlag  int
	filterFlag string
	widthFlag  int
)

func init() {
	rootCmd.Flags().BoolVarP(&showFuzzy, "display-fuzzy", "z", false, "show fuzzy matched output (default)")
	rootCmd.Flags().BoolVarP(&showExact, "display-exact", "e", false, "show the most common exact commands")
	rootCmd.Flags().BoolVarP(&showHeat, "display-heat", "t", false, "show the most common command components")

	rootCmd.Flags().StringVar(&flavorFlag, "flavor", "", "history flavor: bash or zsh (default: detect from $SHELL)")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "history file to parse (default: flavor's standard location)")
	rootCmd.Flags().IntVarP(&countFlag, "count", "n", 0, "how many items to show")
	rootCmd.Flags().StringVar(&filterFlag, "filter", "", "only count commands fuzzy-matching this term")
	rootCmd.Flags().IntVar(&widthFlag, "width", 0, "bar canvas width in cells (0 = from config)")
}

func runReport(cmd *cobra.Command, args []string) error {
	log := logger.With("report")
	cfg := config.Get()

	mode, err := resolveMode(cfg)
	if err != nil {
		return err
	}

	flavor, err := resolveFlavor(cfg)
	if err != nil {
		return err
	}

	path := fileFlag
	if path == "" {
		path = cfg.History.File
	}
	if path == "" {
		path, err = history.DefaultPath(flavor)
		if err != nil {
			return err
		}
	}

	count := countFlag
	if count <= 0 {
		count = cfg.Display.Count
	}
	if count <= 0 {
		count = 10
	}

	log.Debug("reading history", "path", path, "flavor", flavor, "mode", mode)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	entries, err := history.Decode(f, flavor)
	if err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	log.Debug("decoded history", "entries", len(entries))

	agg := aggregate(entries, mode, cfg.Fuzzy.Verbs, filterFlag)

	barWidth := widthFlag
	if barWidth <= 0 {
		barWidth = cfg.Display.BarWidth
	}
	if barWidth <= 0 {
		barWidth = 8
	}

	rows := freq.Rank(freq.TopN(agg.Records(), count), barWidth)

	fmt.Print(ui.RenderTable(modeTitle(mode), rows, barWidth, terminal.Width()))
	return nil
}

// aggregate runs one linear pass over the entries, keying each by the
// selected display mode. Entries not fuzzy-matching a nonempty filter term
// are skipped before they reach the aggregator.
func aggregate(entries []history.Entry, mode displayMode, verbs []string, filter string) *freq.Aggregator {
	signer := command.NewSigner(verbs)
	agg := freq.NewAggregator()

	for _, entry := range entries {
		if filter != "" && !fuzzy.MatchNormalizedFold(filter, entry.Command) {
			continue
		}

		tokens := command.Tokenize(entry.Command)
		if len(tokens) == 0 {
			continue
		}

		switch mode {
		case modeExact:
			key := command.Exact(entry.Command)
			agg.Add(key, key)
		case modeHeat:
			for _, tok := range tokens {
				agg.Add(tok, tok)
			}
		default:
			key := signer.Fuzzy(tokens)
			agg.Add(key, key)
		}
	}

	return agg
}

// resolveMode picks the display mode from the shorthand flags, falling back
// to the configured default.
func resolveMode(cfg *config.Config) (displayMode, error) {
	selected := 0
	for _, b := range []bool{showFuzzy, showExact, showHeat} {
		if b {
			selected++
		}
	}
	if selected > 1 {
		return "", fmt.Errorf("multiple display modes selected, please select one or none")
	}

	switch {
	case showExact:
		return modeExact, nil
	case showHeat:
		return modeHeat, nil
	case showFuzzy:
		return modeFuzzy, nil
	}

	switch cfg.Display.Mode {
	case "", string(modeFuzzy):
		return modeFuzzy, nil
	case string(modeExact):
		return modeExact, nil
	case string(modeHeat):
		return modeHeat, nil
	default:
		return "", fmt.Errorf("unknown display mode %q in config", cfg.Display.Mode)
	}
}

// resolveFlavor picks the history flavor: flag, then config, then $SHELL
// detection, then zsh.
func resolveFlavor(cfg *config.Config) (history.Flavor, error) {
	name := flavorFlag
	if name == "" {
		name = cfg.History.Flavor
	}

	switch name {
	case string(history.FlavorBash):
		return history.FlavorBash, nil
	case string(history.FlavorZsh):
		return history.FlavorZsh, nil
	case "":
	default:
		return "", fmt.Errorf("unknown history flavor %q", name)
	}

	if flavor, ok := history.DetectFlavor(); ok {
		return flavor, nil
	}
	return history.FlavorZsh, nil
}

func modeTitle(mode displayMode) string {
	switch mode {
	case modeExact:
		return "Exact Commands"
	case modeHeat:
		return "Heatmap Commands"
	default:
		return "Fuzzy Commands"
	}
}
