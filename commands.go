// apps/go-cli/commands.go
//
// Command tree for the wordle binary.
//   - wordle / wordle play       → interactive daily game
//   - wordle check TARGET GUESS  → score one guess and print it
//   - wordle words               → dictionary stats and today's seed
//
// Settings resolve as defaults < YAML file < WORDLE_* env < flags.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/render"
	"github.com/robalobadob/wordle/apps/go-cli/internal/shell"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// options mirrors the persistent flags.
type options struct {
	configPath string
	wordLength int
	maxTries   int
	wordsFile  string
	scoring    string
	salt       string
	seed       uint64
	noColor    bool
	pause      bool
	logLevel   string
}

// now is the clock used for the day seed.
var now = time.Now

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Guess the hidden word of the day",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file")
	f.IntVar(&opts.wordLength, "word-length", config.DefaultWordLength, "letters per word")
	f.IntVar(&opts.maxTries, "max-tries", config.DefaultMaxTries, "guesses allowed")
	f.StringVar(&opts.wordsFile, "words", "", "dictionary file, one word per line (default: embedded list)")
	f.StringVar(&opts.scoring, "scoring", game.ScoringContains, "scoring rule: contains|standard")
	f.StringVar(&opts.salt, "salt", "", "salt mixed into the daily word choice")
	f.Uint64Var(&opts.seed, "seed", 0, "day seed override (default: days since the Unix epoch)")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colours")
	f.BoolVar(&opts.pause, "pause", false, "wait for <Enter> when the game ends")
	f.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "zerolog level")

	root.AddCommand(&cobra.Command{
		Use:   "play",
		Short: "Play the daily game (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "check TARGET GUESS",
		Short: "Score a single guess against a target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args[0], args[1])
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "words",
		Short: "Show dictionary stats and today's seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWords(cmd, opts)
		},
	})
	return root
}

// loadConfig resolves config and applies explicitly set flags last.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	f := cmd.Flags()
	if f.Changed("word-length") {
		cfg.WordLength = opts.wordLength
	}
	if f.Changed("max-tries") {
		cfg.MaxTries = opts.maxTries
	}
	if f.Changed("words") {
		cfg.WordsFile = opts.wordsFile
	}
	if f.Changed("scoring") {
		cfg.Scoring = opts.scoring
	}
	if f.Changed("salt") {
		cfg.Salt = opts.salt
	}
	if f.Changed("seed") {
		s := opts.seed
		cfg.Seed = &s
	}
	if f.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	if f.Changed("pause") {
		cfg.Pause = opts.pause
	}
	if f.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	setLogLevel(cfg.LogLevel)
	return cfg, nil
}

// seedFor returns the configured seed or today's.
func seedFor(cfg config.Config, t time.Time) uint64 {
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	return daily.Seed(t)
}

// printerFor colours only a real terminal stdout.
func printerFor(w io.Writer, cfg config.Config) *render.Printer {
	if w == os.Stdout {
		return render.Stdout(cfg.NoColor)
	}
	return render.NewPrinter(w, false)
}

func runPlay(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	list, err := words.Load(cfg.WordsFile, cfg.WordLength)
	if err != nil {
		return err
	}

	today := now()
	seed := seedFor(cfg, today)
	target, err := daily.Pick(list, seed, cfg.Salt)
	if err != nil {
		return err
	}
	g, err := game.New(target, cfg.WordLength, cfg.MaxTries, game.WithScorer(cfg.Scorer()))
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	log.Info().Str("date", daily.DateKey(today)).Uint64("seed", seed).Int("words", list.Len()).
		Str("scoring", cfg.Scoring).Msg("game started")

	sh := shell.New(g, list, cmd.InOrStdin(), printerFor(cmd.OutOrStdout(), cfg))
	status, err := sh.Run(cmd.Context())
	if err != nil {
		return err
	}
	log.Info().Str("status", status.String()).Int("attempts", g.Attempts()).Msg("game over")

	if cfg.Pause {
		return sh.Pause(cmd.Context())
	}
	return nil
}

func runCheck(cmd *cobra.Command, opts *options, target, guess string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	target, guess = words.Sanitize(target), words.Sanitize(guess)

	g, err := game.New(target, len(target), 1, game.WithScorer(cfg.Scorer()))
	if err != nil {
		return err
	}
	res, err := g.SubmitGuess(guess)
	if err != nil {
		return err
	}

	p := printerFor(cmd.OutOrStdout(), cfg)
	if err := p.Row(render.RowOf(res.Letters())); err != nil {
		return err
	}
	kinds := make([]string, 0, len(res.Letters()))
	for _, l := range res.Letters() {
		kinds = append(kinds, fmt.Sprintf("%c:%s", l.Char, l.Kind))
	}
	p.Printf("%s\n", strings.Join(kinds, " "))
	if res.Status() == game.StatusWon {
		p.Printf("%s\n", game.StatusWon)
	}
	return nil
}

func runWords(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	list, err := words.Load(cfg.WordsFile, cfg.WordLength)
	if err != nil {
		return err
	}
	today := now()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "words:  %d\n", list.Len())
	fmt.Fprintf(out, "length: %d\n", list.WordLength())
	fmt.Fprintf(out, "date:   %s\n", daily.DateKey(today))
	fmt.Fprintf(out, "seed:   %d\n", seedFor(cfg, today))
	return nil
}
