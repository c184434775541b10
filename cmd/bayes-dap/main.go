package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dadaromeo/bayes-dap/internal/app"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	topics, _ := cmd.Flags().GetInt("topics")
	iterations, _ := cmd.Flags().GetInt("iterations")
	topWords, _ := cmd.Flags().GetInt("top-words")
	lang, _ := cmd.Flags().GetString("lang")
	stopwordFiles, _ := cmd.Flags().GetStringSlice("stopwords")
	extraStopwords, _ := cmd.Flags().GetStringSlice("extra-stopwords")
	stem, _ := cmd.Flags().GetBool("stem")
	plain, _ := cmd.Flags().GetBool("plain")
	selector, _ := cmd.Flags().GetString("selector")
	seed, _ := cmd.Flags().GetUint64("seed")
	sample, _ := cmd.Flags().GetInt("sample")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	if topics < 1 {
		return app.Config{}, fmt.Errorf("topic count must be at least 1, got %d", topics)
	}
	if topWords < 1 {
		return app.Config{}, fmt.Errorf("top-words must be at least 1, got %d", topWords)
	}

	// no arguments: read documents from stdin
	sources := args
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	return app.Config{
		Sources:        sources,
		Topics:         topics,
		Iterations:     iterations,
		TopWords:       topWords,
		Lang:           lang,
		StopwordFiles:  stopwordFiles,
		ExtraStopwords: extraStopwords,
		Stem:           stem,
		Plain:          plain,
		Selector:       selector,
		Seed:           seed,
		Sample:         sample,
		Quiet:          quiet,
		Debug:          debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "bayes-dap [sources...]",
	Short: "Exploratory topic discovery over short social-media text",
	Long: `Bayes-dap discovers topics in a collection of short text documents such
as tweets. It normalizes and tokenizes the text, removes noise tokens
(stopwords, mentions, links, emoji), builds a bag-of-words corpus, and
fits an LDA topic model, printing the top weighted words per topic.

Sources may be text files (one document per line), URLs or HTML files
(one document per paragraph), or standard input.

Examples:
  bayes-dap tweets.txt
  bayes-dap -k 8 --seed 42 tweets.txt
  cat tweets.txt | bayes-dap --lang french --stem`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		setupLogger(config.Debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		result, err := app.Run(ctx, config)
		if err != nil {
			return fmt.Errorf("bayes-dap failed: %w", err)
		}

		fmt.Print(result)

		return nil
	},
}

func init() {
	// model flags
	rootCmd.Flags().IntP("topics", "k", 5, "Number of topics to fit")
	rootCmd.Flags().Int("iterations", 0, "LDA inference iterations (0 uses the library default)")
	rootCmd.Flags().IntP("top-words", "n", 10, "Words to report per topic")
	rootCmd.Flags().Uint64("seed", 0, "Random seed for reproducible training and sampling")
	rootCmd.Flags().Int("sample", 0, "Report only this many randomly sampled topics (0 = all)")

	// pipeline flags
	rootCmd.Flags().String("lang", "french", "Stopword and casing language (french, english)")
	rootCmd.Flags().StringSlice("stopwords", nil, "Extra stopword file(s), one term per line")
	rootCmd.Flags().StringSlice("extra-stopwords", nil, "Extra stopword term(s)")
	rootCmd.Flags().Bool("stem", false, "Reduce surviving tokens to snowball stems")
	rootCmd.Flags().Bool("plain", false, "Use the prose tokenizer for long-form text")
	rootCmd.Flags().StringP("selector", "s", "", "CSS selector for HTML sources")

	// other flags
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress progress output and warnings")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
