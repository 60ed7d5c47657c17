package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/config"
	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
	"github.com/aliskhannn/gre-vocab-bot/internal/logger"
	"github.com/aliskhannn/gre-vocab-bot/internal/repository"
	"github.com/aliskhannn/gre-vocab-bot/internal/service"
)

type rootOptions struct {
	source string
	seed   int64
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "vocabctl",
		Short:        "Inspect the vocabulary corpus and its generators",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.source, "source", "", "corpus path or http(s) URL (defaults to vocab_source from config)")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "random seed, 0 seeds from the clock")

	root.AddCommand(
		newValidateCmd(opts),
		newQuizCmd(opts),
		newPairsCmd(opts),
	)
	return root
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the corpus and report groups and quarantined records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := opts.loadCorpus(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			total := 0
			for _, g := range repo.Groups() {
				fmt.Fprintf(out, "group %d: %d words\n", g.Group, len(g.Words))
				total += len(g.Words)
			}
			fmt.Fprintf(out, "total: %d words\n", total)

			quarantined := repo.Quarantined()
			fmt.Fprintf(out, "quarantined: %d\n", len(quarantined))
			for _, q := range quarantined {
				fmt.Fprintf(out, "  %s\n", q.Error())
			}
			return nil
		},
	}
}

func newQuizCmd(opts *rootOptions) *cobra.Command {
	var (
		groups   []int
		count    int
		quizType string
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Generate quiz questions as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := entities.ParseQuizType(quizType)
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				return service.ErrNoGroupsSelected
			}

			repo, err := opts.loadCorpus(cmd)
			if err != nil {
				return err
			}

			gen := service.NewQuestionGenerator(opts.rng())
			questions, err := gen.Generate(repo.GetAll(), service.QuizParams{
				Groups: groups,
				Count:  count,
				Type:   t,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), questions)
		},
	}
	cmd.Flags().IntSliceVar(&groups, "groups", nil, "comma separated group numbers")
	cmd.Flags().IntVar(&count, "count", 10, "number of questions")
	cmd.Flags().StringVar(&quizType, "type", string(entities.QuizTypeSynonym), "quiz type: synonym, definition or reverse")
	return cmd
}

func newPairsCmd(opts *rootOptions) *cobra.Command {
	var (
		groups []int
		grid   string
	)

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Generate a matching-game board as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			size, err := entities.ParseGridSize(grid)
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				return service.ErrNoGroupsSelected
			}

			repo, err := opts.loadCorpus(cmd)
			if err != nil {
				return err
			}

			gen := service.NewPairGenerator(opts.rng())
			pairs := gen.GeneratePairs(repo.GetByGroups(groups), repo.GetAll(), size.PairCount())
			if len(pairs) == 0 {
				return service.ErrNoPairsAvailable
			}
			return writeJSON(cmd.OutOrStdout(), gen.BuildTiles(pairs))
		},
	}
	cmd.Flags().IntSliceVar(&groups, "groups", nil, "comma separated group numbers")
	cmd.Flags().StringVar(&grid, "grid", entities.DefaultGridSize.String(), "board size, one of 4x3, 4x4, 4x5")
	return cmd
}

func (o *rootOptions) loadCorpus(cmd *cobra.Command) (*repository.WordRepository, error) {
	cfg, err := config.LoadOffline()
	if err != nil {
		return nil, err
	}

	lg, err := logger.New(cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = lg.Sync() }()

	source := o.source
	if source == "" {
		source = cfg.VocabSource
	}

	lg.Debug("loading corpus", zap.String("source", source))
	return repository.LoadWordRepository(cmd.Context(), source, repository.LoadOptions{
		Timeout:    cfg.Corpus.FetchTimeout,
		MaxRetries: cfg.Corpus.MaxRetries,
	}, lg)
}

func (o *rootOptions) rng() *rand.Rand {
	if o.seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(o.seed))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
