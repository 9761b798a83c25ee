package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"equihire/screening-engine/internal/config"
	"equihire/screening-engine/internal/logging"
	"equihire/screening-engine/internal/ner"
)

var (
	corpusPath string
	batchSize  int
	retainCap  int
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:   "corpusgen",
	Short: "Grow the synthetic NER training corpus",
	Long: `Loads the labeled corpus at --path, keeps its earliest --cap entries,
appends --batch freshly generated sentences and writes the file back.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	cfg := config.Load()

	rootCmd.Flags().StringVar(&corpusPath, "path", cfg.Corpus.Path, "corpus file to load and rewrite")
	rootCmd.Flags().IntVar(&batchSize, "batch", cfg.Corpus.BatchSize, "number of new examples to generate")
	rootCmd.Flags().IntVar(&retainCap, "cap", cfg.Corpus.RetainCap, "maximum number of existing examples to keep")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the current time)")

	logging.SetLogLevel(cfg.Log.Level)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logging.GetLogger()

	engine := ner.NewEngine(ner.DefaultTemplates(), ner.DefaultCatalog(), ner.NewRand(seed))

	builder := ner.NewBuilder(corpusPath, engine)
	builder.BatchSize = batchSize
	builder.RetainCap = retainCap

	log.WithFields(logrus.Fields{
		"path":  corpusPath,
		"batch": batchSize,
		"cap":   retainCap,
	}).Info("Generating corpus")

	result, err := builder.Run()
	if err != nil {
		return fmt.Errorf("failed to build corpus: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Done. Total entries: %d\n", result.Total)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
