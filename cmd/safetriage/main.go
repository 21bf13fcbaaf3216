package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/safetriage/safetriage/internal/config"
	"github.com/safetriage/safetriage/internal/domain/triage"
	"github.com/safetriage/safetriage/internal/platform/nlp"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "safetriage",
		Short: "Bilingual ESI triage decision engine",
	}

	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(lexiconCmd())
	rootCmd.AddCommand(thresholdsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.LogPretty || cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && lvl != zerolog.NoLevel {
		logger = logger.Level(lvl)
	}
	return logger
}

// evaluationEnvelope wraps one engine run for output. The evaluation ID
// belongs to the invocation, not the result: the same record always yields
// the same result.
type evaluationEnvelope struct {
	EvaluationID uuid.UUID            `json:"evaluation_id"`
	Patient      triage.PatientRecord `json:"patient"`
	Result       triage.TriageResult  `json:"result"`
}

func evaluateCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Classify one patient record (JSON from a file or stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := newLogger(cfg)

			processor, err := nlp.NewDefaultProcessor()
			if err != nil {
				return fmt.Errorf("compile lexicon: %w", err)
			}
			engine := triage.NewEngine(processor)
			engine.SetLogger(logger)

			var in io.Reader = cmd.InOrStdin()
			if inputPath != "" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			var record triage.PatientRecord
			dec := json.NewDecoder(in)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&record); err != nil {
				return fmt.Errorf("decode patient record: %w", err)
			}
			if err := validateRecord(&record); err != nil {
				return fmt.Errorf("invalid patient record: %w", err)
			}

			evaluationID := uuid.New()
			result := engine.Evaluate(record)

			logger.Info().
				Str("evaluation_id", evaluationID.String()).
				Int("level", int(result.Level)).
				Bool("alert", result.RequiresAlert()).
				Msg("evaluation complete")

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(evaluationEnvelope{
				EvaluationID: evaluationID,
				Patient:      record,
				Result:       result,
			})
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to a patient record JSON file (default: stdin)")
	return cmd
}

// validateRecord stands in for the upstream request-validation collaborator:
// the engine itself assumes a well-formed record and performs no validation.
func validateRecord(r *triage.PatientRecord) error {
	if r.Age < 0 {
		return fmt.Errorf("age must be non-negative, got %g", r.Age)
	}
	if r.Gender != triage.GenderMale && r.Gender != triage.GenderFemale {
		return fmt.Errorf("gender must be %q or %q, got %q", triage.GenderMale, triage.GenderFemale, r.Gender)
	}
	if gcs := r.Vitals.GCS; gcs != nil && (*gcs < 3 || *gcs > 15) {
		return fmt.Errorf("gcs must be within 3-15, got %d", *gcs)
	}
	if pain := r.Vitals.PainScore; pain != nil && (*pain < 0 || *pain > 10) {
		return fmt.Errorf("pain_score must be within 0-10, got %d", *pain)
	}
	return nil
}

func lexiconCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lexicon",
		Short: "Dump the concept lexicon and danger vocabulary for audit",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := struct {
				Concepts        nlp.Lexicon `json:"concepts"`
				DangerKeywords  []string    `json:"danger_keywords"`
				NegationTerms   []string    `json:"negation_terms"`
				NegationApplied bool        `json:"negation_applied"`
			}{
				Concepts:        nlp.DefaultLexicon(),
				DangerKeywords:  nlp.DefaultDangerVocabulary(),
				NegationTerms:   nlp.NegationTerms(),
				NegationApplied: false,
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func thresholdsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "thresholds",
		Short: "Dump the age-band vital-sign threshold tables for audit",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(triage.ThresholdTable())
		},
	}
}
