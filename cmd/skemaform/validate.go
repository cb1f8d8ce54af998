package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/reoring/skemaform"
	"github.com/reoring/skemaform/engine/jsonschema"
	"github.com/reoring/skemaform/i18n"
	"github.com/reoring/skemaform/internal/config"
	"github.com/reoring/skemaform/internal/logging"
	"github.com/reoring/skemaform/source"
)

// errDataInvalid signals that at least one document failed validation. The
// report has already been printed, so main only sets the exit code.
var errDataInvalid = errors.New("validation failed")

type validateFlags struct {
	schema string
	key    string
	format string
	indent bool
}

// report is the printed result for one data document.
type report struct {
	File   string `json:"file"`
	Valid  bool   `json:"valid"`
	Errors any    `json:"errors"`
}

func newValidateCmd(cfg *config.Config) *cobra.Command {
	var f validateFlags
	cmd := &cobra.Command{
		Use:   "validate --schema FILE [--key PATH] DATA...",
		Short: "Validate data documents against a JSON Schema",
		Long: `Validate each DATA document (JSON or YAML, "-" for stdin) against the schema
and print one JSON report per document. Files are decoded by extension;
stdin is decoded as --format. With --key only the errors on the spine
leading to that field are printed; the whole document is validated either
way.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, cleanup, err := logging.New(cfg.Logging())
			if err != nil {
				return fmt.Errorf("setting up logging: %w", err)
			}
			defer cleanup()
			return runValidate(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), log, cfg, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.schema, "schema", "s", "", "JSON Schema file (JSON or YAML)")
	cmd.Flags().StringVarP(&f.key, "key", "k", "", "focus path, e.g. a.b or objects[1]")
	cmd.Flags().StringVar(&f.format, "format", "json", "format of stdin data: json, yaml")
	cmd.Flags().BoolVar(&f.indent, "indent", false, "indent the JSON output")
	cmd.Flags().IntVarP(&cfg.Concurrency, "concurrency", "c", cfg.Concurrency, "documents validated in parallel")
	cmd.Flags().StringVar(&cfg.Lang, "lang", cfg.Lang, "message language: en, ja")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func runValidate(ctx context.Context, stdin io.Reader, out io.Writer, log *slog.Logger, cfg *config.Config, f validateFlags, files []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !slices.Contains(i18n.Languages(), cfg.Lang) {
		return fmt.Errorf("unsupported language %q (want %s)", cfg.Lang, strings.Join(i18n.Languages(), ", "))
	}
	stdinFormat, err := source.ParseFormat(f.format)
	if err != nil {
		return fmt.Errorf("--format: %w", err)
	}
	schema, err := source.ReadFile(f.schema)
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}

	eng := jsonschema.New(
		jsonschema.WithCacheSize(cfg.SchemaCacheSize),
		jsonschema.WithTranslator(i18n.New(cfg.Lang)),
	)
	// Fail on a broken schema before fanning out.
	if _, err := eng.Compile(schema); err != nil {
		return err
	}
	adapter := skemaform.New(eng, skemaform.WithLogger(log))
	opts := skemaform.Options{Key: f.key}

	reports := make([]report, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Concurrency, 1))
	for i, file := range files {
		g.Go(func() error {
			data, err := readData(stdin, file, stdinFormat)
			if err != nil {
				return fmt.Errorf("reading data: %w", err)
			}
			return adapter.Validate(gctx, data, schema, opts, func(result any) {
				reports[i] = report{File: file, Valid: skemaform.Valid(result), Errors: result}
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	invalid := 0
	for _, r := range reports {
		if !r.Valid {
			invalid++
		}
		if err := writeReport(out, r, f.indent); err != nil {
			return err
		}
	}
	log.Info("validation finished", "documents", len(files), "invalid", invalid)
	if invalid > 0 {
		return errDataInvalid
	}
	return nil
}

func readData(stdin io.Reader, file string, stdinFormat source.Format) (any, error) {
	if file != "-" {
		return source.ReadFile(file)
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return nil, err
	}
	return source.Decode(b, stdinFormat)
}

func writeReport(w io.Writer, r report, indent bool) error {
	var (
		b   []byte
		err error
	)
	if indent {
		b, err = json.MarshalIndent(r, "", "  ")
	} else {
		b, err = json.Marshal(r)
	}
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
