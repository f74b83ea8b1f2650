package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontogen/compiler"
	"github.com/c360studio/ontogen/config"
	"github.com/c360studio/ontogen/ontology"
	"github.com/c360studio/ontogen/rdf"
	"github.com/c360studio/ontogen/storage"
)

type compileFlags struct {
	ontologyDir string
	schema      string
	outDir      string
	file        string
	pkg         string
	namespace   string
	prefix      string
	source      string
	watch       bool
	store       bool
}

func compileCmd(global *globalFlags) *cobra.Command {
	flags := &compileFlags{}

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Generate Go types from an ontology",
		Long: `Compile loads the ontology files and the optional XML schema with
cardinalities, then writes one Go source file with enumerations, value
types and classes in dependency order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := global.setup()
			if err != nil {
				return err
			}
			flags.apply(cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			cfg.ApplyPrefixes()
			return runCompile(cmd.Context(), cfg, flags, logger)
		},
	}

	cmd.Flags().StringVar(&flags.ontologyDir, "ontology", "", "Ontology directory (N-Triples/N-Quads)")
	cmd.Flags().StringVar(&flags.schema, "xsd", "", "XML schema with cardinalities")
	cmd.Flags().StringVar(&flags.outDir, "out", "", "Output directory")
	cmd.Flags().StringVar(&flags.file, "file", "", "Output file name (default <package>_gen.go)")
	cmd.Flags().StringVar(&flags.pkg, "package", "", "Go package name")
	cmd.Flags().StringVar(&flags.namespace, "namespace", "", "Ontology namespace IRI")
	cmd.Flags().StringVar(&flags.prefix, "prefix", "", "Prefix label for the namespace")
	cmd.Flags().StringVar(&flags.source, "source", "", "Source description written to the file header")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "Recompile when ontology files change")
	cmd.Flags().BoolVar(&flags.store, "store", false, "Store the compiled schema in the NATS KV bucket")

	return cmd
}

// apply overrides configuration values with the flags that were set.
func (f *compileFlags) apply(cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Ontology.Dir, f.ontologyDir)
	set(&cfg.Ontology.Schema, f.schema)
	set(&cfg.Compiler.OutputDir, f.outDir)
	set(&cfg.Compiler.OutputFile, f.file)
	set(&cfg.Compiler.Package, f.pkg)
	set(&cfg.Compiler.Namespace, f.namespace)
	set(&cfg.Compiler.Prefix, f.prefix)
}

func runCompile(ctx context.Context, cfg *config.Config, flags *compileFlags, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var store *storage.Store
	if flags.store {
		nc, err := connectToNATS(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer nc.Close(ctx)

		store, err = storage.NewStore(ctx, nc, cfg.NATS.SchemaBucket, logger)
		if err != nil {
			return fmt.Errorf("open schema store: %w", err)
		}
	}

	build := func(ctx context.Context) error {
		s, err := compileOnce(cfg, flags.source, logger)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.Compiler.OutputDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		path, err := compiler.WriteFile(s, cfg.Compiler.OutputDir, cfg.OutputFile())
		if err != nil {
			return err
		}
		logger.Info("Wrote schema",
			slog.String("path", path),
			slog.Int("enums", len(s.Enums)),
			slog.Int("datatypes", len(s.Datatypes)),
			slog.Int("classes", len(s.Classes)))

		if store != nil {
			rec, err := storage.NewSchemaRecord(s)
			if err != nil {
				return err
			}
			if _, err := store.PutSchema(ctx, rec); err != nil {
				return err
			}
		}
		return nil
	}

	if err := build(ctx); err != nil {
		return err
	}
	if !flags.watch {
		return nil
	}

	paths := []string{cfg.Ontology.Dir}
	if cfg.Ontology.Schema != "" {
		paths = append(paths, cfg.Ontology.Schema)
	}
	w, err := compiler.NewWatcher(compiler.WatchConfig{
		Paths:    paths,
		Debounce: cfg.Compiler.Debounce,
	}, build, logger)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Setup signal handling
	signalCtx, signalCancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer signalCancel()

	if err := w.Run(signalCtx); err != nil && signalCtx.Err() == nil {
		return err
	}
	logger.Info("Watcher stopped",
		slog.Int64("builds", w.Builds()),
		slog.Int64("failures", w.Failures()))
	return nil
}

// compileOnce loads the ontology and compiles it.
func compileOnce(cfg *config.Config, source string, logger *slog.Logger) (*compiler.Schema, error) {
	g := rdf.NewGraph()
	files, err := g.LoadDir(cfg.Ontology.Dir, cfg.Ontology.Include...)
	if err != nil {
		return nil, fmt.Errorf("load ontology: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no ontology files in %s", cfg.Ontology.Dir)
	}
	logger.Debug("Loaded ontology",
		slog.Int("files", len(files)),
		slog.Int("triples", g.Len()))

	var cards *ontology.CardinalitySource
	if cfg.Ontology.Schema != "" {
		if cards, err = ontology.LoadXSD(cfg.Ontology.Schema); err != nil {
			return nil, err
		}
	}

	opts := cfg.CompilerOptions()
	if source != "" {
		opts.Source = source
	}
	return compiler.New(ontology.New(g, cards, logger), opts, logger).Compile()
}
