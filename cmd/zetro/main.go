// Package main provides the CLI entry point for zetro, a schema-driven
// code generator that emits a typed RPC client/server source pair from a
// declarative JSON schema.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jnsquire/zetro/internal/config"
	"github.com/jnsquire/zetro/internal/generate"
	"github.com/jnsquire/zetro/internal/generate/golang"
	"github.com/jnsquire/zetro/internal/generate/golang/plugins/httpserve"
	"github.com/jnsquire/zetro/internal/generate/typescript"
	"github.com/jnsquire/zetro/internal/generate/typescript/plugins/classclient"
	"github.com/jnsquire/zetro/internal/ir"
	"github.com/jnsquire/zetro/log"
	"github.com/jnsquire/zetro/profile"
	"github.com/jnsquire/zetro/version"
)

func main() {
	cfg := config.NewConfig()
	logCfg := log.NewConfig()
	profileCfg := profile.NewConfig()

	var showVersion bool

	rootCmd := &cobra.Command{
		Use:   "zetro --schema=<path> --out-file=<path>",
		Short: "Generate a typed RPC client/server source pair from a Zetro schema",
		Long: `zetro reads a declarative JSON schema describing structs, enums, and
routes, and emits ready-to-compile source for a typed client/server pair
speaking zetro's array-based wire protocol.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Fprintln(os.Stdout, version.Version)

				return nil
			}

			return run(cfg, logCfg, profileCfg)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.Flags())
	profileCfg.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version information and exit")

	registerCompletions(rootCmd, cfg, logCfg, profileCfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func registerCompletions(cmd *cobra.Command, cfg *config.Config, logCfg *log.Config, profileCfg *profile.Config) {
	if err := cfg.RegisterCompletions(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := logCfg.RegisterCompletions(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := profileCfg.RegisterCompletions(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}
}

func run(cfg *config.Config, logCfg *log.Config, profileCfg *profile.Config) error {
	handler, err := logCfg.NewHandler(os.Stderr)
	if err != nil {
		return err
	}

	logger := slog.New(handler)

	profiler := profileCfg.NewProfiler()
	if err := profiler.Start(); err != nil {
		return fmt.Errorf("starting profiler: %w", err)
	}

	defer func() {
		if stopErr := profiler.Stop(); stopErr != nil {
			logger.Error("stopping profiler", "error", stopErr)
		}
	}()

	resolved, err := cfg.Resolve()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.Schema)
	if err != nil {
		return fmt.Errorf("reading schema file: %w", err)
	}

	schema, err := ir.ParseSchema(data)
	if err != nil {
		return err
	}

	logger.Debug("parsed schema",
		"structs", len(schema.Structs),
		"enums", len(schema.Enums),
		"queries", len(schema.Queries),
		"mutations", len(schema.Mutations))

	source, err := generateSource(schema, resolved)
	if err != nil {
		return fmt.Errorf("generating source: %w", err)
	}

	if err := os.WriteFile(cfg.OutFile, []byte(source), 0o644); err != nil { //nolint:gosec // Output path comes from a trusted CLI flag.
		return fmt.Errorf("writing output file: %w", err)
	}

	logger.Info("generated source", "lang", resolved.Lang.String(), "out", cfg.OutFile)

	return nil
}

// generateSource dispatches to the target-language emitter selected by
// resolved.Lang, registering each target's own plugin set.
func generateSource(schema *ir.Schema, resolved *config.Resolved) (string, error) {
	switch resolved.Lang {
	case config.EmitLangGo:
		registry := generate.Registry{}
		registry.Add(httpserve.New)

		casing := golang.CasingCamel
		if resolved.FieldCasing == "snake" {
			casing = golang.CasingSnake
		}

		return golang.Generate(schema, golang.Options{
			Untagged:    resolved.Untagged,
			FieldCasing: casing,
			Plugins:     resolved.Plugins,
			Registry:    registry,
		})

	case config.EmitLangTypeScript:
		registry := generate.Registry{}
		registry.Add(classclient.New)

		return typescript.Generate(schema, typescript.Options{
			Untagged: resolved.Untagged,
			Plugins:  withClassClientDefaults(resolved),
			Registry: registry,
		})

	default:
		return "", fmt.Errorf("unsupported target language: %s", resolved.Lang)
	}
}

// withClassClientDefaults forwards the top-level --untagged/--mangle flags
// into any "classclient" plugin call that didn't already set its own
// "untagged"/"mangle" argument, so --add-plugin=classclient() alone is
// enough to pick up the generator's global settings.
func withClassClientDefaults(resolved *config.Resolved) []generate.PluginCall {
	calls := make([]generate.PluginCall, len(resolved.Plugins))
	copy(calls, resolved.Plugins)

	for i, call := range calls {
		if call.Name != "classclient" {
			continue
		}

		args := make(map[string]string, len(call.Args)+2)
		for k, v := range call.Args {
			args[k] = v
		}

		if _, ok := args["untagged"]; !ok {
			args["untagged"] = strconv.FormatBool(resolved.Untagged)
		}

		if _, ok := args["mangle"]; !ok {
			args["mangle"] = strconv.FormatBool(resolved.Mangle)
		}

		calls[i] = generate.PluginCall{Name: call.Name, Args: args}
	}

	return calls
}
