package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jnsquire/zetro/internal/generate"
)

// ErrArgument is the sentinel wrapped by every CLI argument validation
// error produced by this package.
var ErrArgument = errors.New("argument error")

// pluginCallPattern matches a single --add-plugin invocation:
// plugin-name(arg1:val1 arg2:val2), with the parenthesized argument list
// optional. Mirrors the grammar in zetro/src/utilities.rs::parse_args.
var pluginCallPattern = regexp.MustCompile(`(?i)^([a-z0-9-]+)(\(([a-z0-9-]+:[a-z0-9-]+(?: [a-z0-9-]+:[a-z0-9-]+)*)?\))?$`)

// Flags holds CLI flag names for generator configuration, allowing callers
// to customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Schema          string
	OutFile         string
	Lang            string
	FieldCasing     string
	Mangle          string
	Untagged        string
	AddPlugin       string
	IgnoreOutNaming string
}

// Config holds CLI flag values for generator configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Resolve] to validate the raw flag
// values and build a [Resolved].
type Config struct {
	Flags Flags

	Schema          string
	OutFile         string
	Lang            string
	FieldCasing     string
	Mangle          bool
	Untagged        bool
	AddPlugin       []string
	IgnoreOutNaming bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Schema:          "schema",
		OutFile:         "out-file",
		Lang:            "lang",
		FieldCasing:     "field-casing",
		Mangle:          "mangle",
		Untagged:        "untagged",
		AddPlugin:       "add-plugin",
		IgnoreOutNaming: "ignore-out-naming",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds generator flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Schema, c.Flags.Schema, "",
		"path to the schema JSON file (required)")
	flags.StringVar(&c.OutFile, c.Flags.OutFile, "",
		"path to the output file (required); must contain '_generated' or '-generated'")
	flags.StringVar(&c.Lang, c.Flags.Lang, "",
		"target language, 'go' or 'typescript' (inferred from --out-file's extension if omitted)")
	flags.StringVar(&c.FieldCasing, c.Flags.FieldCasing, "",
		"tagged-mode JSON field casing, 'snake' or 'camel' (mutually exclusive with --untagged)")
	flags.BoolVar(&c.Mangle, c.Flags.Mangle, false,
		"append a trailing underscore to generated client identifiers")
	flags.BoolVar(&c.Untagged, c.Flags.Untagged, false,
		"emit positional array codecs instead of tagged objects")
	flags.StringArrayVar(&c.AddPlugin, c.Flags.AddPlugin, nil,
		"add-on plugin invocation, eg. httpserve(hash:fnv) (repeatable)")
	flags.BoolVar(&c.IgnoreOutNaming, c.Flags.IgnoreOutNaming, false,
		"skip the _generated/-generated output filename convention check")
}

// RegisterCompletions registers shell completions for generator flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Lang,
		cobra.FixedCompletions([]string{"go", "typescript"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Lang, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.FieldCasing,
		cobra.FixedCompletions([]string{"snake", "camel"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.FieldCasing, err)
	}

	return nil
}

// Resolved is the validated, normalized form of a [Config]: every field
// here has already passed the argument-error checks in spec.md §6/§8.
type Resolved struct {
	Lang        EmitLang
	FieldCasing string // "", "snake", or "camel"
	Untagged    bool
	Mangle      bool
	Plugins     []generate.PluginCall
}

// Resolve validates c's raw flag values and returns a [Resolved], or an
// error wrapping [ErrArgument] for the first violated invariant: missing
// --schema/--out-file, an unrecognized/unguessable --lang, an invalid
// --field-casing value, --field-casing combined with --untagged, an
// output filename missing the naming convention substring, or a malformed
// --add-plugin call.
func (c *Config) Resolve() (*Resolved, error) {
	if c.Schema == "" {
		return nil, fmt.Errorf("%w: missing required --%s", ErrArgument, c.Flags.Schema)
	}

	if c.OutFile == "" {
		return nil, fmt.Errorf("%w: missing required --%s", ErrArgument, c.Flags.OutFile)
	}

	lang, err := c.resolveLang()
	if err != nil {
		return nil, err
	}

	casing := strings.ToLower(c.FieldCasing)
	if casing != "" && casing != "snake" && casing != "camel" {
		return nil, fmt.Errorf("%w: --%s must be 'snake' or 'camel', got %q",
			ErrArgument, c.Flags.FieldCasing, c.FieldCasing)
	}

	if casing != "" && c.Untagged {
		return nil, fmt.Errorf("%w: --%s and --%s are mutually exclusive",
			ErrArgument, c.Flags.FieldCasing, c.Flags.Untagged)
	}

	if !c.IgnoreOutNaming &&
		!strings.Contains(c.OutFile, "_generated") &&
		!strings.Contains(c.OutFile, "-generated") {
		return nil, fmt.Errorf(
			"%w: output filename %q does not contain '_generated' or '-generated'; pass --%s to skip this check",
			ErrArgument, c.OutFile, c.Flags.IgnoreOutNaming)
	}

	plugins, err := ParsePluginCalls(c.AddPlugin)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Lang:        lang,
		FieldCasing: casing,
		Untagged:    c.Untagged,
		Mangle:      c.Mangle,
		Plugins:     plugins,
	}, nil
}

// resolveLang returns c.Lang if set, otherwise infers the target language
// from c.OutFile's extension.
func (c *Config) resolveLang() (EmitLang, error) {
	if c.Lang != "" {
		lang, ok := EmitLangFromName(c.Lang)
		if !ok {
			return EmitLangUnknown, fmt.Errorf("%w: unrecognized --%s %q",
				ErrArgument, c.Flags.Lang, c.Lang)
		}

		return lang, nil
	}

	ext := c.OutFile

	if idx := strings.LastIndex(c.OutFile, "."); idx >= 0 {
		ext = c.OutFile[idx+1:]
	}

	lang, ok := EmitLangFromExt(ext)
	if !ok {
		return EmitLangUnknown, fmt.Errorf(
			"%w: could not infer target language from %q; pass --%s",
			ErrArgument, c.OutFile, c.Flags.Lang)
	}

	return lang, nil
}

// ParsePluginCalls parses a set of --add-plugin invocations into
// [generate.PluginCall] values, rejecting malformed calls, duplicate
// plugin names, and duplicate argument keys within one call.
func ParsePluginCalls(raw []string) ([]generate.PluginCall, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	calls := make([]generate.PluginCall, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for _, r := range raw {
		m := pluginCallPattern.FindStringSubmatch(r)
		if m == nil {
			return nil, fmt.Errorf(
				"%w: invalid plugin call %q, expected format plugin-name(arg1:val1 arg2:val2)",
				ErrArgument, r)
		}

		name := strings.ToLower(m[1])
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate plugin entry %q", ErrArgument, name)
		}

		seen[name] = true

		call := generate.PluginCall{Name: name, Args: map[string]string{}}

		if m[3] != "" {
			for _, pair := range strings.Split(m[3], " ") {
				kv := strings.SplitN(pair, ":", 2)

				key := strings.ToLower(kv[0])
				if _, ok := call.Args[key]; ok {
					return nil, fmt.Errorf("%w: duplicate argument %q for plugin %q",
						ErrArgument, key, name)
				}

				call.Args[key] = kv[1]
			}
		}

		calls = append(calls, call)
	}

	return calls, nil
}
