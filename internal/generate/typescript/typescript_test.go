package typescript_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnsquire/zetro/internal/generate"
	"github.com/jnsquire/zetro/internal/generate/typescript"
	"github.com/jnsquire/zetro/internal/ir"
)

func TestGenerateIncludesHeaderEnumsAndStructs(t *testing.T) {
	t.Parallel()

	schema := &ir.Schema{
		Enums: []*ir.Enum{{Name: "Color", Variants: []string{"Red"}}},
		Structs: []*ir.Struct{
			{Name: "Room", Description: "A room.", Fields: []*ir.Field{{Name: "capacity", Kind: ir.KindUInt32}}},
		},
	}

	out, err := typescript.Generate(schema, typescript.Options{})
	require.NoError(t, err)

	assert.Contains(t, out, "Code generated by zetro")
	assert.Contains(t, out, "export const Color = {")
	assert.Contains(t, out, "export interface Room {")
}

type stubPlugin struct{ name string }

func (p *stubPlugin) Name() string { return p.name }

func (p *stubPlugin) Generate(_ generate.PluginCall, _ *ir.Schema, scope *[]string) error {
	*scope = append(*scope, "/* stub plugin output */")

	return nil
}

func TestGenerateDispatchesRegisteredPlugin(t *testing.T) {
	t.Parallel()

	registry := generate.Registry{}
	registry.Add(func() generate.Plugin { return &stubPlugin{name: "stub"} })

	out, err := typescript.Generate(&ir.Schema{}, typescript.Options{
		Plugins:  []generate.PluginCall{{Name: "stub"}},
		Registry: registry,
	})
	require.NoError(t, err)

	assert.Contains(t, out, "/* stub plugin output */")
}

func TestGenerateRejectsUnknownPlugin(t *testing.T) {
	t.Parallel()

	_, err := typescript.Generate(&ir.Schema{}, typescript.Options{
		Plugins:  []generate.PluginCall{{Name: "missing"}},
		Registry: generate.Registry{},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestGenerateReturnsPluginGenerationError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	registry := generate.Registry{}
	registry.Add(func() generate.Plugin {
		return pluginFunc(func(_ generate.PluginCall, _ *ir.Schema, _ *[]string) error {
			return boom
		})
	})

	_, err := typescript.Generate(&ir.Schema{}, typescript.Options{
		Plugins:  []generate.PluginCall{{Name: "boom"}},
		Registry: registry,
	})

	require.ErrorIs(t, err, boom)
}

type pluginFunc func(call generate.PluginCall, schema *ir.Schema, scope *[]string) error

func (f pluginFunc) Name() string { return "boom" }

func (f pluginFunc) Generate(call generate.PluginCall, schema *ir.Schema, scope *[]string) error {
	return f(call, schema, scope)
}
