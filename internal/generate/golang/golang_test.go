package golang_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnsquire/zetro/internal/generate"
	"github.com/jnsquire/zetro/internal/generate/golang"
	"github.com/jnsquire/zetro/internal/ir"
)

func TestGenerateIncludesPackageHeaderEnumsAndStructs(t *testing.T) {
	t.Parallel()

	schema := &ir.Schema{
		Enums: []*ir.Enum{
			{Name: "Color", Variants: []string{"Red", "Green"}},
		},
		Structs: []*ir.Struct{
			{
				Name:        "Room",
				Description: "A room.",
				Fields: []*ir.Field{
					{Name: "capacity", Kind: ir.KindUInt32},
				},
			},
		},
	}

	out, err := golang.Generate(schema, golang.Options{PackageName: "rooms"})
	require.NoError(t, err)

	assert.Contains(t, out, "package rooms")
	assert.Contains(t, out, "type Color uint8")
	assert.Contains(t, out, "type Room struct {")
}

func TestGenerateDefaultsPackageName(t *testing.T) {
	t.Parallel()

	out, err := golang.Generate(&ir.Schema{}, golang.Options{})
	require.NoError(t, err)

	assert.Contains(t, out, "package zetro")
}

type stubPlugin struct {
	name string
}

func (p *stubPlugin) Name() string { return p.name }

func (p *stubPlugin) Generate(_ generate.PluginCall, _ *ir.Schema, scope *[]string) error {
	*scope = append(*scope, "// stub plugin output")

	return nil
}

func TestGenerateDispatchesRegisteredPlugin(t *testing.T) {
	t.Parallel()

	registry := generate.Registry{}
	registry.Add(func() generate.Plugin { return &stubPlugin{name: "stub"} })

	out, err := golang.Generate(&ir.Schema{}, golang.Options{
		Plugins:  []generate.PluginCall{{Name: "stub"}},
		Registry: registry,
	})
	require.NoError(t, err)

	assert.Contains(t, out, "// stub plugin output")
}

func TestGenerateRejectsUnknownPlugin(t *testing.T) {
	t.Parallel()

	_, err := golang.Generate(&ir.Schema{}, golang.Options{
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

	_, err := golang.Generate(&ir.Schema{}, golang.Options{
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

type importingPlugin struct{}

func (p *importingPlugin) Name() string { return "importer" }

func (p *importingPlugin) Imports(_ generate.PluginCall, _ *ir.Schema) ([]string, error) {
	return []string{"net/http", "encoding/json"}, nil
}

func (p *importingPlugin) Generate(_ generate.PluginCall, _ *ir.Schema, scope *[]string) error {
	*scope = append(*scope, "var _ = http.StatusOK")

	return nil
}

func TestGenerateCollectsPluginImportsIntoPackageHeader(t *testing.T) {
	t.Parallel()

	schema := &ir.Schema{
		Structs: []*ir.Struct{
			{Name: "Room", Fields: []*ir.Field{{Name: "capacity", Kind: ir.KindUInt32}}},
		},
	}

	registry := generate.Registry{}
	registry.Add(func() generate.Plugin { return &importingPlugin{} })

	out, err := golang.Generate(schema, golang.Options{
		Plugins:  []generate.PluginCall{{Name: "importer"}},
		Registry: registry,
	})
	require.NoError(t, err)

	headerIdx := strings.Index(out, "package zetro")
	importIdx := strings.Index(out, "import (")
	structIdx := strings.Index(out, "type Room struct {")

	require.NotEqual(t, -1, headerIdx)
	require.NotEqual(t, -1, importIdx)
	require.NotEqual(t, -1, structIdx)

	assert.Less(t, headerIdx, importIdx)
	assert.Less(t, importIdx, structIdx)
	assert.Contains(t, out, "\t\"encoding/json\"\n\t\"net/http\"\n)")
}
