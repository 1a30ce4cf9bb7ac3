package typescript_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jnsquire/zetro/internal/generate/typescript"
	"github.com/jnsquire/zetro/internal/ir"
	"github.com/jnsquire/zetro/stringtest"
)

func TestGenerateEnumsUsesZeroBasedOrdinals(t *testing.T) {
	t.Parallel()

	enums := []*ir.Enum{
		{Name: "Color", Variants: []string{"Red", "Green", "Blue"}},
	}

	var scope []string

	typescript.GenerateEnums(&scope, enums)

	joined := stringtest.JoinLF(scope...)

	assert.Contains(t, joined, "Red: 0")
	assert.Contains(t, joined, "Green: 1")
	assert.Contains(t, joined, "Blue: 2")
	assert.NotContains(t, joined, "Red: 1")
}

func TestGenerateEnumsEmitsFrozenObjectNotEnumKeyword(t *testing.T) {
	t.Parallel()

	enums := []*ir.Enum{{Name: "Status", Variants: []string{"Active"}}}

	var scope []string

	typescript.GenerateEnums(&scope, enums)

	joined := stringtest.JoinLF(scope...)

	assert.Contains(t, joined, "export const Status = {")
	assert.Contains(t, joined, "as const;")
	assert.NotContains(t, joined, "enum Status")
}

func TestGenerateEnumsWrapsWithSectionMarkers(t *testing.T) {
	t.Parallel()

	var scope []string

	typescript.GenerateEnums(&scope, nil)

	assert.Equal(t, []string{
		"/* ============ Enums ============ */",
		"/* ============ End Enums ============ */",
	}, scope)
}
