package golang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jnsquire/zetro/internal/generate/golang"
	"github.com/jnsquire/zetro/internal/ir"
	"github.com/jnsquire/zetro/stringtest"
)

func TestGenerateEnums(t *testing.T) {
	t.Parallel()

	enums := []*ir.Enum{
		{Name: "Color", Variants: []string{"Red", "Green", "Blue"}},
	}

	var scope []string

	golang.GenerateEnums(&scope, enums)

	want := stringtest.JoinLF(
		"type Color uint8",
		"",
		"const (",
		"\tColorRed Color = 0",
		"\tColorGreen Color = 1",
		"\tColorBlue Color = 2",
		")",
	)

	assert.Equal(t, []string{want}, scope)
}

func TestGenerateEnumsOrdinalsAreZeroBased(t *testing.T) {
	t.Parallel()

	enums := []*ir.Enum{
		{Name: "Status", Variants: []string{"Active"}},
	}

	var scope []string

	golang.GenerateEnums(&scope, enums)

	assert.Contains(t, scope[0], "StatusActive Status = 0")
}
