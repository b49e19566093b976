package validation

import (
	"testing"

	domainerr "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listenerNode struct {
	Name string `validate:"required"`
	Port int    `validate:"min=1,max=65535"`
}

func TestPlaygroundContext(t *testing.T) {
	t.Run("Valid value queues nothing", func(t *testing.T) {
		ctx := NewPlaygroundContext(nil)
		assert.True(t, ctx.Check(listenerNode{Name: "ssh", Port: 22}))
		assert.Empty(t, ctx.Diagnostics())
	})

	t.Run("Each failed rule becomes a diagnostic", func(t *testing.T) {
		ctx := NewPlaygroundContext(nil)
		assert.False(t, ctx.Check(listenerNode{Port: 0}))

		diags := ctx.Diagnostics()
		require.Len(t, diags, 2)
		assert.Equal(t, Diagnostic{
			Code:    domainerr.CodeValidationFailed,
			Path:    "/listenerNode/Name",
			Message: `Value "" does not satisfy the "required" rule.`,
		}, diags[0])
		assert.Equal(t, "/listenerNode/Port", diags[1].Path)
		assert.Equal(t, `Value "0" does not satisfy the "min=1" rule.`, diags[1].Message)
	})

	t.Run("Non-struct input is an invalid argument", func(t *testing.T) {
		ctx := NewPlaygroundContext(nil)
		assert.False(t, ctx.Check("not a struct"))

		diags := ctx.Diagnostics()
		require.Len(t, diags, 1)
		assert.Equal(t, domainerr.CodeInvalArg, diags[0].Code)
	})

	t.Run("Drained through the adapter", func(t *testing.T) {
		logger := &recordingLogger{}
		rep := domainerr.NewReporter(logger)
		ctx := NewPlaygroundContext(nil)
		ctx.Check(listenerNode{Name: "ssh", Port: 70000})

		info := Errors(rep, nil, ctx)

		require.Equal(t, 1, info.Len())
		first, _ := info.First()
		assert.Equal(t, domainerr.CodeValidationFailed, first.Code())
		assert.Equal(t, "/listenerNode/Port", first.Path())
		assert.Empty(t, ctx.Diagnostics())
	})
}

func TestNamespacePath(t *testing.T) {
	assert.Equal(t, "", namespacePath(""))
	assert.Equal(t, "/Node/Leaf[0]/Name", namespacePath("Node.Leaf[0].Name"))
}
