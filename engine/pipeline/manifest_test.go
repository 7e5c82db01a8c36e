package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipeserve/pipeserve/engine/schema"
)

const additionManifest = `
components:
  first_addition:
    inputs:
      value:
        type: int
        mandatory: true
      add:
        type:
          name: optional
          args: [int]
        mandatory: false
        default: null
    outputs:
      result:
        type: int
  second_addition:
    inputs:
      add:
        type: int
        default: 1
    outputs:
      result:
        type: int
`

func TestManifestIntrospector(t *testing.T) {
	introspector := NewManifestIntrospector()

	t.Run("Should parse inputs and outputs of every component", func(t *testing.T) {
		def := &Definition{Name: "calc", SourceCode: additionManifest}
		inputs, outputs, err := introspector.Introspect(def)
		require.NoError(t, err)

		require.Len(t, inputs, 2)
		require.Len(t, outputs, 2)

		value := inputs["first_addition"]["value"]
		assert.Equal(t, schema.TypeRef{Name: "int"}, value.Type)
		assert.True(t, value.Mandatory)
		assert.False(t, value.HasDefault)

		result := outputs["first_addition"]["result"]
		assert.Equal(t, schema.TypeRef{Name: "int"}, result.Type)
	})

	t.Run("Should record an explicit null default as present", func(t *testing.T) {
		def := &Definition{Name: "calc", SourceCode: additionManifest}
		inputs, _, err := introspector.Introspect(def)
		require.NoError(t, err)

		add := inputs["first_addition"]["add"]
		assert.True(t, add.HasDefault)
		assert.Nil(t, add.Default)
		assert.Equal(t, "optional[int]", add.Type.String())
	})

	t.Run("Should keep absent defaults absent", func(t *testing.T) {
		def := &Definition{Name: "calc", SourceCode: additionManifest}
		inputs, _, err := introspector.Introspect(def)
		require.NoError(t, err)

		add := inputs["second_addition"]["add"]
		assert.True(t, add.HasDefault)
		assert.Equal(t, uint64(1), add.Default)
	})

	t.Run("Should reject a manifest without components", func(t *testing.T) {
		def := &Definition{Name: "empty", SourceCode: "components: {}"}
		_, _, err := introspector.Introspect(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "declares no components")
	})

	t.Run("Should reject malformed YAML", func(t *testing.T) {
		def := &Definition{Name: "broken", SourceCode: "components: ["}
		_, _, err := introspector.Introspect(def)
		require.Error(t, err)
	})

	t.Run("Should surface component context on bad type expressions", func(t *testing.T) {
		def := &Definition{Name: "calc", SourceCode: `
components:
  adder:
    inputs:
      value:
        mandatory: true
`}
		_, _, err := introspector.Introspect(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"adder"`)
		assert.Contains(t, err.Error(), `"value"`)
	})
}
