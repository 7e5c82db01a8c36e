package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveType(t *testing.T) {
	t.Run("Should return types outside the substitution table unchanged", func(t *testing.T) {
		for _, name := range []string{"int", "str", "bool", "document"} {
			resolved, err := ResolveType(TypeRef{Name: name})
			require.NoError(t, err)
			assert.Equal(t, TypeRef{Name: name}, resolved)
		}
	})

	t.Run("Should substitute dataframes with the generic structured-data type", func(t *testing.T) {
		resolved, err := ResolveType(TypeRef{Name: "dataframe"})
		require.NoError(t, err)
		assert.Equal(t, TypeRef{Name: "object"}, resolved)
	})

	t.Run("Should substitute the qdrant filter type", func(t *testing.T) {
		resolved, err := ResolveType(TypeRef{Name: "filter"})
		require.NoError(t, err)
		assert.Equal(t, TypeRef{Name: "object"}, resolved)
	})

	t.Run("Should reconstruct generic wrappers around substituted leaves", func(t *testing.T) {
		resolved, err := ResolveType(TypeRef{
			Name: "optional",
			Args: []TypeRef{{Name: "dataframe"}},
		})
		require.NoError(t, err)
		assert.Equal(t, TypeRef{Name: "optional", Args: []TypeRef{{Name: "object"}}}, resolved)
	})

	t.Run("Should resolve nested generics leaf by leaf", func(t *testing.T) {
		resolved, err := ResolveType(TypeRef{
			Name: "list",
			Args: []TypeRef{{Name: "optional", Args: []TypeRef{{Name: "filter"}}}},
		})
		require.NoError(t, err)
		assert.Equal(t, TypeRef{
			Name: "list",
			Args: []TypeRef{{Name: "optional", Args: []TypeRef{{Name: "object"}}}},
		}, resolved)
	})

	t.Run("Should not substitute inside resolution results twice", func(t *testing.T) {
		first, err := ResolveType(TypeRef{Name: "dataframe"})
		require.NoError(t, err)
		second, err := ResolveType(first)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Should fail on an empty type expression", func(t *testing.T) {
		_, err := ResolveType(TypeRef{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnresolvableType)
	})

	t.Run("Should fail on an irreconstructible argument", func(t *testing.T) {
		_, err := ResolveType(TypeRef{Name: "list", Args: []TypeRef{{}}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnresolvableType)
	})
}

func TestRegisterUnsupportedType(t *testing.T) {
	t.Run("Should ignore empty registrations", func(t *testing.T) {
		RegisterUnsupportedType("")
		_, ok := unsupportedTypes[""]
		assert.False(t, ok)
	})
}
