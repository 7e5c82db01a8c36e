package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocument struct {
	ID      string
	Content string
}

func (d fakeDocument) ToDict() map[string]any {
	return map[string]any{"id": d.ID, "content": d.Content}
}

type fakeComponent struct {
	params map[string]any
}

func (c fakeComponent) ToDict() map[string]any {
	return map[string]any{"type": "fake", initParametersKey: c.params}
}

func TestConvertComponentOutput(t *testing.T) {
	t.Run("Should pass plain values through unchanged", func(t *testing.T) {
		result := ConvertComponentOutput(map[string]any{"result": 3})
		assert.Equal(t, map[string]any{"result": 3}, result)
	})

	t.Run("Should convert values exposing the dict capability", func(t *testing.T) {
		result := ConvertComponentOutput(map[string]any{
			"document": fakeDocument{ID: "818170", Content: "RapidAPI for Mac is a full-featured HTTP client."},
		})
		assert.Equal(t, map[string]any{
			"document": map[string]any{
				"id":      "818170",
				"content": "RapidAPI for Mac is a full-featured HTTP client.",
			},
		}, result)
	})

	t.Run("Should unwrap init_parameters when present", func(t *testing.T) {
		result := ConvertComponentOutput(map[string]any{
			"component": fakeComponent{params: map[string]any{"a": 1}},
		})
		assert.Equal(t, map[string]any{"component": map[string]any{"a": 1}}, result)
	})

	t.Run("Should convert every element of an ordered sequence in order", func(t *testing.T) {
		result := ConvertComponentOutput(map[string]any{
			"documents": []any{
				fakeDocument{ID: "1", Content: "first"},
				fakeDocument{ID: "2", Content: "second"},
				fakeDocument{ID: "3", Content: "third"},
			},
		})
		converted, ok := result["documents"].([]any)
		require.True(t, ok)
		require.Len(t, converted, 3)
		for i, id := range []string{"1", "2", "3"} {
			assert.Equal(t, id, converted[i].(map[string]any)["id"])
		}
	})

	t.Run("Should flatten typed slices through reflection", func(t *testing.T) {
		result := ConvertComponentOutput(map[string]any{
			"documents": []fakeDocument{{ID: "a"}, {ID: "b"}},
		})
		converted, ok := result["documents"].([]any)
		require.True(t, ok)
		require.Len(t, converted, 2)
		assert.Equal(t, "a", converted[0].(map[string]any)["id"])
		assert.Equal(t, "b", converted[1].(map[string]any)["id"])
	})

	t.Run("Should treat byte slices as plain values", func(t *testing.T) {
		payload := []byte("raw")
		result := ConvertComponentOutput(map[string]any{"blob": payload})
		assert.Equal(t, map[string]any{"blob": payload}, result)
	})

	t.Run("Should keep plain sequence elements untouched", func(t *testing.T) {
		result := ConvertComponentOutput(map[string]any{"values": []any{1, "two", nil}})
		assert.Equal(t, map[string]any{"values": []any{1, "two", nil}}, result)
	})

	t.Run("Should keep all output names", func(t *testing.T) {
		result := ConvertComponentOutput(map[string]any{
			"first":  1,
			"second": fakeDocument{ID: "x"},
		})
		assert.Len(t, result, 2)
		assert.Contains(t, result, "first")
		assert.Contains(t, result, "second")
	})
}
