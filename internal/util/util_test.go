package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type argsFixture struct {
	ID    int      `json:"item_id" description:"Unique ID" minimum:"0"`
	Name  string   `json:"name,omitempty" default:"" minLength:"1"`
	Price *float64 `json:"price" default:"-1.0"`
	skip  int
}

func TestCreateSchema(t *testing.T) {
	schema := CreateSchema(argsFixture{})

	props := schema["properties"].(map[string]any)
	require.Len(t, props, 3)

	id := props["item_id"].(map[string]any)
	assert.Equal(t, "integer", id["type"])
	assert.Equal(t, "Unique ID", id["description"])
	assert.Equal(t, 0.0, id["minimum"])

	name := props["name"].(map[string]any)
	assert.Equal(t, 1, name["minLength"])
	assert.Equal(t, "", name["default"])

	price := props["price"].(map[string]any)
	assert.Equal(t, "number", price["type"])
	assert.Equal(t, -1.0, price["default"])

	assert.Equal(t, []string{"item_id"}, schema["required"])
}

func TestCreateSchema_NonStruct(t *testing.T) {
	schema := CreateSchema(42)
	assert.Equal(t, "object", schema["type"])
	assert.Empty(t, schema["properties"])
}

func TestValidateParameters(t *testing.T) {
	schema := CreateSchema(argsFixture{})

	assert.NoError(t, ValidateParameters(map[string]any{"item_id": 3.0}, schema))

	err := ValidateParameters(map[string]any{}, schema)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "item_id", vErr.Field)

	err = ValidateParameters(map[string]any{"item_id": 1.5}, schema)
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "expected type integer")

	err = ValidateParameters(map[string]any{"item_id": -2.0}, schema)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "must be >= 0", vErr.Message)

	err = ValidateParameters(map[string]any{"item_id": 1, "name": ""}, schema)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestValidateParameters_JSONDecodedRequired(t *testing.T) {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{"x": map[string]any{"type": "integer"}},
		"required":   []any{"x"},
	}
	assert.Error(t, ValidateParameters(map[string]any{}, schema))
	assert.NoError(t, ValidateParameters(map[string]any{"x": 5}, schema))
}

func TestRenderTemplate(t *testing.T) {
	out, err := RenderTemplate("no markers", nil)
	require.NoError(t, err)
	assert.Equal(t, "no markers", out)

	out, err = RenderTemplate(`{{.Count}} {{plural .Count "item" "items"}}: {{join ", " .Names}}`, map[string]any{
		"Count": 2,
		"Names": []string{"a", "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, "2 items: a, b", out)

	_, err = RenderTemplate("{{.Broken", nil)
	assert.Error(t, err)
}
