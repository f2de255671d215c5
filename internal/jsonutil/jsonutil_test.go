package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalWithContext(t *testing.T) {
	var v map[string]interface{}
	err := UnmarshalWithContext([]byte(`{"accent":"86"}`), &v, "parsing theme")
	require.NoError(t, err)
	assert.Equal(t, "86", v["accent"])

	err = UnmarshalWithContext([]byte(`{not json`), &v, "parsing theme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing theme: ")
}

func TestGetStringOr(t *testing.T) {
	m := map[string]interface{}{
		"accent": "205",
		"count":  3.0,
		"empty":  "",
	}
	assert.Equal(t, "205", GetStringOr(m, "accent", "86"))
	assert.Equal(t, "86", GetStringOr(m, "missing", "86"))
	assert.Equal(t, "86", GetStringOr(m, "count", "86"), "non-string falls back")
	assert.Equal(t, "86", GetStringOr(m, "empty", "86"), "empty string falls back")
}
