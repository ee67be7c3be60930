package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompt(t *testing.T) {
	prompt, err := Get("selection.json", "select-content-intro")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Description}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("selection.json", "does-not-exist")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "select-content-intro")
	assert.Error(t, err)
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("selection.json", "does-not-exist")
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("Hello {{.Name}}, welcome to {{.Place}}", map[string]string{
		"Name":  "Ada",
		"Place": "the team",
	})
	assert.Equal(t, "Hello Ada, welcome to the team", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x and {{.Unknown}}", result)
}

func TestStrictSuffix_MentionsRawJSON(t *testing.T) {
	prompt := MustGet("selection.json", "select-content-strict")
	assert.True(t, strings.Contains(prompt, "raw JSON"))
}
