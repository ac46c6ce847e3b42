package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuCommand_Text(t *testing.T) {
	code, stdout, _ := run(t, "", "menu")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 13)
	assert.True(t, strings.HasPrefix(lines[0], "CATEGORY"))
	assert.Contains(t, lines[1], "Garlic Bread")
	assert.Contains(t, lines[1], "green")
	assert.Contains(t, lines[12], "Tiramisu")
	assert.Contains(t, lines[12], "19 TL")
}

func TestMenuCommand_JSON(t *testing.T) {
	code, stdout, _ := run(t, "", "menu", "--format", "json")
	require.Equal(t, 0, code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &items))
	require.Len(t, items, 12)
	assert.Equal(t, "main_course", items[6]["category"])
	assert.Equal(t, "Fajitas", items[6]["name"])
}

func TestMenuCommand_BadFormat(t *testing.T) {
	code, _, stderr := run(t, "", "menu", "--format", "xml")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid format")
}
