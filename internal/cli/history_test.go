package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactOneLine(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"SELECT 1;", "SELECT 1;"},
		{"SELECT *\nFROM users\twhere id = 1;", "SELECT * FROM users where id = 1;"},
		{"  a   b\r\nc  ", "a b c"},
		{"", ""},
	} {
		assert.Equal(t, tc.want, compactOneLine(tc.in))
	}
}

func TestHistory_AppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h := NewHistory(path)
	require.NoError(t, h.Append("SELECT 1;"))
	require.NoError(t, h.Append("SELECT *\nFROM users;"))

	// reopen and confirm the statements came back flattened
	h2 := NewHistory(path)
	require.NoError(t, h2.Load(0))
	require.Len(t, h2.lines, 2)
	assert.Equal(t, "SELECT 1;", h2.lines[0])
	assert.Equal(t, "SELECT * FROM users;", h2.lines[1])
}

func TestHistory_LoadMissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, h.Load(100))
	assert.Empty(t, h.lines)
}

func TestHistory_LoadKeepsTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("one;\ntwo;\nthree;\n"), 0o644))

	h := NewHistory(path)
	require.NoError(t, h.Load(2))
	assert.Equal(t, []string{"two;", "three;"}, h.lines)
}

func TestHistory_Print(t *testing.T) {
	h := &History{lines: []string{"a;", "b;", "c;"}}

	var sb strings.Builder
	h.Print(&sb, 2)
	out := sb.String()

	assert.NotContains(t, out, "a;")
	assert.Contains(t, out, "b;")
	assert.Contains(t, out, "c;")

	// numbering counts from the start of the history
	assert.Contains(t, out, "2  b;")
	assert.Contains(t, out, "3  c;")
}
