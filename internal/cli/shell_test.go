package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatementComplete(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"SELECT 1;", true},
		{"SELECT 1", false},
		{"SELECT 1; -- trailing", true},
		{"SELECT ';' FROM t", false},
		{"SELECT ';' FROM t;", true},
		{`SELECT 'it\'s;' FROM t`, false},
		{"", false},
	} {
		assert.Equal(t, tc.want, statementComplete(tc.in), "input %q", tc.in)
	}
}

func TestIsMetaCommand(t *testing.T) {
	assert.True(t, isMetaCommand(`\help`))
	assert.True(t, isMetaCommand(`\q`))
	assert.True(t, isMetaCommand("quit"))
	assert.True(t, isMetaCommand("exit"))
	assert.False(t, isMetaCommand("SELECT 1;"))
}

func TestRunMetaCommand(t *testing.T) {
	h := &History{lines: []string{"SELECT 1;"}}

	var sb strings.Builder
	assert.True(t, runMetaCommand(&sb, h, `\q`))
	assert.True(t, runMetaCommand(&sb, h, "quit"))
	assert.True(t, runMetaCommand(&sb, h, "exit"))

	sb.Reset()
	assert.False(t, runMetaCommand(&sb, h, `\help`))
	assert.Contains(t, sb.String(), "meta commands")

	sb.Reset()
	assert.False(t, runMetaCommand(&sb, h, `\history`))
	assert.Contains(t, sb.String(), "SELECT 1;")

	sb.Reset()
	assert.False(t, runMetaCommand(&sb, h, `\nope`))
	assert.Contains(t, sb.String(), "unknown command")
}
