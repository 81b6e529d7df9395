package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRootCommandArgs(t *testing.T) {
	out := runCommand(t, "", "Tom", "&", "Jerry")
	assert.Equal(t, "tom-and-jerry\n", out)
}

func TestRootCommandStdin(t *testing.T) {
	out := runCommand(t, "Hello World\nCafé Münchner\n")
	assert.Equal(t, "hello-world\ncafe-munchner\n", out)
}

func TestWordsCommand(t *testing.T) {
	out := runCommand(t, "", "words", "Top", "10", "Lists")
	assert.Equal(t, "top\n10\nlists\n", out)
}
