package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestMatchCommand(t *testing.T) {
	out, err := run(t, "match", "-r", "testdata/routes.txt", "/users/42", "/users/new", "/files/a/b", "/nope")
	assert.Nil(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, len(lines), 4)
	assert.Equal(t, lines[0], "/users/42\t/users/:id\tuser\tid=\"42\"")
	assert.Equal(t, lines[1], "/users/new\t/users/new\tnew-user")
	assert.Equal(t, lines[2], "/files/a/b\t/files/*path\tfiles\tpath=\"a/b\"")
	assert.Equal(t, lines[3], "/nope\tno match")
}

func TestMatchCommandNeedsPath(t *testing.T) {
	_, err := run(t, "match", "-r", "testdata/routes.txt")
	assert.True(t, err != nil)
}

func TestMatchCommandMissingRouteFile(t *testing.T) {
	_, err := run(t, "match", "-r", "testdata/missing.txt", "/")
	assert.True(t, err != nil)
}

func TestTreeCommand(t *testing.T) {
	out, err := run(t, "tree", "--routes", "testdata/routes.txt")
	assert.Nil(t, err)
	assert.Contains(t, out, "    new  → #2 /users/new (new-user)")
	assert.Contains(t, out, "  → #3 /files/*path (files)")
}

func TestHTMLCommand(t *testing.T) {
	out, err := run(t, "html", "-r", "testdata/routes.txt", "-t", "My routes", "/users/7")
	assert.Nil(t, err)
	assert.Contains(t, out, "<title>My routes</title>")
	assert.Contains(t, out, "/users/7")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version", "--short")
	assert.Nil(t, err)
	assert.Equal(t, strings.TrimSpace(out), version)
}
