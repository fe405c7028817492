package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxur/oxur-ast/internal/sexp"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.sexp")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestRunVersion(t *testing.T) {
	cmd, buf := testCmd()
	require.NoError(t, runVersion(cmd, nil))

	output := buf.String()
	assert.Contains(t, output, "oxur-ast v")
	assert.Contains(t, output, "Schema version:")
	assert.Contains(t, output, "Go version:")
}

func TestRunParse(t *testing.T) {
	path := writeSource(t, "(Crate :items ())")

	cmd, buf := testCmd()
	require.NoError(t, runParse(cmd, []string{path}))
	assert.Equal(t, "(Crate\n  :items\n  ())\n", buf.String())
}

func TestRunParseSyntaxError(t *testing.T) {
	path := writeSource(t, "(Crate :items (")

	cmd, _ := testCmd()
	err := runParse(cmd, []string{path})
	require.Error(t, err)

	var parseErr *sexp.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, sexp.ErrUnterminatedList, parseErr.Kind)
}

func TestRunFmtWrite(t *testing.T) {
	path := writeSource(t, "(Crate    :items     ())")

	fmtWrite = true
	defer func() { fmtWrite = false }()

	cmd, buf := testCmd()
	require.NoError(t, runFmt(cmd, []string{path}))
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "(Crate\n  :items\n  ())\n", string(data))
}

func TestRunBuildSummary(t *testing.T) {
	path := writeSource(t, `(Crate :items ((Item :vis (Public)
	                                            :ident (Ident :name "main")
	                                            :kind (Fn :sig (FnSig)))))`)

	cmd, buf := testCmd()
	require.NoError(t, runBuild(cmd, []string{path}))

	output := buf.String()
	assert.Contains(t, output, "1 item(s)")
	assert.Contains(t, output, "main")
}

func TestRunBuildJSON(t *testing.T) {
	path := writeSource(t, "(Crate :items () :id 3)")

	buildJSON = true
	defer func() { buildJSON = false }()

	cmd, buf := testCmd()
	require.NoError(t, runBuild(cmd, []string{path}))
	assert.Contains(t, buf.String(), `"ID": 3`)
}

func TestRunBuildSchemaConstraint(t *testing.T) {
	path := writeSource(t, "(Crate :items ())")

	buildRequireSchema = ">= 0.1.0, < 1.0.0"
	defer func() { buildRequireSchema = "" }()

	cmd, _ := testCmd()
	require.NoError(t, runBuild(cmd, []string{path}))

	buildRequireSchema = ">= 2.0.0"
	err := runBuild(cmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not satisfy")
}

func TestPrintDiagPosition(t *testing.T) {
	_, err := sexp.ParseString("(foo")
	require.Error(t, err)

	var buf bytes.Buffer
	printDiag(&buf, inFile("main.sexp", err))
	assert.Contains(t, buf.String(), "main.sexp:1:1:")
	assert.Contains(t, buf.String(), "unterminated list")
}
