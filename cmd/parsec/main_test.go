package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/parsec/config"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTry(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"uint":        {[]string{"uint", "3420abc"}, "value:    3420\nconsumed: 4\nrest:     \"abc\"\n"},
		"many1":       {[]string{"many1:tag:a", "aab"}, "value:    [a a]\nconsumed: 2\nrest:     \"b\"\nexpected: \"a\"\n"},
		"recoverable": {[]string{"int", "x"}, "failed:   recoverable\nexpected: \"integer\"\n"},
		"opt":         {[]string{"opt:hex", "zz"}, "value:    None\nconsumed: 0\nrest:     \"zz\"\nexpected: \"nonnegative hexadecimal\"\n"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, newTryCmd(), test.args...)
			require.NoError(t, err)
			assert.Equal(t, test.want, out)
		})
	}
}

func TestTryComplete(t *testing.T) {
	out, err := run(t, newTryCmd(), "--complete", "signed-hex", "-ff")
	require.NoError(t, err)
	assert.Equal(t, "value:    -255\n", out)

	_, err = run(t, newTryCmd(), "--complete", "uint", "12x")
	require.Error(t, err)
	assert.Equal(t, `offset 2: expected "EOF" (remaining "x")`, err.Error())
}

func TestParserForErrors(t *testing.T) {
	for _, name := range []string{"float", "tag:", "regex:(", "many0:nope"} {
		_, err := parserFor(name)
		assert.Error(t, err, name)
	}
}

func TestParseAndFmt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.kv")
	require.NoError(t, os.WriteFile(path, []byte("b=#FF;a=[1,\"x\"];"), 0o644))

	out, err := run(t, newParseCmd(), "-f", "kv", path)
	require.NoError(t, err)
	assert.Equal(t, "b = #ff;\na = [1, \"x\"];\n", out)

	out, err = run(t, newParseCmd(), path)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"key": "b", "value": {"kind": "hex", "int": 255}},
		{"key": "a", "value": {"kind": "list", "items": [{"kind": "int", "int": 1}, {"kind": "string", "string": "x"}]}}
	]`, out)

	_, err = run(t, newFmtCmd(), "-w", path)
	require.NoError(t, err)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "b = #ff;\na = [1, \"x\"];\n", string(written))
}

func TestParseReportsPosition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.kv")
	require.NoError(t, os.WriteFile(path, []byte("a = 1;\nb = [1"), 0o644))

	_, err := run(t, newParseCmd(), path)
	require.Error(t, err)
	assert.Equal(t, path+`:2:7: expected one of ",", "]"`, err.Error())
}

func TestCheck(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "good.kv"), []byte("a = 1;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.kv"), []byte("a = 1"), 0o644))

	a := &app{cfg: config.Default()}

	out, err := run(t, newCheckCmd(a), root)
	require.Error(t, err)
	assert.Equal(t, filepath.Join(root, "bad.kv")+":1:6: expected \";\"\n", out)

	_, err = run(t, newCheckCmd(a), filepath.Join(root, "good.kv"))
	assert.NoError(t, err)
}

func TestGrammar(t *testing.T) {
	out, err := run(t, newGrammarCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Entry    = Key \"=\" Value \";\" .")

	out, err = run(t, newGrammarCmd(), "check")
	require.NoError(t, err)
	assert.Equal(t, "kv grammar ok\n", out)

	path := filepath.Join(t.TempDir(), "g.ebnf")
	require.NoError(t, os.WriteFile(path, []byte("S = T .\n"), 0o644))
	_, err = run(t, newGrammarCmd(), "check", "--start", "S", path)
	assert.Error(t, err)
}
