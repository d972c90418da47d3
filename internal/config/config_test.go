package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/internal/format"
	"quill/internal/printer"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, TOMLName)
	writeFile(t, path, `
[format]
print_width = 100
indent_style = "tab"
indent_width = 4
line_ending = "crlf"
quote_style = "single"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, format.Options{
		PrintWidth:  100,
		IndentStyle: printer.IndentTab,
		IndentWidth: 4,
		LineEnding:  printer.CRLF,
		QuoteStyle:  format.QuoteSingle,
	}, cfg.Format)
}

func TestLoadYAMLKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, YAMLName)
	writeFile(t, path, "format:\n  print_width: 120\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	want := format.DefaultOptions()
	want.PrintWidth = 120
	assert.Equal(t, want, cfg.Format)
}

func TestEmptyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), YAMLName)
	writeFile(t, path, "\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, format.DefaultOptions(), cfg.Format)
}

func TestValidationNamesFileAndKey(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
		key     string
	}{
		{"width out of range", TOMLName, "[format]\nprint_width = 0\n", "print_width"},
		{"bad indent style", TOMLName, "[format]\nindent_style = \"both\"\n", "indent_style"},
		{"bad line ending", YAMLName, "format:\n  line_ending: cr\n", "line_ending"},
		{"bad quote style", YAMLName, "format:\n  quote_style: backtick\n", "quote_style"},
		{"indent too wide", TOMLName, "[format]\nindent_width = 40\n", "indent_width"},
		{"unknown toml key", TOMLName, "[format]\nsemi = false\n", "semi"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			writeFile(t, path, tc.content)

			_, err := Load(path)
			require.Error(t, err)
			var cerr *Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, path, cerr.Path)
			assert.Equal(t, tc.key, cerr.Key)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestSyntaxErrorsAreConfigErrors(t *testing.T) {
	for name, content := range map[string]string{
		TOMLName: "[format\n",
		YAMLName: "format: [\n",
	} {
		path := filepath.Join(t.TempDir(), name)
		writeFile(t, path, content)
		_, err := Load(path)
		var cerr *Error
		require.True(t, errors.As(err, &cerr), name)
		assert.Empty(t, cerr.Key)
	}
}

func TestUnknownYAMLKeyIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), YAMLName)
	writeFile(t, path, "format:\n  tabs: true\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tabs")
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, TOMLName), "[format]\nprint_width = 60\n")
	nested := filepath.Join(root, "a", "b")
	writeFile(t, filepath.Join(nested, "x.json"), "{}")

	path, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, TOMLName), path)

	cfg, err := Discover(filepath.Join(nested, "x.json"))
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Format.PrintWidth)
}

func TestTOMLWinsInSameDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, YAMLName), "format:\n  print_width: 10\n")
	writeFile(t, filepath.Join(dir, TOMLName), "[format]\nprint_width = 20\n")

	path, ok, err := Find(dir)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, TOMLName, filepath.Base(path))
}

func TestNearestConfigWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, TOMLName), "[format]\nprint_width = 20\n")
	sub := filepath.Join(root, "sub")
	writeFile(t, filepath.Join(sub, YAMLName), "format:\n  print_width: 30\n")

	cfg, err := Discover(sub)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Format.PrintWidth)
}
