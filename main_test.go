package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsontree/internal/config"
	"github.com/mcncl/jsontree/internal/errors"
	"github.com/mcncl/jsontree/internal/parser"
	"github.com/mcncl/jsontree/internal/value"
)

func TestRun_CompactOutput(t *testing.T) {
	// Save original CLI state
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	jsonData := `{
		"name": "John",
		"age": 30,
		"active": true
	}`

	tmpDir := t.TempDir()
	inPath := filepath.Join(tmpDir, "in.json")
	outPath := filepath.Join(tmpDir, "out.json")
	require.NoError(t, os.WriteFile(inPath, []byte(jsonData), 0644))

	CLI.Input = inPath
	CLI.Output = outPath

	ctx := &Context{Config: config.NewConfig()}
	require.NoError(t, run(ctx))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"John","age":30,"active":true}`+"\n", string(out))
}

func TestRun_CheckOnly(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	tmpDir := t.TempDir()
	inPath := filepath.Join(tmpDir, "in.json")
	outPath := filepath.Join(tmpDir, "out.json")
	require.NoError(t, os.WriteFile(inPath, []byte(`[1, 2, 3]`), 0644))

	CLI.Input = inPath
	CLI.Output = outPath

	cfg := config.NewConfig()
	cfg.Output.CheckOnly = true
	require.NoError(t, run(&Context{Config: cfg}))

	// Check mode must not write the document.
	_, err := os.Stat(outPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_InvalidInput(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	tmpDir := t.TempDir()
	inPath := filepath.Join(tmpDir, "in.json")
	require.NoError(t, os.WriteFile(inPath, []byte(`{"a":1,"a":2}`), 0644))

	CLI.Input = inPath
	CLI.Output = ""

	err := run(&Context{Config: config.NewConfig()})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateKey)
}

func TestRewriteKeys(t *testing.T) {
	root := parser.MustParseString(`{"user_name":"Jane","nested":{"home_address":{"zip_code":"90210"}},"items":[{"item_id":1}]}`)

	camel := rewriteKeys(root, "camel")
	assert.Equal(t,
		`{"userName":"Jane","nested":{"homeAddress":{"zipCode":"90210"}},"items":[{"itemId":1}]}`,
		value.Serialize(camel))

	kebab := rewriteKeys(root, "kebab")
	assert.Equal(t,
		`{"user-name":"Jane","nested":{"home-address":{"zip-code":"90210"}},"items":[{"item-id":1}]}`,
		value.Serialize(kebab))

	snake := rewriteKeys(parser.MustParseString(`{"userName":"Jane"}`), "snake")
	assert.Equal(t, `{"user_name":"Jane"}`, value.Serialize(snake))

	// "none" leaves the tree untouched.
	same := rewriteKeys(root, "none")
	assert.True(t, root.Equal(same))
}

func TestLoadConfig_CLIOverrides(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, ".jsontree.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("parser:\n  max_depth: 16\noutput:\n  key_case: snake\n"), 0644))

	CLI.Config = cfgPath
	CLI.MaxDepth = 64
	CLI.KeyCase = "camel"
	CLI.Check = false

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Parser.MaxDepth)
	assert.Equal(t, "camel", cfg.Output.KeyCase)
	assert.False(t, cfg.Output.CheckOnly)
}
