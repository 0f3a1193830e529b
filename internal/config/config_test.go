package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ">> ", cfg.Prompt)
	assert.Empty(t, cfg.History)
	assert.Empty(t, cfg.Prelude)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `prompt: "lisp> "
history: /tmp/iamlisp-history
prelude:
  - prelude.lisp
  - extra.lisp
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lisp> ", cfg.Prompt)
	assert.Equal(t, "/tmp/iamlisp-history", cfg.History)
	assert.Equal(t, []string{"prelude.lisp", "extra.lisp"}, cfg.Prelude)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history: h.txt\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ">> ", cfg.Prompt)
	assert.Equal(t, "h.txt", cfg.History)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
