package cmd

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/htmlcode/htmlparser"
)

func TestLoadConfig(t *testing.T) {
	memfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memfs, "htmlcode.yaml", []byte("ignore:\n  - duplicate-attribute\n  - missing-semicolon-after-character-reference\n"), 0o644))

	cfg, err := LoadConfig(memfs)
	require.NoError(t, err)
	assert.Equal(t, []string{"duplicate-attribute", "missing-semicolon-after-character-reference"}, cfg.Ignore)

	ignored, err := cfg.IgnoredKinds()
	require.NoError(t, err)
	assert.True(t, ignored[htmlparser.DuplicateAttribute])
	assert.True(t, ignored[htmlparser.MissingSemicolonAfterCharacterReference])
	assert.False(t, ignored[htmlparser.EofInTag])
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(afero.NewMemMapFs())
	require.NoError(t, err)
	assert.Empty(t, cfg.Ignore)
}

func TestIgnoredKindsUnknownCode(t *testing.T) {
	cfg := Config{Ignore: []string{"no-such-code"}}
	_, err := cfg.IgnoredKinds()
	assert.ErrorContains(t, err, "no-such-code")
}
