package repair

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFixes = []Replacement{
	{
		Old: `        $env:Path = [E]::Get("Path", "Machine") + ";" +
 [E]::Get("Path", "User")`,
		New: `        $env:Path = [E]::Get("Path", "Machine") + ";" + [E]::Get("Path", "User")`,
	},
	{
		Old: `            $env:Path = [E]::Get("Path", "Machine") + ";" +
 [E]::Get("Path", "User")`,
		New: `            $env:Path = [E]::Get("Path", "Machine") + ";" + [E]::Get("Path", "User")`,
	},
}

func TestApplyReplacements(t *testing.T) {
	t.Run("replaces an exact occurrence", func(t *testing.T) {
		content := "# before\n" + testFixes[0].Old + "\n# after\n"

		got, n := applyReplacements(content, testFixes)

		assert.Equal(t, 1, n)
		assert.Equal(t, "# before\n"+testFixes[0].New+"\n# after\n", got)
	})

	t.Run("replaces every known occurrence", func(t *testing.T) {
		content := testFixes[0].Old + "\n" + testFixes[1].Old + "\n"

		got, n := applyReplacements(content, testFixes)

		assert.Equal(t, 2, n)
		assert.Equal(t, testFixes[0].New+"\n"+testFixes[1].New+"\n", got)
	})

	t.Run("counts repeated occurrences of one pair", func(t *testing.T) {
		content := testFixes[0].Old + "\n" + testFixes[0].Old + "\n"

		got, n := applyReplacements(content, testFixes)

		assert.Equal(t, 2, n)
		assert.Equal(t, testFixes[0].New+"\n"+testFixes[0].New+"\n", got)
	})

	t.Run("indentation drift is a silent no-op", func(t *testing.T) {
		// Four spaces of indent instead of eight: not byte-identical, so the
		// pair must not fire.
		content := "    $env:Path = [E]::Get(\"Path\", \"Machine\") + \";\" +\n [E]::Get(\"Path\", \"User\")\n"

		got, n := applyReplacements(content, testFixes)

		assert.Equal(t, 0, n)
		assert.Equal(t, content, got)
	})

	t.Run("idempotent after repair", func(t *testing.T) {
		content := testFixes[0].Old + "\n"

		once, n := applyReplacements(content, testFixes)
		require.Equal(t, 1, n)

		twice, n := applyReplacements(once, testFixes)
		assert.Equal(t, 0, n)
		assert.Equal(t, once, twice)
	})
}

func TestReplaceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packIso.ps1")
	content := "# generated\n" + testFixes[0].Old + "\nWrite-Host done\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	res, err := ReplaceFile(path, testFixes)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Replacements)
	assert.Equal(t, 4, res.LinesBefore)
	assert.Equal(t, 3, res.LinesAfter)
	assert.True(t, res.Changed)
	assert.NotEqual(t, res.OldHash, res.NewHash)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# generated\n"+testFixes[0].New+"\nWrite-Host done\n", string(data))
}

func TestReplaceFileNoMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packIso.ps1")
	content := "param([string]$IsoPath)\nWrite-Host 'nothing to fix'\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	res, err := ReplaceFile(path, testFixes)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Replacements)
	assert.False(t, res.Changed)
	assert.Equal(t, res.OldHash, res.NewHash)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestReplaceFileMissing(t *testing.T) {
	_, err := ReplaceFile(filepath.Join(t.TempDir(), "packIso.ps1"), testFixes)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
