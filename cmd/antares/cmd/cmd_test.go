package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const tutorialDir = "../../../contentdb/testdata/tutorial"

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	validateInfo = false
	statsJSON = false
	fmtWrite = false
	schemaOut = ""
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	rootCmd.SetArgs(nil)
	return buf.String(), err
}

func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitUsage
}

func TestValidateTutorial(t *testing.T) {
	out, err := runCommand(t, "validate", tutorialDir)
	require.NoError(t, err)
	require.Contains(t, out, "0 errors")
}

func TestValidateMissingDirectory(t *testing.T) {
	_, err := runCommand(t, "validate", filepath.Join(t.TempDir(), "nope"))
	require.Equal(t, ExitLoadFailed, exitCode(err))
}

func TestStatsJSON(t *testing.T) {
	out, err := runCommand(t, "stats", "--json", tutorialDir)
	require.NoError(t, err)
	require.Contains(t, out, `"classes": 3`)
	require.Contains(t, out, `"quests": 4`)
}

func TestFmtCanonicalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.ron")
	require.NoError(t, os.WriteFile(path, []byte("(b:2,a:1,)"), 0o644))

	out, err := runCommand(t, "fmt", path)
	require.NoError(t, err)
	require.Equal(t, "(\n    b: 2,\n    a: 1,\n)\n", out)
}

func TestFmtWriteInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.ron")
	require.NoError(t, os.WriteFile(path, []byte("(a:1)"), 0o644))

	_, err := runCommand(t, "fmt", "-w", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "(\n    a: 1,\n)\n", string(data))
}

func TestFmtRejectsBrokenInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.ron")
	require.NoError(t, os.WriteFile(path, []byte("(a: ???)"), 0o644))

	_, err := runCommand(t, "fmt", path)
	require.Equal(t, ExitLoadFailed, exitCode(err))
}

func TestMergeOverlayWins(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.ron")
	overlay := filepath.Join(dir, "overlay.ron")
	require.NoError(t, os.WriteFile(base, []byte("(hp: 10, name: \"rat\")"), 0o644))
	require.NoError(t, os.WriteFile(overlay, []byte("(hp: 20)"), 0o644))

	out, err := runCommand(t, "merge", base, overlay)
	require.NoError(t, err)
	require.Contains(t, out, "hp: 20")
	require.Contains(t, out, "name: \"rat\"")
}

func TestMergeConflict(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.ron")
	overlay := filepath.Join(dir, "overlay.ron")
	require.NoError(t, os.WriteFile(base, []byte("(hp: 10)"), 0o644))
	require.NoError(t, os.WriteFile(overlay, []byte("(hp: [1, 2])"), 0o644))

	_, err := runCommand(t, "merge", base, overlay)
	require.Equal(t, ExitFindings, exitCode(err))
}

func TestSchemaWritesFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, "schema", "-o", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, len(schemaTypes))

	data, err := os.ReadFile(filepath.Join(dir, "spell.schema.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), "\"properties\"")
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := ParseEnv()
	require.NoError(t, err)
	require.Equal(t, []string{"console"}, cfg.LogSinks)

	bands := cfg.Bands()
	require.Equal(t, 1, bands.WeaponAvgMin)
	require.Equal(t, 30, bands.WeaponAvgMax)
}

func TestConfigOverrides(t *testing.T) {
	t.Setenv("ANTARES_BAND_WEAPON_MAX", "50")
	t.Setenv("ANTARES_LOG_LEVEL", "debug")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	require.Equal(t, 50, cfg.Bands().WeaponAvgMax)
	require.Equal(t, "debug", cfg.LogLevel)
}
