package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"PORT", "POSTGRES_DSN", "AGENDA_BACKEND", "AGENDA_SEED_FILE", "AGENDA_LOG_LEVEL", "AGENDA_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListCmd(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Consulta Médica")
	assert.Contains(t, out, "Aniversário da Maria")

	out, err = run(t, "list", "médica")
	require.NoError(t, err)
	assert.Contains(t, out, "Consulta Médica")
	assert.NotContains(t, out, "Reunião")

	out, err = run(t, "list", "xyz")
	require.NoError(t, err)
	assert.Contains(t, out, "No appointments found")
}

func TestListCmdWithSeedFile(t *testing.T) {
	dir := t.TempDir()
	seed := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte("appointments:\n  - id: \"7\"\n    title: Yoga\n    date: sábado\n    time: \"08:00\"\n    type: personal\n"), 0o600))
	cfg := filepath.Join(dir, "agenda.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("seed_file: "+seed+"\n"), 0o600))

	out, err := run(t, "--config", cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Yoga")
	assert.NotContains(t, out, "Consulta")
}

func TestAddCmd(t *testing.T) {
	out, err := run(t, "add", "--title", "Dentista", "--date", "2024-02-01", "--time", "09:00", "--type", "health")
	require.NoError(t, err)
	assert.Contains(t, out, "Created appointment")

	_, err = run(t, "add", "--title", "Dentista")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")
}

func TestStatusCmds(t *testing.T) {
	out, err := run(t, "toggle", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 is now completed")

	out, err = run(t, "cancel", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "2 is now cancelled")

	_, err = run(t, "toggle", "99")
	require.ErrorContains(t, err, "no appointment with id 99")
}

func TestDeleteCmd(t *testing.T) {
	out, err := run(t, "delete", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 3")

	_, err = run(t, "delete", "99")
	require.ErrorContains(t, err, "no appointment with id 99")
}

func TestMigrateNeedsPostgres(t *testing.T) {
	_, err := run(t, "migrate")
	require.ErrorContains(t, err, "postgres backend")
}
