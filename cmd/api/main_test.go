package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"talentflow-backend/internal/repository/sqlstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"serve", "seed", "migrate", "version"} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, found.Name())
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "talentflow dev"))
}

func TestSeedCmd_RunsOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "talentflow.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", dbPath)
	t.Setenv("SEED_RANDOM", "42")
	t.Setenv("LOG_LEVEL", "error")

	out, err := runCmd(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema up to date")

	out, err = runCmd(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seed data generated.")

	out, err = runCmd(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "already seeded")

	store, err := sqlstore.Open(context.Background(), sqlstore.Options{Driver: sqlstore.DriverSQLite, Path: dbPath})
	require.NoError(t, err)
	defer store.Close()
	n, err := store.Repositories().Jobs.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 25, n)
}

func TestSeedCmd_BadConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	_, err := runCmd(t, "seed")
	assert.Error(t, err)
}

func TestNewRand_IsDeterministicForFixedSeed(t *testing.T) {
	assert.Equal(t, newRand(7).Uint64(), newRand(7).Uint64())
}
