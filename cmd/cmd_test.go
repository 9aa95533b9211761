package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["table"])
	assert.True(t, names["version"])

	sub := map[string]bool{}
	for _, c := range tableCmd.Commands() {
		sub[c.Name()] = true
	}
	for _, name := range []string{"status", "create", "clear", "migrate"} {
		assert.True(t, sub[name], name)
	}

	for _, flag := range []string{"season", "db-backend", "db-connect", "table", "api-base-url", "output", "metrics-file", "precision"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
	assert.NotNil(t, tableMigrateCmd.Flags().Lookup("target-version"))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "combine CLI")
	assert.Contains(t, out.String(), "Version: "+version)
}

func TestStoreOpener(t *testing.T) {
	c := &contract.Config{
		Backend:   schema.SQLiteBackend,
		DBConnect: filepath.Join(t.TempDir(), "combine.db"),
		Table:     schema.DefaultTable,
	}
	s, err := storeOpener(c)(context.Background())
	require.NoError(t, err)
	assert.NoError(t, s.Close())

	c.Table = "bad name"
	_, err = storeOpener(c)(context.Background())
	assert.Error(t, err)
}

func TestCheckMigrateTable(t *testing.T) {
	assert.NoError(t, checkMigrateTable(schema.DefaultTable))

	err := checkMigrateTable("combine_2019")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "combine_2019")
}
