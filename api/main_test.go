package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestHashPasswordCommand(t *testing.T) {
	hash := strings.TrimSpace(execute(t, "hash-password", "s3cret!"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret!")))
}

func TestInitDBAndReconcile_SQLite(t *testing.T) {
	data, err := filepath.Abs(filepath.Join("..", "data"))
	require.NoError(t, err)

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(dir, "dashboard.db"))
	t.Setenv("LOG_LEVEL", "error")

	out := execute(t, "init-db", "--data", data)
	assert.Contains(t, out, "loaded 3 stores")

	out = execute(t, "reconcile")
	assert.Contains(t, out, "reconciled 1200 orders")
}
