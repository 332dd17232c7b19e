package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with the given args against the
// catalog file at path and returns stdout.
func runCLI(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--file", path))
	err := cmd.Execute()
	return out.String(), err
}

func Test_CLI_AddListSellValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	// given: one electronics product
	out, err := runCLI(t, path, "add",
		"--id", "E1", "--category", "electronics", "--name", "Phone",
		"--price", "500", "--qty", "5", "--warranty", "12", "--brand", "Acme")
	require.NoError(t, err)
	assert.Contains(t, out, "added:")
	assert.Contains(t, out, "warranty 12 months")

	// listing reads the file back
	out, err = runCLI(t, path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "E1: Phone (Acme)")

	// when: sell 2
	out, err = runCLI(t, path, "sell", "E1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "3 left in stock")

	// then: the total value reflects the sale
	out, err = runCLI(t, path, "value")
	require.NoError(t, err)
	assert.Contains(t, out, "total value: 1500.00")
}

func Test_CLI_SellMoreThanStock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	_, err := runCLI(t, path, "add",
		"--id", "E1", "--category", "electronics", "--name", "Phone",
		"--price", "500", "--qty", "5")
	require.NoError(t, err)

	// when: oversell
	_, err = runCLI(t, path, "sell", "E1", "10")
	require.Error(t, err)

	// then: the file still holds the original quantity
	out, err := runCLI(t, path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "qty 5")
}

func Test_CLI_AddGroceryRequiresExpiry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	_, err := runCLI(t, path, "add",
		"--category", "grocery", "--name", "Milk", "--price", "2.5", "--qty", "10")
	require.Error(t, err)

	_, err = runCLI(t, path, "add",
		"--category", "grocery", "--name", "Milk", "--price", "2.5", "--qty", "10",
		"--expiry", "2026-12-31")
	assert.NoError(t, err)
}

func Test_CLI_ListEmptyCatalog(t *testing.T) {
	// a missing catalog file behaves like an empty catalog
	path := filepath.Join(t.TempDir(), "inventory.json")
	out, err := runCLI(t, path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no products")
}
