package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootRunsMenu(t *testing.T) {
	out, err := execute(t, "1\nDune\nHerbert\n1965\n4\n6\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Book 'Dune' added successfully!")
	assert.Contains(t, out, "Herbert")
	assert.Contains(t, out, "Thanks for using the library manager!")
}

func TestRootWithDuckDBAndFrench(t *testing.T) {
	out, err := execute(t, "1\nDune\nHerbert\n1965\n2\nDUNE\n5\n6\n", "--store", "duckdb", "--lang", "fr")

	require.NoError(t, err)
	assert.Contains(t, out, "Livre 'Dune' ajouté avec succès !")
	assert.Contains(t, out, "Livre 'DUNE' emprunté avec succès !")
	assert.Contains(t, out, "Aucun livre disponible.")
}

func TestRootRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "6\n", "--store", "postgres")
	assert.Error(t, err)

	_, err = execute(t, "6\n", "--log-level", "loud")
	assert.Error(t, err)
}

func TestRootFailsWhenInputEnds(t *testing.T) {
	_, err := execute(t, "4\n")
	assert.Error(t, err)
}
