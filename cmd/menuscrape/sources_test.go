package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/menuscrape"
	main "github.com/fwojciec/menuscrape/cmd/menuscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  &bytes.Buffer{},
		Catalog: menuscrape.DefaultCatalog(),
	}

	err := (&main.SourcesCmd{}).Run(deps)

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "Millennium")
	assert.Contains(t, output, "Kindred.pdf")
	assert.Contains(t, output, "BiNeviDeli.jpg")
	assert.Contains(t, output, "range-sliced")
	assert.Contains(t, output, "[9,14,18,19,34]")
}

func TestMain_Run_Sources(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	// Unwritable path; the sources command must not open the database.
	m.DBPath = "/nonexistent/dir/menuscrape.db"
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"sources"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "GraciasMadre")
}
