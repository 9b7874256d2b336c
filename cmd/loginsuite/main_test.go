package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	app := &cli.App{
		Name:     "loginsuite",
		Writer:   &out,
		Commands: []*cli.Command{DataCommand()},
	}
	err := app.Run(append([]string{"loginsuite"}, args...))
	return out.String(), err
}

func TestDataCommand_PrintsRecords(t *testing.T) {
	out, err := runApp(t, "data", "--file", filepath.Join("..", "..", "testdata", "login.csv"))

	require.NoError(t, err)
	for _, id := range []string{"TC-1", "TC-2", "TC-3", "TC-4", "TC-5", "TC-6"} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "Epic sadface: Sorry, this user has been locked out.")
}

func TestDataCommand_RejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "login.csv")
	data := "test_case_id,username,password,error_message\nTC-1,a,b,\nTC-1,c,d,\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := runApp(t, "data", "--file", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TC-1")
}
