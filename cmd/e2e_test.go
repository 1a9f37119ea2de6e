package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/datablock/internal/iotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh command tree and returns what it wrote to its
// output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCommandsSQLite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping command test in short mode")
	}
	assert := assert.New(t)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DATABLOCK_DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABLOCK_DATABASE_PATH", filepath.Join(home, "test.sqlite"))

	_, err := run(t, "", "list")
	require.Error(t, err, "no schema yet")

	_, err = run(t, "", "create")
	require.NoError(t, err)

	dir := t.TempDir()
	doc := iotesting.CompanyInfoDoc(iotesting.AcmeDUNS, "Acme Co", 3)
	iotesting.WriteFile(t, dir, "acme.json", string(iotesting.JSON(t, doc)))
	_, err = run(t, "", "load", "--quiet", dir)
	require.NoError(t, err)

	out, err := run(t, "", "show", iotesting.AcmeDUNS, "--counts")
	require.NoError(t, err)
	var counts map[string]int64
	require.NoError(t, json.Unmarshal([]byte(out), &counts))
	assert.Equal(int64(3), counts["industry_codes"])
	assert.Equal(int64(1), counts["source_documents"])

	out, err = run(t, "", "list", "--name", "ACME")
	require.NoError(t, err)
	assert.Contains(out, iotesting.AcmeDUNS)

	_, err = run(t, "", "list", "--group", "taxa")
	assert.Error(err)

	_, err = run(t, "", "show", "000000001")
	assert.Error(err)

	// declined prompt keeps the data
	_, err = run(t, "no\n", "create")
	require.NoError(t, err)
	out, err = run(t, "", "show", iotesting.AcmeDUNS, "--counts")
	require.NoError(t, err)
	assert.Contains(out, "industry_codes")

	_, err = run(t, "", "migrate")
	require.NoError(t, err)

	_, err = run(t, "", "create", "--force")
	require.NoError(t, err)
	_, err = run(t, "", "show", iotesting.AcmeDUNS)
	assert.Error(err)
}
