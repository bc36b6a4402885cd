package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `skills:
  - name: java
    category: Software
    negative_guards: ["script"]
  - name: javascript
    synonyms: [js]
    category: Software
  - name: sql
    category: Data
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skills.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))
	return path
}

func TestScoreCommand(t *testing.T) {
	out, err := runCLI(t, "score", "--catalog", writeCatalog(t),
		"--jd", "Looking for Java, JavaScript and SQL", "--skills", "java,javascript")
	require.NoError(t, err)

	var got scoreOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 67, got.Score)
	assert.Equal(t, []string{"java", "javascript"}, got.Matched)
	assert.Equal(t, []string{"sql"}, got.Missing)
	assert.Equal(t, []string{"java", "javascript", "sql"}, got.JDSkills)
}

func TestScoreCommand_RequiresJD(t *testing.T) {
	_, err := runCLI(t, "score", "--catalog", writeCatalog(t))
	assert.Error(t, err)
}

func TestScoreCommand_MissingCatalog(t *testing.T) {
	_, err := runCLI(t, "score", "--catalog", filepath.Join(t.TempDir(), "absent.yaml"), "--jd", "go")
	assert.Error(t, err)
}

func TestExtractCommand_RejectsUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe"), 0o644))
	_, err := runCLI(t, "extract", "--catalog", writeCatalog(t), path)
	assert.Error(t, err)
}
