package survey

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture marshals rows to a JSON file under a temp dir and returns
// its path.
func writeFixture(t *testing.T, rows []map[string]any) string {
	t.Helper()
	b, err := json.Marshal(rows)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

// loadFixture builds an Analysis over the given rows and loads it.
func loadFixture(t *testing.T, rows []map[string]any) *Analysis {
	t.Helper()
	a := New(writeFixture(t, rows))
	require.NoError(t, a.Load())
	return a
}

// fullRow returns a well-formed submission; overrides replace fields.
func fullRow(overrides map[string]any) map[string]any {
	row := map[string]any{
		"age": 30, "gender": "M", "email": "subject@example.com",
		"q1": 1, "q2": 2, "q3": 3, "q4": 4, "q5": 5,
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func TestLoad(t *testing.T) {
	a := loadFixture(t, []map[string]any{
		fullRow(nil),
		fullRow(map[string]any{"age": "unknown", "q3": nil}),
		{"gender": "F"}, // everything else absent
	})
	require.NotNil(t, a.Table())
	assert.Equal(t, 3, a.Table().Len())

	// Raw values survive load untouched; absent fields are nil.
	assert.Equal(t, "unknown", a.Table().Records[1].Age)
	assert.Nil(t, a.Table().Records[1].Q[2])
	assert.Nil(t, a.Table().Records[2].Email)
	assert.Equal(t, "F", a.Table().Records[2].Gender)
}

func TestLoadMissingFile(t *testing.T) {
	a := New(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, a.Load())
	assert.Nil(t, a.Table())
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	a := New(path)
	require.Error(t, a.Load())
}

func TestLoadWrongShape(t *testing.T) {
	// A top-level object instead of an array of objects is a structural
	// failure, not a row anomaly.
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"age": 30}`), 0o644))
	a := New(path)
	require.Error(t, a.Load())
}

func TestOperationsBeforeLoad(t *testing.T) {
	a := New("never-loaded.json")
	_, _, err := a.AgeDistribution()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = a.FilterValidEmails()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, _, err = a.ImputeMissing()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = a.Score(DefaultMaxMissing)
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = a.CorrelateGenderAge()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

// Running the whole pipeline never changes the loaded row count; only the
// email filter shrinks anything, and only in its returned copy.
func TestPipelinePreservesRowCount(t *testing.T) {
	rows := []map[string]any{
		fullRow(nil),
		fullRow(map[string]any{"email": "notanemail", "q2": nil}),
		fullRow(map[string]any{"age": "unknown", "gender": "F"}),
		fullRow(map[string]any{"q1": nil, "q4": nil}),
	}
	a := loadFixture(t, rows)

	counts, _, err := a.AgeDistribution()
	require.NoError(t, err)
	sum := 0
	for _, c := range counts {
		sum += c
	}
	assert.Equal(t, 3, sum)

	filtered, err := a.FilterValidEmails()
	require.NoError(t, err)
	assert.Equal(t, 3, filtered.Len())

	_, _, err = a.ImputeMissing()
	require.NoError(t, err)
	_, err = a.Score(DefaultMaxMissing)
	require.NoError(t, err)
	_, err = a.CorrelateGenderAge()
	require.NoError(t, err)

	assert.Equal(t, len(rows), a.Table().Len())
}
