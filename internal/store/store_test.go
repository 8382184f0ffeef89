package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmvnavigator/dmvnav/internal/bank"
)

type row struct {
	id          int
	category    string
	question    string
	options     string
	correct     int
	explanation string
}

// writeTestDB creates a SQLite bank at a temp path with the given rows.
func writeTestDB(t *testing.T, rows []row) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(Schema)
	require.NoError(t, err)
	for _, r := range rows {
		_, err := db.Exec(
			`INSERT INTO questions (id, category, question, options, correct, explanation) VALUES (?, ?, ?, ?, ?, ?)`,
			r.id, r.category, r.question, r.options, r.correct, r.explanation)
		require.NoError(t, err)
	}
	return path
}

var sampleRows = []row{
	{1, "Signs", "Octagon?", `["Yield","Stop"]`, 1, "Stop signs are octagons."},
	{2, "Laws", "Limit?", `["25","35","45"]`, 0, ""},
	{3, "Signs", "Triangle?", `["Yield","Stop"]`, 0, ""},
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.db"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_Bank(t *testing.T) {
	s, err := Open(writeTestDB(t, sampleRows))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	b, err := s.Bank(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []string{"Signs", "Laws"}, b.Categories())

	q, ok := b.Question(1)
	require.True(t, ok)
	assert.Equal(t, []string{"Yield", "Stop"}, q.Options)
	assert.Equal(t, "Stop signs are octagons.", q.Explanation)
}

func TestStore_QueryOnly(t *testing.T) {
	s, err := Open(writeTestDB(t, sampleRows))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.DB().Exec(`DELETE FROM questions`)
	assert.Error(t, err)

	var on int
	require.NoError(t, s.DB().QueryRow("PRAGMA query_only").Scan(&on))
	assert.Equal(t, 1, on)
}

func TestStore_BadOptionsJSON(t *testing.T) {
	s, err := Open(writeTestDB(t, []row{{1, "A", "Q?", `not json`, 0, ""}}))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.Bank(context.Background())
	assert.ErrorIs(t, err, bank.ErrMalformed)
}

func TestStore_SemanticValidation(t *testing.T) {
	s, err := Open(writeTestDB(t, []row{{1, "A", "Q?", `["x","y"]`, 3, ""}}))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.Bank(context.Background())
	var verr *bank.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Problems[0], "correct index 3 out of range")
}

func TestLoadBank_Sources(t *testing.T) {
	ctx := context.Background()

	embedded, err := LoadBank(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 39, embedded.Len())

	sqliteBank, err := LoadBank(ctx, writeTestDB(t, sampleRows))
	require.NoError(t, err)
	assert.Equal(t, 3, sqliteBank.Len())

	jsonPath := filepath.Join(t.TempDir(), "bank.JSON")
	doc := `{"version":1,"questions":[{"id":9,"category":"C","question":"Q?","options":["a","b"],"correct":1}]}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(doc), 0o644))
	jsonBank, err := LoadBank(ctx, jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, jsonBank.Categories())

	_, err = LoadBank(ctx, filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
