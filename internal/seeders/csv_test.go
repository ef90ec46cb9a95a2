package seeders

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, fsys fstest.MapFS, name string, columns ...string) ([]Record, error) {
	t.Helper()
	var recs []Record
	for rec, err := range Rows(fsys, name, columns...) {
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func TestRows_HeaderNamesColumns(t *testing.T) {
	fsys := fstest.MapFS{
		"loans.csv": {Data: []byte("\ufeffidentification, isbn,loan_date\n1001,111,2024-01-01\n1002,222,2024-01-02\n")},
	}

	recs, err := collect(t, fsys, "loans.csv")
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{"identification": "1001", "isbn": "111", "loan_date": "2024-01-01"},
		{"identification": "1002", "isbn": "222", "loan_date": "2024-01-02"},
	}, recs)
}

func TestRows_ExplicitColumnsSkipHeader(t *testing.T) {
	fsys := fstest.MapFS{
		"books.csv": {Data: []byte("ISBN,Book-Title,Year,Book-Author\n111,Dune,1965,Frank Herbert\n")},
	}

	recs, err := collect(t, fsys, "books.csv", "isbn", "title", "release_year", "author")
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{"isbn": "111", "title": "Dune", "release_year": "1965", "author": "Frank Herbert"},
	}, recs)
}

func TestRows_ShortRowLeavesFieldsUnset(t *testing.T) {
	fsys := fstest.MapFS{
		"users.csv": {Data: []byte("name,identification,email,phone\nAna,1001\n")},
	}

	recs, err := collect(t, fsys, "users.csv")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "1001", recs[0]["identification"])
	assert.Empty(t, recs[0]["email"])
}

func TestRows_Restartable(t *testing.T) {
	fsys := fstest.MapFS{
		"users.csv": {Data: []byte("name\nAna\nBen\n")},
	}
	seq := Rows(fsys, "users.csv")

	count := func() int {
		n := 0
		for _, err := range seq {
			require.NoError(t, err)
			n++
		}
		return n
	}
	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count())
}

func TestRows_StopEarly(t *testing.T) {
	fsys := fstest.MapFS{
		"users.csv": {Data: []byte("name\nAna\nBen\nCid\n")},
	}

	var names []string
	for rec, err := range Rows(fsys, "users.csv") {
		require.NoError(t, err)
		names = append(names, rec["name"])
		if len(names) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"Ana", "Ben"}, names)
}

func TestRows_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		recs, err := collect(t, fstest.MapFS{}, "users.csv")
		assert.Error(t, err)
		assert.Empty(t, recs)
	})

	t.Run("malformed row is the last element", func(t *testing.T) {
		fsys := fstest.MapFS{
			"users.csv": {Data: []byte("name\nAna\n\"Ben\n")},
		}
		recs, err := collect(t, fsys, "users.csv")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "users.csv")
		assert.Len(t, recs, 1)
	})

	t.Run("empty file", func(t *testing.T) {
		recs, err := collect(t, fstest.MapFS{"users.csv": {Data: nil}}, "users.csv")
		assert.NoError(t, err)
		assert.Empty(t, recs)
	})
}
