package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNumeric(t *testing.T) {
	cases := map[string]bool{
		"25":  true,
		"0":   true,
		"007": true,
		"":    false,
		"25a": false,
		"a25": false,
		"2.5": false,
		"-25": false,
		" 25": false,
		"٢٥":  false, // non-ASCII digits take the name branch
	}

	for input, want := range cases {
		assert.Equal(t, want, isNumeric(input), "isNumeric(%q)", input)
	}
}

func TestResolveQueryAllDigitIdentifierAddressesPrimaryKey(t *testing.T) {
	repo := NewProgramRepository(nil)

	query, err := repo.resolveQuery("25")
	require.NoError(t, err)

	sql, args, err := query.ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT program_id, program_name, level, duration_years, faculty_id, description, career_prospects "+
			"FROM programs WHERE program_id = $1 LIMIT 1",
		sql)
	assert.Equal(t, []interface{}{int64(25)}, args)
}

func TestResolveQueryNameIdentifierMatchesSubstring(t *testing.T) {
	repo := NewProgramRepository(nil)

	query, err := repo.resolveQuery("Computer Science")
	require.NoError(t, err)

	sql, args, err := query.ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT program_id, program_name, level, duration_years, faculty_id, description, career_prospects "+
			"FROM programs WHERE program_name ILIKE $1 ORDER BY program_id ASC LIMIT 1",
		sql)
	assert.Equal(t, []interface{}{"%Computer Science%"}, args)
}

func TestResolveQueryMixedIdentifierStaysOnNameBranch(t *testing.T) {
	repo := NewProgramRepository(nil)

	query, err := repo.resolveQuery("program 25")
	require.NoError(t, err)

	sql, args, err := query.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "program_name ILIKE $1")
	assert.NotContains(t, sql, "program_id =")
	assert.Equal(t, []interface{}{"%program 25%"}, args)
}

func TestResolveQueryOverflowingDigitsIsNotFound(t *testing.T) {
	repo := NewProgramRepository(nil)

	_, err := repo.resolveQuery("99999999999999999999")
	assert.ErrorIs(t, err, ErrProgramNotFound)
}
