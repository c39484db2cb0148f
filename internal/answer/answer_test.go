package answer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/database-playground/webhook-qualifier/internal/answer"
	"github.com/database-playground/webhook-qualifier/internal/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func TestCompute_Deterministic(t *testing.T) {
	first := answer.Compute()
	for range 10 {
		assert.Equal(t, first, answer.Compute())
	}
	assert.Equal(t, answer.FinalQuery, first)
}

func TestFinalQuery_Shape(t *testing.T) {
	assert.Contains(t, answer.FinalQuery, "RANK() OVER(PARTITION BY DEPARTMENT_ID ORDER BY DOB DESC)")
	assert.Contains(t, answer.FinalQuery, "JOIN DEPARTMENT d ON e.DEPARTMENT_ID = d.DEPARTMENT_ID")
	assert.True(t, strings.HasSuffix(answer.FinalQuery, "ORDER BY e.EMP_ID DESC;"))
}

func TestVerify(t *testing.T) {
	db := testhelper.NewMemoryDB(t)

	result, err := answer.Verify(context.Background(), db)
	require.NoError(t, err)

	assert.Equal(t, []string{"EMP_ID", "FIRST_NAME", "LAST_NAME", "DEPARTMENT_NAME", "YOUNGER_EMPLOYEES_COUNT"}, result.Columns)
	assert.Equal(t, [][]string{
		{"6", "Olivia", "Davis", "HR", "0"},
		{"5", "David", "Jones", "Finance", "1"},
		{"4", "Emily", "Brown", "HR", "1"},
		{"3", "Michael", "Smith", "Engineering", "0"},
		{"2", "Sarah", "Johnson", "Finance", "0"},
		{"1", "John", "Williams", "Engineering", "1"},
	}, result.Rows)
}

func TestVerify_FixtureAlreadyLoaded(t *testing.T) {
	db := testhelper.NewMemoryDB(t)

	_, err := answer.Verify(context.Background(), db)
	require.NoError(t, err)

	_, err = answer.Verify(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load fixture")
}
