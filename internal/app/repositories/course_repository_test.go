package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseIDMatchIgnoresCase(t *testing.T) {
	sql, args, err := courseIDMatch("cs101").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "LOWER(course_id) = LOWER(?)", sql)
	assert.Equal(t, []interface{}{"cs101"}, args)
}

func TestCourseExistenceQueryShape(t *testing.T) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	sql, args, err := sb.Select("1").
		From("courses").
		Where(courseIDMatch("CS101")).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT EXISTS ( SELECT 1 FROM courses WHERE LOWER(course_id) = LOWER($1) LIMIT 1 )", sql)
	assert.Equal(t, []interface{}{"CS101"}, args)
}
