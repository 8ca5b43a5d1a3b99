package database

import (
	"testing"

	"github.com/go-gorm/caches/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   int
	Name string
}

func TestMemoryCacher(t *testing.T) {
	c := &memoryCacher{}
	ctx := t.Context()

	miss, err := c.Get(ctx, "k", &caches.Query[any]{Dest: &[]row{}})
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, c.Store(ctx, "k", &caches.Query[any]{
		Dest:         []row{{ID: 1, Name: "shoe"}},
		RowsAffected: 1,
	}))

	var dest []row
	hit, err := c.Get(ctx, "k", &caches.Query[any]{Dest: &dest})
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, int64(1), hit.RowsAffected)
	assert.Equal(t, []row{{ID: 1, Name: "shoe"}}, dest)

	require.NoError(t, c.Invalidate(ctx))
	miss, err = c.Get(ctx, "k", &caches.Query[any]{Dest: &dest})
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestDriverEnum(t *testing.T) {
	assert.True(t, POSTGRES.IsValid())
	assert.True(t, MYSQL.IsValid())
	assert.False(t, DriverEnum("sqlite").IsValid())
	assert.Equal(t, "mysql", MYSQL.ToString())
}

func TestSetupRejectsUnknownDriver(t *testing.T) {
	_, err := Setup(&Config{Driver: "sqlite"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
