package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnString_DatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/catalog")

	got, err := connString()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/catalog", got)
}

func TestConnString_Parts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "shop")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "catalog")
	t.Setenv("DB_SSLMODE", "")

	got, err := connString()
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=shop password=secret dbname=catalog sslmode=disable", got)
}

func TestConnString_Missing(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	_, err := connString()
	assert.Error(t, err)
}
