package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE store_profiles (id INTEGER PRIMARY KEY, Store_Key TEXT, store_hash TEXT)").Error)

	columns, err := Columns(db, "store_profiles")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"id", "store_key", "store_hash"}, columns)

	_, err = Columns(db, "non_existent")
	assert.Error(t, err)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE store_profiles (id INTEGER PRIMARY KEY, store_key TEXT)").Error)

	missing, err := MissingColumns(db, "store_profiles", []string{"store_key", "access_token", "client_id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"access_token", "client_id"}, missing)
}
