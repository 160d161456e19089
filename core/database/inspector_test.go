package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE debts (id INTEGER PRIMARY KEY, surname TEXT NOT NULL, owed NUMERIC)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "debts")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "integer", colMap["id"].Type)
	assert.Equal(t, "PRI", colMap["id"].Key)
	assert.Equal(t, "text", colMap["surname"].Type)
	assert.Equal(t, "NO", colMap["surname"].Null)
	assert.Equal(t, "numeric", colMap["owed"].Type)

	// PRAGMA table_info returns an empty result for a non-existent table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE payments (id INTEGER, Date TEXT, surname TEXT)").Error)

	missing, err := MissingColumns(db, "payments", "id", "date", "surname", "amount")
	require.NoError(t, err)
	assert.Equal(t, []string{"amount"}, missing)

	missing, err = MissingColumns(db, "nothing_here", "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, missing)
}
