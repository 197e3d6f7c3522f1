package sqlite

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB opens a shared-cache in-memory database named after the test,
// runs migrations, and closes it on cleanup.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", url.PathEscape(t.Name()))
	db, err := open(dsn, ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}
