package repo_test

import (
	"os"
	"testing"

	"github.com/pkordes/tourbook/backend/testutil"
)

// TestMain brings the tours schema up to date once for the whole package.
// Without TEST_DATABASE_URL every test skips itself in testutil.NewTx.
func TestMain(m *testing.M) {
	if dsn := testutil.DSN(); dsn != "" {
		testutil.MustMigrate(dsn)
	}
	os.Exit(m.Run())
}
