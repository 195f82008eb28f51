package database

import (
	"fmt"
	"sync/atomic"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/enttest"
)

var dbSeq atomic.Int64

// NewTestClient opens an in-memory SQLite client with the full schema
// created. Each call gets its own database; the connection is closed
// when the test ends.
func NewTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:warden_test_%d?mode=memory&cache=shared&_fk=1", dbSeq.Add(1))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}
