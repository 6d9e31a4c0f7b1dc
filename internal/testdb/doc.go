// Package testdb provides database helpers for tests.
//
// Open returns a migrated SQLite database stored in the test's temporary
// directory, so every test starts from an empty schema without any external
// service. OpenPostgres does the same against DATABASE_URL and skips the test
// when that variable is not set.
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.Open(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := sqlite.NewUserStore(tx, bcrypt.MinCost, nil)
//	        // changes are rolled back when fn returns
//	    })
//	}
package testdb
