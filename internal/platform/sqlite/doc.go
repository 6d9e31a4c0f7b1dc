// Package sqlite implements the store interfaces on SQLite through the pure Go
// modernc.org/sqlite driver. It backs local development and the test suites
// of the service and HTTP layers; production deployments use the postgres
// package.
package sqlite
