// Package store defines the repository interfaces for users, bucketlists and
// list items. Handlers and services depend only on these interfaces; the
// concrete SQL lives in internal/platform/postgres and internal/platform/sqlite.
// Every bucketlist and item query takes the owner's ID so that ownership
// scoping is part of the method contract rather than an afterthought.
package store
