// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Every bucketlist operation is scoped to an owner: a bucketlist that belongs
// to another user is reported exactly like one that does not exist.
// Operations that read and then modify data run inside a single transaction
// via store.RunInTransaction.
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations.
package service
