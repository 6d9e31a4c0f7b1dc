// Package api implements the HTTP handlers of the bucketlist API: registration
// and login, the protected resource check, and owner-scoped bucketlist and
// item CRUD. Handlers decode untyped JSON payloads, run the validators in
// package validate, call the services and write JSON envelopes through
// package shared.
package api
