// Package domain defines the core business entities of the bucketlist service
// (users, bucketlists and their items) together with the validation rules each
// entity must satisfy before it is persisted. It has no knowledge of storage or
// transport concerns.
package domain
