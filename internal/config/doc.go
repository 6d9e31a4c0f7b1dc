// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Every key can be set through an environment variable with the BUCKETLIST_
// prefix, where nesting dots become underscores (database.url becomes
// BUCKETLIST_DATABASE_URL). An optional config.yaml in the working directory
// is read first; environment variables take precedence over it.
package config
