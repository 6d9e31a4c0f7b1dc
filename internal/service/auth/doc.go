// Package auth issues and validates HS256 access tokens and authenticates
// users by email and bcrypt-hashed password.
package auth
