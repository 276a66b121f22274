// Package auth implements the credential business logic: registration,
// password hashing and verification, and login.
package auth
