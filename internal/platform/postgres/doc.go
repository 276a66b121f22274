// Package postgres provides PostgreSQL implementations of the store
// interfaces, plus schema migration and driver error classification.
package postgres
