// Package domain contains the core entities of the service and their
// validation rules, free of persistence or transport concerns.
package domain
