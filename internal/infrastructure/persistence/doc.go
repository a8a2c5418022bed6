// Package persistence provides the GORM repositories of the portal tables.
// Repositories validate entities before writing and report missing rows with
// the ErrNotFound sentinel of the corresponding domain package.
package persistence
