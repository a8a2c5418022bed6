// Package models contains the GORM models of the portal tables.
// Each model converts to and from its domain entity with ToDomain and FromDomain.
package models
