// Package models contains the GORM persistence models. Domain entities
// never carry persistence tags; every model converts with ToDomain and
// FromDomain.
package models
