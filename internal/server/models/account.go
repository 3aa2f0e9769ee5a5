// Package models contains the persistent entities of the accounts service.
package models

import "time"

// Account is the identity record managed by the service. ID is assigned by
// the store at creation and never reused. Email is unique across all
// accounts. HashedPassword is opaque to the service: callers supply the
// hash, the service only stores it.
type Account struct {
	ID             int64
	Email          string
	FirstName      string
	LastName       string
	HashedPassword string
	IsActive       bool
	IsVerified     bool
	CreatedAt      time.Time
}
