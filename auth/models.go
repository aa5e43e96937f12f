// Package auth turns bearer tokens issued by the external identity provider into
// local users. This file defines the local `User` record shared with the users package.
package auth

// User represents a row of the `users` table.
// It is created on first registration or first successful authentication of an
// unseen email and is never modified afterwards.
type User struct {
	// Server-generated surrogate key.
	ID int `json:"id" example:"1"`
	// Unique; the correlation key with the identity provider.
	Email    string `json:"email" example:"ada@example.com"`
	FullName string `json:"full_name" example:"Ada Lovelace"`
}
