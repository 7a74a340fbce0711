// Package model defines the persisted domain entities.
//
// Entities are plain structs scanned from pgx rows by the
// repository layer and serialized directly to JSON by handlers.
// The route binding layer treats them as opaque values keyed by
// their identifier field.
package model

import "time"

// Student is a persisted student record, keyed by numeric ID.
type Student struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// Course is a persisted course record, keyed by its string code
// (e.g. "CS101").
type Course struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Credits int    `json:"credits"`
}
