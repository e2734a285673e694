// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Founder is the sole entity in the system, representing a registered
// startup founder account.
type Founder struct {
	ID           int64     // Monotonically assigned identifier (BIGSERIAL in PostgreSQL).
	Email        string    // Login identifier, stored lower-cased, globally unique.
	PasswordHash string    // Bcrypt hash of the password. Never exposed or logged.
	FirstName    string    // Required display field.
	LastName     string    // Required display field.
	CompanyName  string    // Optional.
	Industry     string    // Optional.
	IsActive     bool      // Deactivated founders cannot log in. Defaults to true.
	CreatedAt    time.Time // Set once at creation, immutable.
	UpdatedAt    time.Time // Refreshed on every mutation.
}

// FullName returns the founder's display name.
func (f *Founder) FullName() string {
	return f.FirstName + " " + f.LastName
}
