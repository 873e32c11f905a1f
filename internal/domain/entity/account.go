// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Account represents a registered user of the catalog.
// ID is assigned by the database on creation; a zero ID means the account
// has not been persisted yet.
type Account struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"` // Argon2id hash after registration; never plaintext at rest.
	Role     string `json:"role"`     // Stored verbatim; reserved, not consulted for authorization.
}
