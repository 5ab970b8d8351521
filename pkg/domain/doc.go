// Package domain contains the core business entities of the CRM: users,
// the company record, and the domain events produced when a user changes
// their email address. The package is pure business logic and performs no
// I/O; persistence and dispatch live in other packages.
package domain
