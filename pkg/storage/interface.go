// Package storage defines the persistence interfaces the CRM relies on. It
// abstracts entity repositories and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"

	"crm/pkg/domain"

	"github.com/riverqueue/river"
)

// UserStorage is the user repository contract.
type UserStorage interface {
	// UserByID fetches a user by id. It returns nil when no such user exists.
	UserByID(ctx context.Context, id int64) (*domain.User, error)
	// SaveUser upserts a user. A user with the zero id is inserted and the
	// generated id is assigned back onto the entity; otherwise the row keyed
	// by the id is updated.
	SaveUser(ctx context.Context, user *domain.User) error
}

// CompanyStorage is the company repository contract. The companies table
// holds exactly one row in this design.
type CompanyStorage interface {
	// Company fetches the single company record. It returns nil when the row
	// has not been created yet.
	Company(ctx context.Context) (*domain.Company, error)
	// SaveCompany updates the company row keyed by its domain name.
	SaveCompany(ctx context.Context, company *domain.Company) error
	// AddCompany inserts the company row. Used at setup time only.
	AddCompany(ctx context.Context, company *domain.Company) error
}

// JobStorage enqueues background jobs into the queue backend. Inserts made on
// a transactional handle participate in that transaction and only become
// visible on commit.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The boolean result
	// reports whether a job was actually inserted (uniqueness constraints may
	// skip duplicates).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// AllStorage is the composite of every repository capability the application
// needs. Both plain and transactional handles provide it.
type AllStorage interface {
	UserStorage
	CompanyStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open database transaction. It
// exposes the same repository capabilities as AllStorage plus transaction
// lifecycle control. A handle becomes unusable after Commit or Rollback;
// calling either twice is an error.
type TxStorage interface {
	AllStorage

	// Commit makes all writes performed on this handle durable atomically.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted writes.
	Rollback() error
}

// Storage is a non-transactional handle with the ability to start
// transactions and to release underlying resources.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool. The instance must not be
	// used afterwards.
	Close() error

	// Begin starts a transaction and returns a TxStorage bound to it. Exactly
	// one workflow owns the returned handle; it must not be shared.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with the transactional handle,
	// then commits on success or rolls back when cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
