package repository

import "context"

// RepositoryFactory hands out repository instances bound to a single
// transaction. It is only valid inside a TransactionManager.Execute callback.
type RepositoryFactory interface {
	UserRepo() UserRepository
	PasswordResetRepo() PasswordResetRepository
}

// TransactionManager runs a unit of work atomically. The callback receives a
// factory whose repositories all share one transaction; returning an error
// rolls the transaction back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
