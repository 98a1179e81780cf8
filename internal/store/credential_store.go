package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"employee-admin/internal/models"
)

// CredentialStore reads login principals. Rows are created out of
// band; the service never writes here.
type CredentialStore struct {
	pool Querier
}

func NewCredentialStore(pool Querier) *CredentialStore {
	return &CredentialStore{pool: pool}
}

// GetByUserName looks a credential up or returns models.ErrUserNotFound.
func (s *CredentialStore) GetByUserName(ctx context.Context, userName string) (models.Credential, error) {
	var c models.Credential
	err := s.pool.QueryRow(ctx, `
		SELECT sno, user_name, password_hash FROM credentials WHERE user_name = $1
	`, userName).Scan(&c.Sno, &c.UserName, &c.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Credential{}, models.ErrUserNotFound
		}
		return models.Credential{}, err
	}
	return c, nil
}

// Insert provisions a credential (used by cmd/adduser only).
func (s *CredentialStore) Insert(ctx context.Context, userName, passwordHash string) (int64, error) {
	var sno int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO credentials (user_name, password_hash)
		VALUES ($1, $2)
		RETURNING sno
	`, userName, passwordHash).Scan(&sno)
	if err != nil {
		return 0, translatePgError(err)
	}
	return sno, nil
}
