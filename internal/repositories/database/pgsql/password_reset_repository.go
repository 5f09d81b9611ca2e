package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	"github.com/agentdms/agentdms-backend/internal/core/domain"
	portsrepo "github.com/agentdms/agentdms-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPasswordResetRepository struct {
	BaseRepository
}

func newPgxPasswordResetRepository(db *pgxpool.Pool) portsrepo.PasswordResetRepository {
	return &PgxPasswordResetRepository{BaseRepository{Pool: db}}
}

// Ensure PgxPasswordResetRepository implements portsrepo.PasswordResetRepository
var _ portsrepo.PasswordResetRepository = (*PgxPasswordResetRepository)(nil)

func (r *PgxPasswordResetRepository) SaveResetToken(ctx context.Context, token domain.PasswordResetToken) error {
	query := `
        INSERT INTO password_reset_tokens (token_id, user_id, token_hash, expires_at, used_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query,
		token.TokenID,
		token.UserID,
		token.TokenHash,
		token.ExpiresAt,
		token.UsedAt,
		token.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}
	return nil
}

func (r *PgxPasswordResetRepository) FindResetTokenByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error) {
	query := `
        SELECT token_id, user_id, token_hash, expires_at, used_at, created_at
        FROM password_reset_tokens
        WHERE token_hash = $1;
    `
	var t domain.PasswordResetToken
	err := r.Pool.QueryRow(ctx, query, tokenHash).Scan(
		&t.TokenID,
		&t.UserID,
		&t.TokenHash,
		&t.ExpiresAt,
		&t.UsedAt,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reset token: %w", err)
	}
	return &t, nil
}

// ConsumeResetToken stores the new password hash and marks the token used in
// one transaction, so a token can never be redeemed twice. The conditional
// used_at update is the reuse guard: a concurrent redemption loses the race
// and rolls back.
func (r *PgxPasswordResetRepository) ConsumeResetToken(ctx context.Context, tokenID string, userID string, newPasswordHash string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now()

	tokenQuery := `
        UPDATE password_reset_tokens
        SET used_at = $1
        WHERE token_id = $2 AND used_at IS NULL AND expires_at > $1;
    `
	cmdTag, err := tx.Exec(ctx, tokenQuery, now, tokenID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark reset token used", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("reset token already used or expired: %w", apperrors.ErrValidation)
	}

	// Redeeming a reset also clears the legacy hash; the account is fully on
	// the current scheme from here on.
	userQuery := `
        UPDATE users
        SET password_hash = $1, legacy_hash = '', modified_at = $2, modified_by = $3
        WHERE user_id = $3;
    `
	cmdTag, err = tx.Exec(ctx, userQuery, newPasswordHash, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update password", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
