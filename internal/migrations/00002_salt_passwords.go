package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/weighttrack/internal/passhash"
	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upSaltPasswords, downSaltPasswords)
}

// upSaltPasswords moves the store from the plaintext-password layout to the
// salted scheme. Every password value present in the users table is treated
// as legacy plaintext and rewritten as a salted digest. Because goose records
// the applied version, the rehash runs exactly once; an already-salted store
// is never hashed a second time.
func upSaltPasswords(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx,
		`ALTER TABLE users ADD COLUMN salt TEXT NOT NULL DEFAULT ''`); err != nil {
		return fmt.Errorf("failed to add salt column: %w", err)
	}

	// SQLite cannot add CHECK constraints in place, so the weights table is
	// rebuilt. Legacy rows that violate the new constraints are not carried
	// over.
	stmts := []string{
		`CREATE TABLE weights_v2 (
			weight_id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			weight REAL NOT NULL CHECK (weight > 0 AND weight < 1000),
			date TEXT NOT NULL,
			notes TEXT CHECK (length(notes) <= 1000),
			FOREIGN KEY (user_id) REFERENCES users (user_id) ON DELETE CASCADE
		)`,
		`INSERT INTO weights_v2 (weight_id, user_id, weight, date, notes)
			SELECT weight_id, user_id, weight, date, notes FROM weights
			WHERE weight > 0 AND weight < 1000
			  AND (notes IS NULL OR length(notes) <= 1000)`,
		`DROP TABLE weights`,
		`ALTER TABLE weights_v2 RENAME TO weights`,
		`CREATE INDEX idx_weights_user_date ON weights (user_id, date)`,
		`CREATE INDEX idx_username ON users (username)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to rebuild weights table: %w", err)
		}
	}

	rows, err := tx.QueryContext(ctx, `SELECT user_id, password FROM users`)
	if err != nil {
		return fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	type legacyUser struct {
		id       int64
		password string
	}
	var legacy []legacyUser
	for rows.Next() {
		var u legacyUser
		if err := rows.Scan(&u.id, &u.password); err != nil {
			return fmt.Errorf("failed to scan user row: %w", err)
		}
		legacy = append(legacy, u)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, u := range legacy {
		salt, err := passhash.GenerateSalt()
		if err != nil {
			return fmt.Errorf("failed to generate salt: %w", err)
		}
		digest := passhash.Hash(u.password, salt)
		if _, err := tx.ExecContext(ctx,
			`UPDATE users SET password = ?, salt = ? WHERE user_id = ?`,
			digest, passhash.EncodeSalt(salt), u.id); err != nil {
			return fmt.Errorf("failed to rewrite user %d: %w", u.id, err)
		}
	}

	return nil
}

// downSaltPasswords refuses: plaintext passwords cannot be recovered from
// salted digests.
func downSaltPasswords(ctx context.Context, tx *sql.Tx) error {
	return errors.New("cannot downgrade: plaintext passwords are not recoverable")
}
