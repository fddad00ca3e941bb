package weights

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/weighttrack/internal/common"
	"github.com/dmitrijs2005/weighttrack/internal/dbx"
	"github.com/dmitrijs2005/weighttrack/internal/models"

	sqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// mapConstraintErr converts SQLite constraint violations into the shared
// sentinels: a failed CHECK means invalid input, a failed foreign key means
// the owner does not exist.
func mapConstraintErr(err error) error {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return nil
	}
	switch se.Code() {
	case sqlitelib.SQLITE_CONSTRAINT_CHECK:
		return common.ErrorValidation
	case sqlitelib.SQLITE_CONSTRAINT_FOREIGNKEY:
		return common.ErrorNotFound
	}
	return nil
}

func notesValue(e *models.WeightEntry) sql.NullString {
	return sql.NullString{String: e.Notes, Valid: e.Notes != ""}
}

func (r *SQLiteRepository) Create(ctx context.Context, entry *models.WeightEntry) (int64, error) {
	query := `INSERT INTO weights (user_id, weight, date, notes) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, entry.UserID, entry.Weight, entry.Date, notesValue(entry))
	if err != nil {
		if mapped := mapConstraintErr(err); mapped != nil {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to insert weight entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted weight id: %w", err)
	}
	entry.ID = id
	return id, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, entry *models.WeightEntry) (int64, error) {
	query := `UPDATE weights SET weight = ?, date = ?, notes = ? WHERE weight_id = ?`

	res, err := r.db.ExecContext(ctx, query, entry.Weight, entry.Date, notesValue(entry), entry.ID)
	if err != nil {
		if mapped := mapConstraintErr(err); mapped != nil {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to update weight entry: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM weights WHERE weight_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete weight entry: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.WeightEntry, error) {
	query := `SELECT weight_id, user_id, weight, date, notes FROM weights WHERE weight_id = ?`

	e := &models.WeightEntry{}
	var notes sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.UserID, &e.Weight, &e.Date, &notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select weight entry: %w", err)
	}
	e.Notes = notes.String
	return e, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.WeightEntry, error) {
	// newest first; equal dates keep insertion order
	query := `SELECT weight_id, user_id, weight, date, notes FROM weights
		WHERE user_id = ? ORDER BY date DESC, weight_id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select weight entries: %w", err)
	}
	defer rows.Close()

	var result []models.WeightEntry
	for rows.Next() {
		var e models.WeightEntry
		var notes sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.Weight, &e.Date, &notes); err != nil {
			return nil, err
		}
		e.Notes = notes.String
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
