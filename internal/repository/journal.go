package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/habitloop/habitloop/internal/model"
)

var (
	ErrJournalEntryNotFound = errors.New("journal entry not found")
)

type JournalRepository interface {
	Upsert(ctx context.Context, entry *model.JournalEntry) error
	ByDate(ctx context.Context, userID, entryDate string) (*model.JournalEntry, error)
	Entries(ctx context.Context, userID string, dateRange *model.DateRange) ([]*model.JournalEntry, error)
	Recent(ctx context.Context, userID string, limit int) ([]*model.JournalEntry, error)
	CountUserEntries(ctx context.Context, userID string) (int, error)
}

type journalRepository struct {
	db *sqlx.DB
}

func NewJournalRepository(db *sqlx.DB) JournalRepository {
	return &journalRepository{db: db}
}

// Upsert writes the entry for (user_id, entry_date), replacing mood and content if one exists.
func (r *journalRepository) Upsert(ctx context.Context, entry *model.JournalEntry) error {
	query := `INSERT INTO journal_entries (id, user_id, entry_date, mood, content, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (user_id, entry_date) DO UPDATE SET
	              mood = excluded.mood,
	              content = excluded.content,
	              updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.EntryDate,
		entry.Mood,
		entry.Content,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	return err
}

func (r *journalRepository) ByDate(ctx context.Context, userID, entryDate string) (*model.JournalEntry, error) {
	entry := &model.JournalEntry{}
	query := `SELECT * FROM journal_entries WHERE user_id = $1 AND entry_date = $2`

	err := r.db.GetContext(ctx, entry, query, userID, entryDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJournalEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *journalRepository) Entries(ctx context.Context, userID string, dateRange *model.DateRange) ([]*model.JournalEntry, error) {
	entries := []*model.JournalEntry{}

	query := `SELECT * FROM journal_entries WHERE user_id = $1 ORDER BY entry_date ASC`
	args := []any{userID}
	if dateRange != nil {
		query = `SELECT * FROM journal_entries
		         WHERE user_id = $1 AND entry_date >= $2 AND entry_date <= $3
		         ORDER BY entry_date ASC`
		args = append(args, dateRange.From, dateRange.To)
	}

	err := r.db.SelectContext(ctx, &entries, query, args...)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalRepository) Recent(ctx context.Context, userID string, limit int) ([]*model.JournalEntry, error) {
	entries := []*model.JournalEntry{}
	query := `SELECT * FROM journal_entries WHERE user_id = $1 ORDER BY entry_date DESC LIMIT $2`

	err := r.db.SelectContext(ctx, &entries, query, userID, limit)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalRepository) CountUserEntries(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM journal_entries WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	return count, err
}
