package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/habitloop/habitloop/internal/model"
)

var (
	ErrHabitLogNotFound = errors.New("habit log not found")
)

// HabitLogRepository reads and writes the habit completion log.
// A nil date range means all time.
type HabitLogRepository interface {
	Check(ctx context.Context, habitID, logDate string) error
	Uncheck(ctx context.Context, habitID, logDate string) error
	Logs(ctx context.Context, habitID string) ([]*model.HabitLog, error)
	CompletionsByHabit(ctx context.Context, habitIDs []string, dateRange *model.DateRange) (map[string]int, error)
	CompletionsByDay(ctx context.Context, habitIDs []string, dateRange *model.DateRange) ([]model.DayCount, error)
}

type habitLogRepository struct {
	db *sqlx.DB
}

func NewHabitLogRepository(db *sqlx.DB) HabitLogRepository {
	return &habitLogRepository{db: db}
}

// Check marks a habit completed on a day. Checking twice keeps one row.
func (r *habitLogRepository) Check(ctx context.Context, habitID, logDate string) error {
	query := `INSERT INTO habit_logs (id, habit_id, log_date, completed, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (habit_id, log_date) DO UPDATE SET completed = excluded.completed`

	_, err := r.db.ExecContext(ctx, query, uuid.New().String(), habitID, logDate, true, time.Now())
	return err
}

// Uncheck removes the completion mark entirely.
func (r *habitLogRepository) Uncheck(ctx context.Context, habitID, logDate string) error {
	query := `DELETE FROM habit_logs WHERE habit_id = $1 AND log_date = $2`

	result, err := r.db.ExecContext(ctx, query, habitID, logDate)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHabitLogNotFound
	}

	return nil
}

func (r *habitLogRepository) Logs(ctx context.Context, habitID string) ([]*model.HabitLog, error) {
	logs := []*model.HabitLog{}
	query := `SELECT * FROM habit_logs WHERE habit_id = $1 ORDER BY log_date ASC`

	err := r.db.SelectContext(ctx, &logs, query, habitID)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// CompletionsByHabit counts completed rows per habit. Habits without rows are absent from the map.
func (r *habitLogRepository) CompletionsByHabit(ctx context.Context, habitIDs []string, dateRange *model.DateRange) (map[string]int, error) {
	counts := make(map[string]int, len(habitIDs))
	if len(habitIDs) == 0 {
		return counts, nil
	}

	query, args, err := completionsQuery(
		`SELECT habit_id, COUNT(*) AS total FROM habit_logs`,
		`GROUP BY habit_id`,
		habitIDs, dateRange,
	)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		HabitID string `db:"habit_id"`
		Total   int    `db:"total"`
	}
	err = r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.HabitID] = row.Total
	}
	return counts, nil
}

// CompletionsByDay counts completed rows per calendar day, ascending. Days without rows are absent.
func (r *habitLogRepository) CompletionsByDay(ctx context.Context, habitIDs []string, dateRange *model.DateRange) ([]model.DayCount, error) {
	days := []model.DayCount{}
	if len(habitIDs) == 0 {
		return days, nil
	}

	query, args, err := completionsQuery(
		`SELECT log_date, COUNT(*) AS total FROM habit_logs`,
		`GROUP BY log_date ORDER BY log_date ASC`,
		habitIDs, dateRange,
	)
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &days, r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	return days, nil
}

// completionsQuery assembles a completed-rows query over a habit set with an optional day window.
func completionsQuery(selectClause, tailClause string, habitIDs []string, dateRange *model.DateRange) (string, []any, error) {
	where := []string{"habit_id IN (?)", "completed = ?"}
	args := []any{habitIDs, true}
	if dateRange != nil {
		where = append(where, "log_date >= ?", "log_date <= ?")
		args = append(args, dateRange.From, dateRange.To)
	}

	query := selectClause + " WHERE " + strings.Join(where, " AND ") + " " + tailClause
	return sqlx.In(query, args...)
}
