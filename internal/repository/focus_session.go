package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/habitloop/habitloop/internal/model"
)

type FocusSessionRepository interface {
	Create(ctx context.Context, session *model.FocusSession) error
	Sessions(ctx context.Context, userID string, dateRange *model.DateRange, sessionType string) ([]*model.FocusSession, error)
}

type focusSessionRepository struct {
	db *sqlx.DB
}

func NewFocusSessionRepository(db *sqlx.DB) FocusSessionRepository {
	return &focusSessionRepository{db: db}
}

func (r *focusSessionRepository) Create(ctx context.Context, session *model.FocusSession) error {
	query := `INSERT INTO focus_sessions (id, user_id, habit_id, duration_minutes, session_type, session_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.HabitID,
		session.DurationMinutes,
		session.SessionType,
		session.SessionDate,
		session.CreatedAt,
	)
	return err
}

// Sessions lists a user's sessions, oldest first. An empty sessionType matches every type.
func (r *focusSessionRepository) Sessions(ctx context.Context, userID string, dateRange *model.DateRange, sessionType string) ([]*model.FocusSession, error) {
	sessions := []*model.FocusSession{}

	where := []string{"user_id = ?"}
	args := []any{userID}
	if dateRange != nil {
		where = append(where, "session_date >= ?", "session_date <= ?")
		args = append(args, dateRange.From, dateRange.To)
	}
	if sessionType != "" {
		where = append(where, "session_type = ?")
		args = append(args, sessionType)
	}

	query := `SELECT * FROM focus_sessions WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY session_date ASC, created_at ASC`

	err := r.db.SelectContext(ctx, &sessions, r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}
