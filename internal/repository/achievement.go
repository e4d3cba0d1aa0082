package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/habitloop/habitloop/internal/model"
)

type AchievementRepository interface {
	InsertIfAbsent(ctx context.Context, achievement *model.Achievement) (bool, error)
	Achievements(ctx context.Context, userID string) ([]*model.Achievement, error)
}

type achievementRepository struct {
	db *sqlx.DB
}

func NewAchievementRepository(db *sqlx.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

// InsertIfAbsent records the achievement unless (user_id, badge_type) already exists.
// It reports whether a row was written; a conflict is not an error.
func (r *achievementRepository) InsertIfAbsent(ctx context.Context, achievement *model.Achievement) (bool, error) {
	query := `INSERT INTO achievements (id, user_id, badge_type, earned_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (user_id, badge_type) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query,
		achievement.ID,
		achievement.UserID,
		achievement.BadgeType,
		achievement.EarnedAt,
	)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows == 1, nil
}

func (r *achievementRepository) Achievements(ctx context.Context, userID string) ([]*model.Achievement, error) {
	achievements := []*model.Achievement{}
	query := `SELECT * FROM achievements WHERE user_id = $1 ORDER BY earned_at ASC, badge_type ASC`

	err := r.db.SelectContext(ctx, &achievements, query, userID)
	if err != nil {
		return nil, err
	}

	return achievements, nil
}
