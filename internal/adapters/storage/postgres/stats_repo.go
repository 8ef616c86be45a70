package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"petcare-companion/internal/domain/stats"
)

const statsColumns = `id, pet_id, date, steps, exercise_minutes, sleep_hours, meals, created_at`

type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) ListByPet(ctx context.Context, petID int64, date *time.Time) ([]stats.DailyStats, error) {
	query := `
		SELECT ` + statsColumns + `
		FROM daily_stats
		WHERE pet_id = $1
	`
	args := []any{petID}
	if date != nil {
		query += ` AND date = $2`
		args = append(args, *date)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]stats.DailyStats, 0)
	for rows.Next() {
		var d stats.DailyStats
		if err := rows.Scan(
			&d.ID,
			&d.PetID,
			&d.Date,
			&d.Steps,
			&d.ExerciseMinutes,
			&d.SleepHours,
			&d.Meals,
			&d.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *StatsRepo) Create(ctx context.Context, in stats.InsertDailyStats) (stats.DailyStats, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO daily_stats (pet_id, date, steps, exercise_minutes, sleep_hours, meals)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING `+statsColumns+`
	`,
		in.PetID,
		in.Date,
		in.Steps,
		in.ExerciseMinutes,
		in.SleepHours,
		in.Meals,
	)
	return scanDailyStats(row)
}

func (r *StatsRepo) Update(ctx context.Context, id int64, in stats.UpdateDailyStats) (stats.DailyStats, error) {
	var b updateBuilder
	if in.PetID != nil {
		b.set("pet_id", *in.PetID)
	}
	if in.Date != nil {
		b.set("date", *in.Date)
	}
	if in.Steps != nil {
		b.set("steps", *in.Steps)
	}
	if in.ExerciseMinutes != nil {
		b.set("exercise_minutes", *in.ExerciseMinutes)
	}
	if in.SleepHours != nil {
		b.set("sleep_hours", *in.SleepHours)
	}
	if in.Meals != nil {
		b.set("meals", *in.Meals)
	}

	if len(b.sets) == 0 {
		return stats.DailyStats{}, stats.ErrInvalidInput
	}

	b.args = append(b.args, id)
	query := fmt.Sprintf(`
		UPDATE daily_stats
		SET %s
		WHERE id = $%d
		RETURNING `+statsColumns,
		strings.Join(b.sets, ", "), len(b.args))

	d, err := scanDailyStats(r.db.QueryRowContext(ctx, query, b.args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return stats.DailyStats{}, stats.ErrNotFound
		}
		return stats.DailyStats{}, err
	}
	return d, nil
}

func scanDailyStats(row scanner) (stats.DailyStats, error) {
	var d stats.DailyStats
	if err := row.Scan(
		&d.ID,
		&d.PetID,
		&d.Date,
		&d.Steps,
		&d.ExerciseMinutes,
		&d.SleepHours,
		&d.Meals,
		&d.CreatedAt,
	); err != nil {
		return stats.DailyStats{}, err
	}
	return d, nil
}
