package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stoykov15/lifeos/internal/core/domain"
)

// TaskRepository persists tasks in Postgres.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	const query = `
		SELECT id, user_id, title, done, type, priority, due_date
		FROM tasks
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var (
			t       domain.Task
			dueDate *string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Done, &t.Type, &t.Priority, &dueDate); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.DueDate = fromNullable(dueDate)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (int64, error) {
	const query = `
		INSERT INTO tasks (user_id, title, done, type, priority, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		task.UserID, task.Title, task.Done, task.Type, task.Priority, toNullable(task.DueDate),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	return id, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	const query = `
		UPDATE tasks
		SET title = $3, done = $4, type = $5, priority = $6, due_date = $7
		WHERE id = $1 AND user_id = $2
	`
	tag, err := r.pool.Exec(ctx, query,
		task.ID, task.UserID, task.Title, task.Done, task.Type, task.Priority, toNullable(task.DueDate),
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID int64) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, taskID, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
