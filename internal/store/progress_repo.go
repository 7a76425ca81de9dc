package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/gramly/internal/progress"
)

// progressRepo implements ProgressRepo as a single-row JSON document.
// The learner is single-user, so the record lives at id=1.
type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Load(ctx context.Context) (*progress.UserProgress, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM user_progress WHERE id = 1`,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	p := progress.New()
	if err := json.Unmarshal([]byte(data), p); err != nil {
		// An unreadable record must not block practice. Start from a fresh
		// record; the next save overwrites the corrupt row.
		fmt.Fprintf(os.Stderr, "warning: progress record unreadable, starting fresh: %v\n", err)
		return progress.New(), nil
	}
	if p.QuestionsPerRule == nil {
		p.QuestionsPerRule = make(map[string]progress.RuleTally)
	}
	return p, nil
}

func (r *progressRepo) Save(ctx context.Context, p *progress.UserProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO user_progress (id, data, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
