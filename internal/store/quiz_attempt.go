package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const attemptsTable = "quiz_attempts"

var attemptColumns = []string{
	"id", "sequence", "learner", "topic", "level",
	"score", "correct", "total", "results", "created_at",
}

// quizRepo implements QuizRepo.
type quizRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *quizRepo) AppendAttempt(ctx context.Context, data QuizAttemptData) (string, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("next sequence: %w", err)
	}

	id := uuid.NewString()
	results := string(data.Results)
	if results == "" {
		results = "[]"
	}

	insert := builder.Insert(attemptsTable).
		Columns(attemptColumns...).
		Values(
			id, seqNum, data.Learner, data.Topic, data.Level,
			data.Score, data.Correct, data.Total, results,
			time.Now().UnixMilli(),
		)
	if _, err := exec(ctx, r.drv, insert); err != nil {
		return "", fmt.Errorf("save quiz attempt: %w", err)
	}
	return id, nil
}

func (r *quizRepo) ListAttempts(ctx context.Context, learner string, limit int) ([]QuizAttempt, error) {
	sel := builder.Select(attemptColumns...).
		From(entsql.Table(attemptsTable)).
		Where(entsql.EQ("learner", learner)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel.Limit(limit)
	}

	rows, err := query(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("list quiz attempts for %q: %w", learner, err)
	}
	defer rows.Close()

	var out []QuizAttempt
	for rows.Next() {
		var (
			a       QuizAttempt
			results string
			ts      int64
		)
		err := rows.Scan(
			&a.ID, &a.Sequence, &a.Learner, &a.Topic, &a.Level,
			&a.Score, &a.Correct, &a.Total, &results, &ts,
		)
		if err != nil {
			return nil, fmt.Errorf("scan quiz attempt: %w", err)
		}
		a.Results = []byte(results)
		a.CreatedAt = time.UnixMilli(ts).UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *quizRepo) DeleteAttempts(ctx context.Context, learner string) error {
	del := builder.Delete(attemptsTable).Where(entsql.EQ("learner", learner))
	if _, err := exec(ctx, r.drv, del); err != nil {
		return fmt.Errorf("delete quiz attempts for %q: %w", learner, err)
	}
	return nil
}
