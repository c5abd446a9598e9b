package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const messagesTable = "chat_messages"

// insertBatchSize keeps each INSERT well under SQLite's bound-variable limit.
const insertBatchSize = 500

// transcriptRepo implements TranscriptRepo.
type transcriptRepo struct {
	drv *entsql.Driver
}

func (r *transcriptRepo) Load(ctx context.Context, learner string) ([]TranscriptMessage, error) {
	sel := builder.Select("role", "content").
		From(entsql.Table(messagesTable)).
		Where(entsql.EQ("learner", learner)).
		OrderBy("position")

	rows, err := query(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("load transcript for %q: %w", learner, err)
	}
	defer rows.Close()

	msgs := []TranscriptMessage{}
	for rows.Next() {
		var m TranscriptMessage
		if err := rows.Scan(&m.Role, &m.Content); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *transcriptRepo) Replace(ctx context.Context, learner string, msgs []TranscriptMessage) error {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transcript tx: %w", err)
	}
	if err := replaceMessages(ctx, tx, learner, msgs); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transcript: %w", err)
	}
	return nil
}

func replaceMessages(ctx context.Context, tx dialect.Tx, learner string, msgs []TranscriptMessage) error {
	del := builder.Delete(messagesTable).Where(entsql.EQ("learner", learner))
	if _, err := exec(ctx, tx, del); err != nil {
		return fmt.Errorf("clear transcript for %q: %w", learner, err)
	}

	for start := 0; start < len(msgs); start += insertBatchSize {
		end := min(start+insertBatchSize, len(msgs))
		insert := builder.Insert(messagesTable).Columns("learner", "position", "role", "content")
		for i := start; i < end; i++ {
			insert.Values(learner, i, msgs[i].Role, msgs[i].Content)
		}
		if _, err := exec(ctx, tx, insert); err != nil {
			return fmt.Errorf("save transcript for %q: %w", learner, err)
		}
	}
	return nil
}

func (r *transcriptRepo) Delete(ctx context.Context, learner string) error {
	del := builder.Delete(messagesTable).Where(entsql.EQ("learner", learner))
	if _, err := exec(ctx, r.drv, del); err != nil {
		return fmt.Errorf("delete transcript for %q: %w", learner, err)
	}
	return nil
}
