package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"percept-srv/internal/history/repository"
	"percept-srv/internal/model"
	"percept-srv/pkg/paginator"
)

// CreateSnapshot - Insert one sentiment snapshot for a product.
func (r *implRepository) CreateSnapshot(ctx context.Context, opt repository.CreateSnapshotOption) (model.SentimentSnapshot, error) {
	const query = `
		INSERT INTO sentiment_snapshots
			(id, product_id, overall, positive, negative, neutral, average_score, total_analyzed, sources, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, product_id, overall, positive, negative, neutral, average_score, total_analyzed, sources, created_at`

	s := opt.Sentiment

	var snap model.SentimentSnapshot
	var sources pq.StringArray
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.ProductID,
		s.Overall, s.Breakdown.Positive, s.Breakdown.Negative, s.Breakdown.Neutral,
		s.AverageScore, s.TotalAnalyzed,
		pq.Array(opt.Sources), time.Now().UTC(),
	).Scan(
		&snap.ID, &snap.ProductID,
		&snap.Overall, &snap.Positive, &snap.Negative, &snap.Neutral,
		&snap.AverageScore, &snap.TotalAnalyzed,
		&sources, &snap.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.CreateSnapshot: Failed to insert snapshot: %v", err)
		return model.SentimentSnapshot{}, err
	}
	snap.Sources = sources
	return snap, nil
}

// ListSnapshots - One page of a product's snapshots, newest first.
func (r *implRepository) ListSnapshots(ctx context.Context, productID string, page paginator.PaginateQuery) ([]model.SentimentSnapshot, int64, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM sentiment_snapshots
		WHERE product_id = $1`

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, productID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.ListSnapshots: Failed to count snapshots: %v", err)
		return nil, 0, err
	}

	const query = `
		SELECT id, product_id, overall, positive, negative, neutral, average_score, total_analyzed, sources, created_at
		FROM sentiment_snapshots
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, productID, page.Limit, page.Offset())
	if err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.ListSnapshots: Failed to query snapshots: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var snapshots []model.SentimentSnapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			r.l.Errorf(ctx, "history.repository.postgre.ListSnapshots: Failed to scan snapshot: %v", err)
			return nil, 0, err
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.ListSnapshots: Rows iteration failed: %v", err)
		return nil, 0, err
	}
	return snapshots, total, nil
}

// LatestSnapshot - The most recent snapshot for a product.
func (r *implRepository) LatestSnapshot(ctx context.Context, productID string) (model.SentimentSnapshot, error) {
	const query = `
		SELECT id, product_id, overall, positive, negative, neutral, average_score, total_analyzed, sources, created_at
		FROM sentiment_snapshots
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	row := r.db.QueryRowContext(ctx, query, productID)
	snap, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return model.SentimentSnapshot{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.LatestSnapshot: Failed to get snapshot: %v", err)
		return model.SentimentSnapshot{}, err
	}
	return snap, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (model.SentimentSnapshot, error) {
	var snap model.SentimentSnapshot
	var sources pq.StringArray
	err := row.Scan(
		&snap.ID, &snap.ProductID,
		&snap.Overall, &snap.Positive, &snap.Negative, &snap.Neutral,
		&snap.AverageScore, &snap.TotalAnalyzed,
		&sources, &snap.CreatedAt,
	)
	if err != nil {
		return model.SentimentSnapshot{}, err
	}
	snap.Sources = sources
	return snap, nil
}
