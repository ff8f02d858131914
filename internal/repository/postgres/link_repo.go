package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dfalcao/linkbio/internal/domain"
)

type LinkRepo struct {
	pool *pgxpool.Pool
}

func NewLinkRepo(pool *pgxpool.Pool) *LinkRepo {
	return &LinkRepo{pool: pool}
}

func (r *LinkRepo) Create(ctx context.Context, link *domain.Link) error {
	query := `
		INSERT INTO links (user_id, title, url, platform)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		link.UserID, link.Title, link.URL, link.Platform,
	).Scan(&link.ID, &link.CreatedAt)
}

func (r *LinkRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Link, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, user_id, title, url, platform, created_at FROM links WHERE user_id = $1 ORDER BY id",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(&l.ID, &l.UserID, &l.Title, &l.URL, &l.Platform, &l.CreatedAt); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *LinkRepo) Update(ctx context.Context, link *domain.Link) (bool, error) {
	query := `
		UPDATE links SET title = $1, url = $2, platform = $3
		WHERE id = $4 AND user_id = $5
		RETURNING created_at`

	err := r.pool.QueryRow(ctx, query,
		link.Title, link.URL, link.Platform, link.ID, link.UserID,
	).Scan(&link.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *LinkRepo) Delete(ctx context.Context, id, userID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		"DELETE FROM links WHERE id = $1 AND user_id = $2",
		id, userID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
