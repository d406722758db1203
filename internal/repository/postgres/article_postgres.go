package postgres

import (
	"context"
	"errors"

	"github.com/casao/gin-paginate/internal/model"
	"github.com/casao/gin-paginate/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPageLimit = 50

func sanitizeLimitOffset(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

type articleRepository struct{ pool *pgxpool.Pool }

func NewArticleRepository(pool *pgxpool.Pool) repository.ArticleRepository {
	return &articleRepository{pool: pool}
}

func (r *articleRepository) Create(ctx context.Context, a model.Article) (model.Article, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO articles (title, author, published_at) VALUES ($1, $2, $3)
		 RETURNING id, title, author, published_at, created_at, updated_at`,
		a.Title, a.Author, a.PublishedAt,
	)
	var out model.Article
	if err := row.Scan(&out.ID, &out.Title, &out.Author, &out.PublishedAt, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Article{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *articleRepository) GetByID(ctx context.Context, id int64) (model.Article, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, title, author, published_at, created_at, updated_at
		 FROM articles WHERE id = $1`, id,
	)
	var out model.Article
	if err := row.Scan(&out.ID, &out.Title, &out.Author, &out.PublishedAt, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Article{}, repository.ErrNotFound
		}
		return model.Article{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *articleRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Article], error) {
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, author, published_at, created_at, updated_at, COUNT(*) OVER() AS total
		 FROM articles
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Article]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Article]{Items: make([]model.Article, 0, limit)}
	for rows.Next() {
		var a model.Article
		var total int
		if err := rows.Scan(&a.ID, &a.Title, &a.Author, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Article]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, a)
		res.Total = total
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Article]{}, repository.MapPgError(err)
	}

	// COUNT(*) OVER() vanishes with an empty window; fetch the total
	// separately so Content-Range still reports the real size.
	if len(res.Items) == 0 {
		row := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`)
		if err := row.Scan(&res.Total); err != nil {
			return repository.PageResult[model.Article]{}, repository.MapPgError(err)
		}
	}
	return res, nil
}
