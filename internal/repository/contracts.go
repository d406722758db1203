package repository

import (
	"context"

	"github.com/casao/gin-paginate/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ArticleRepository declares persistence operations for articles.
// Implementations return domain models and surface domain errors from
// errors.go rather than PG codes.
type ArticleRepository interface {
	Create(ctx context.Context, a model.Article) (model.Article, error)
	GetByID(ctx context.Context, id int64) (model.Article, error)
	List(ctx context.Context, p Page) (PageResult[model.Article], error)
}
