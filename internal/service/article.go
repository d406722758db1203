package service

import (
	"context"
	"strings"
	"time"

	"github.com/casao/gin-paginate/internal/model"
	"github.com/casao/gin-paginate/internal/repository"
	"github.com/rs/zerolog"
)

// articleService holds article use-case logic: validation + orchestration,
// no transport / SQL details.
type articleService struct {
	repo repository.ArticleRepository
	log  zerolog.Logger
}

func NewArticleService(repo repository.ArticleRepository, logger zerolog.Logger) ArticleService {
	l := logger.With().Str("module", "service").Str("component", "article").Logger()
	return &articleService{repo: repo, log: l}
}

func (s *articleService) CreateArticle(ctx context.Context, title, author string, publishedAt time.Time) (model.Article, error) {
	start := time.Now()
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	var ferrs []FieldError
	if title == "" {
		ferrs = append(ferrs, FieldError{Field: "title", Message: "must not be empty"})
	} else if ln := len([]rune(title)); ln < 2 || ln > 200 {
		ferrs = append(ferrs, FieldError{Field: "title", Message: "length must be between 2 and 200"})
	}
	if author == "" {
		ferrs = append(ferrs, FieldError{Field: "author", Message: "must not be empty"})
	}
	if publishedAt.IsZero() {
		publishedAt = time.Now().UTC()
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("article validation failed")
		return model.Article{}, err
	}

	out, err := s.repo.Create(ctx, model.Article{Title: title, Author: author, PublishedAt: publishedAt})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("title", title).Msg("create article failed")
		return model.Article{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("article_id", out.ID).Msg("article created")
	return out, nil
}

func (s *articleService) GetArticle(ctx context.Context, id int64) (model.Article, error) {
	if id <= 0 {
		return model.Article{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *articleService) ListArticles(ctx context.Context, page repository.Page) (repository.PageResult[model.Article], error) {
	p := normalizePage(page)
	res, err := s.repo.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list articles failed")
		return repository.PageResult[model.Article]{}, err
	}
	return res, nil
}
