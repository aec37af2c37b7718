package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"news_sentiment/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// Insert stores a single article and returns its generated id.
func (s *ArticleStore) Insert(ctx context.Context, article *domain.Article) (int64, error) {
	query := `
		INSERT INTO articles (
			title, source_id, country, publish_time, sentiment, category, link
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		article.Title,
		article.SourceID,
		article.Country,
		article.PublishTime.UTC(),
		article.Sentiment,
		article.Category,
		article.Link,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	article.ID = id
	return id, nil
}

// QueryWindow returns every article published at or after since, oldest first.
func (s *ArticleStore) QueryWindow(ctx context.Context, since time.Time) ([]domain.Article, error) {
	query := `
		SELECT id, title, source_id, country, publish_time, sentiment, category, link, created_at
		FROM articles
		WHERE publish_time >= $1
		ORDER BY publish_time ASC, id ASC`

	var articles []domain.Article
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles, query, since.UTC()); err != nil {
		return nil, err
	}

	for i := range articles {
		articles[i].PublishTime = articles[i].PublishTime.UTC()
	}
	return articles, nil
}

// EvictOlderThan deletes articles published before cutoff and reports how many
// rows were removed.
func (s *ArticleStore) EvictOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM articles WHERE publish_time < $1",
		cutoff.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
