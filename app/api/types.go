package api

import (
	"context"

	"newslens/app/analysis"
	"newslens/app/database"
	"newslens/app/news"
	"newslens/app/topics"
)

type NewsFetcher interface {
	Search(ctx context.Context, keyword, langCode string) ([]news.Article, error)
	Latest(ctx context.Context) ([]news.Article, error)
}

var _ NewsFetcher = (*news.Client)(nil)

type AggregatorInterface interface {
	Run(ctx context.Context, articles []news.Article) []analysis.AnalyzedArticle
}

var _ AggregatorInterface = (*analysis.Aggregator)(nil)

type TopicSource interface {
	GetTopics() []topics.Topic
	GetTopicCount() int
}

var _ TopicSource = (*topics.Cache)(nil)

type Handler struct {
	userRepo   database.UserRepository
	fetcher    NewsFetcher
	aggregator AggregatorInterface
	topics     TopicSource
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type profileRequest struct {
	Language  string   `json:"language" binding:"required"`
	Interests []string `json:"interests"`
}

type profileResponse struct {
	Email     string   `json:"email"`
	Language  string   `json:"language"`
	Interests []string `json:"interests"`
}
