package analysis

import (
	"context"

	"newslens/app/news"
)

// Aggregator maps the analyzer over a fetched article list.
type Aggregator struct {
	analyzer *Analyzer
}

func NewAggregator(analyzer *Analyzer) *Aggregator {
	return &Aggregator{analyzer: analyzer}
}

// Run analyzes each article in order, one at a time. The analyzed text is
// the article content, falling back to the description; articles with
// neither are dropped. IDs number the surviving articles from 0.
func (g *Aggregator) Run(ctx context.Context, articles []news.Article) []AnalyzedArticle {
	analyzed := make([]AnalyzedArticle, 0, len(articles))

	for _, article := range articles {
		text := article.Content
		if text == "" {
			text = article.Description
		}
		if text == "" {
			continue
		}

		result := g.analyzer.Run(ctx, text)

		analyzed = append(analyzed, AnalyzedArticle{
			ID:          len(analyzed),
			Title:       article.Title,
			Content:     text,
			PublishedAt: article.PublishedAt,
			Sentiment:   result.Sentiment,
			Entities:    result.Entities,
		})
	}

	return analyzed
}
