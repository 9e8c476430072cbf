package analysis

import (
	"context"
	"log/slog"

	"newslens/app/nlp"
)

// sentimentMaxChars is the input-length limit of the sentiment model.
const sentimentMaxChars = 512

// neutralThreshold dampens the binary model's output: predictions below
// this confidence are reported as NEUTRAL. The threshold is intentionally
// a single symmetric cutoff for both polarities.
const neutralThreshold = 0.95

// Analyzer turns raw article text into a sentiment + entity annotation.
// Both model clients are process-wide, read-only state; the recognizer may
// be nil when the NER service was unavailable at startup.
type Analyzer struct {
	classifier nlp.SentimentClassifier
	recognizer nlp.EntityRecognizer
}

func NewAnalyzer(classifier nlp.SentimentClassifier, recognizer nlp.EntityRecognizer) *Analyzer {
	return &Analyzer{
		classifier: classifier,
		recognizer: recognizer,
	}
}

// Run analyzes a single text. It never fails: model errors degrade to
// UNKNOWN sentiment or empty entity sets and are not propagated.
func (a *Analyzer) Run(ctx context.Context, text string) Result {
	return Result{
		Sentiment: a.classifySentiment(ctx, text),
		Entities:  a.collectEntities(ctx, text),
	}
}

func (a *Analyzer) classifySentiment(ctx context.Context, text string) Sentiment {
	prediction, err := a.classifier.Classify(ctx, truncateRunes(text, sentimentMaxChars))
	if err != nil {
		slog.Warn("Sentiment inference failed", "error", err)
		return Sentiment{Label: LabelUnknown, Score: 0.0}
	}

	label := prediction.Label
	if prediction.Score < neutralThreshold {
		label = LabelNeutral
	}

	return Sentiment{Label: label, Score: prediction.Score}
}

func (a *Analyzer) collectEntities(ctx context.Context, text string) EntitySet {
	set := newEntitySet()

	if a.recognizer == nil {
		return set
	}

	// The recognizer gets the full text, not the truncated one.
	entities, err := a.recognizer.Recognize(ctx, text)
	if err != nil {
		slog.Warn("Entity recognition failed", "error", err)
		return set
	}

	seen := make(map[string]map[string]bool, len(entityCategories))
	for _, category := range entityCategories {
		seen[category] = make(map[string]bool)
	}

	for _, entity := range entities {
		texts, ok := set[entity.Label]
		if !ok {
			continue
		}
		if seen[entity.Label][entity.Text] {
			continue
		}
		seen[entity.Label][entity.Text] = true
		set[entity.Label] = append(texts, entity.Text)
	}

	return set
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
