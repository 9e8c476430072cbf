package analysis

import (
	"context"
	"encoding/json"
	"testing"

	"newslens/app/news"
	"newslens/app/nlp"
)

func TestAggregatorSkipsArticlesWithoutText(t *testing.T) {
	classifier := &fakeClassifier{prediction: nlp.Prediction{Label: "POSITIVE", Score: 0.99}}
	aggregator := NewAggregator(NewAnalyzer(classifier, nil))

	articles := []news.Article{
		{Title: "Empty", Content: "", Description: ""},
		{Title: "Has content", Content: "Some content"},
		{Title: "Also empty"},
		{Title: "Has description", Description: "Some description"},
	}

	analyzed := aggregator.Run(context.Background(), articles)

	if len(analyzed) != 2 {
		t.Fatalf("Expected 2 analyzed articles, got %d", len(analyzed))
	}

	// IDs number the surviving articles, not the input positions
	if analyzed[0].ID != 0 || analyzed[1].ID != 1 {
		t.Errorf("Expected IDs 0 and 1, got %d and %d", analyzed[0].ID, analyzed[1].ID)
	}
	if analyzed[0].Title != "Has content" {
		t.Errorf("Input order should be preserved, got first title '%s'", analyzed[0].Title)
	}
}

func TestAggregatorPrefersContentOverDescription(t *testing.T) {
	classifier := &fakeClassifier{prediction: nlp.Prediction{Label: "POSITIVE", Score: 0.99}}
	aggregator := NewAggregator(NewAnalyzer(classifier, nil))

	articles := []news.Article{
		{Title: "Both", Content: "the content", Description: "the description"},
		{Title: "Only description", Description: "fallback text"},
	}

	analyzed := aggregator.Run(context.Background(), articles)

	if analyzed[0].Content != "the content" {
		t.Errorf("Content must be preferred verbatim, got '%s'", analyzed[0].Content)
	}
	if analyzed[1].Content != "fallback text" {
		t.Errorf("Description fallback expected, got '%s'", analyzed[1].Content)
	}
}

func TestAggregatorEmptyInput(t *testing.T) {
	classifier := &fakeClassifier{prediction: nlp.Prediction{Label: "POSITIVE", Score: 0.99}}
	aggregator := NewAggregator(NewAnalyzer(classifier, nil))

	analyzed := aggregator.Run(context.Background(), nil)

	if len(analyzed) != 0 {
		t.Errorf("Expected empty output, got %d articles", len(analyzed))
	}
	if analyzed == nil {
		t.Error("Output should be an empty slice, not nil, so it marshals as []")
	}
}

func TestAggregatorHighConfidenceScenario(t *testing.T) {
	classifier := &fakeClassifier{prediction: nlp.Prediction{Label: "POSITIVE", Score: 0.97}}
	recognizer := &fakeRecognizer{entities: []nlp.Entity{}}
	aggregator := NewAggregator(NewAnalyzer(classifier, recognizer))

	articles := []news.Article{
		{Title: "A", Content: "Great news for the economy", PublishedAt: "2024-01-01"},
	}

	analyzed := aggregator.Run(context.Background(), articles)

	data, err := json.Marshal(analyzed)
	if err != nil {
		t.Fatal(err)
	}

	want := `[{"id":0,"title":"A","content":"Great news for the economy",` +
		`"published_at":"2024-01-01","sentiment":{"label":"POSITIVE","score":0.97},` +
		`"entities":{"GPE":[],"ORG":[],"PERSON":[]}}]`
	if string(data) != want {
		t.Errorf("Unexpected response payload:\n got  %s\n want %s", data, want)
	}
}

func TestAggregatorLowConfidenceScenario(t *testing.T) {
	classifier := &fakeClassifier{prediction: nlp.Prediction{Label: "POSITIVE", Score: 0.60}}
	aggregator := NewAggregator(NewAnalyzer(classifier, nil))

	articles := []news.Article{
		{Title: "A", Content: "Great news for the economy", PublishedAt: "2024-01-01"},
	}

	analyzed := aggregator.Run(context.Background(), articles)

	if analyzed[0].Sentiment.Label != LabelNeutral {
		t.Errorf("Expected NEUTRAL, got %s", analyzed[0].Sentiment.Label)
	}
	if analyzed[0].Sentiment.Score != 0.60 {
		t.Errorf("Expected score 0.60, got %f", analyzed[0].Sentiment.Score)
	}
}

func TestAggregatorAllEmptyScenario(t *testing.T) {
	classifier := &fakeClassifier{prediction: nlp.Prediction{Label: "POSITIVE", Score: 0.99}}
	aggregator := NewAggregator(NewAnalyzer(classifier, nil))

	articles := []news.Article{
		{Title: "B", Content: "", Description: ""},
	}

	analyzed := aggregator.Run(context.Background(), articles)

	if len(analyzed) != 0 {
		t.Errorf("Expected empty output, got %d articles", len(analyzed))
	}
}

func TestAggregatorPerArticleFailureIsIsolated(t *testing.T) {
	// The classifier fails on every call; each article degrades
	// independently and the list keeps its shape.
	classifier := &fakeClassifier{err: context.DeadlineExceeded}
	aggregator := NewAggregator(NewAnalyzer(classifier, nil))

	articles := []news.Article{
		{Title: "One", Content: "first"},
		{Title: "Two", Content: "second"},
	}

	analyzed := aggregator.Run(context.Background(), articles)

	if len(analyzed) != 2 {
		t.Fatalf("Expected 2 articles despite failures, got %d", len(analyzed))
	}
	for i, a := range analyzed {
		if a.Sentiment.Label != LabelUnknown {
			t.Errorf("Article %d should be UNKNOWN, got %s", i, a.Sentiment.Label)
		}
	}
}
