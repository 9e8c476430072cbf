package nlp

import "context"

// Prediction is a single sentiment classification: a polarity label
// (POSITIVE or NEGATIVE for the binary model) and a confidence score
// between 0.0 and 1.0.
type Prediction struct {
	Label string
	Score float64
}

// Entity is a recognized span of text with its category label
// (PERSON, ORG, GPE, DATE, ...).
type Entity struct {
	Text  string
	Label string
}

// SentimentClassifier is a pretrained sentiment model consumed as a
// black-box inference service.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (Prediction, error)
}

// EntityRecognizer is a pretrained named-entity recognition model consumed
// as a black-box inference service.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}
