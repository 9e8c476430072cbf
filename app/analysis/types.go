package analysis

// Sentiment labels. The underlying model is binary (POSITIVE/NEGATIVE);
// NEUTRAL and UNKNOWN are produced by the analyzer itself.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	LabelNeutral  = "NEUTRAL"
	LabelUnknown  = "UNKNOWN"
)

// Entity categories surfaced to the dashboard. Everything else the
// recognizer reports is discarded.
const (
	CategoryPerson = "PERSON"
	CategoryOrg    = "ORG"
	CategoryGPE    = "GPE"
)

var entityCategories = []string{CategoryPerson, CategoryOrg, CategoryGPE}

type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// EntitySet maps an entity category to the distinct entity texts found in
// it. All three categories are always present; empty ones marshal as [].
type EntitySet map[string][]string

func newEntitySet() EntitySet {
	set := make(EntitySet, len(entityCategories))
	for _, category := range entityCategories {
		set[category] = []string{}
	}
	return set
}

// Result is the annotation produced for a single text.
type Result struct {
	Sentiment Sentiment
	Entities  EntitySet
}

// AnalyzedArticle is one entry of the analysis API response. ID is the
// article's position within the filtered response, not a durable identifier.
type AnalyzedArticle struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PublishedAt string    `json:"published_at"`
	Sentiment   Sentiment `json:"sentiment"`
	Entities    EntitySet `json:"entities"`
}
