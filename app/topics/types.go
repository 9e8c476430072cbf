package topics

// Topic is a curated dashboard preset: a display name plus the query to
// run against the news search API when the user picks it.
type Topic struct {
	Name        string `yaml:"name" json:"name"`
	Query       string `yaml:"query" json:"query"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type topicsFile struct {
	Topics []Topic `yaml:"topics"`
}
