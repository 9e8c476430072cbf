package cfg

type Cfg struct {
	// Database configuration
	DBPath string

	// News service configuration
	NewsAPIKey string
	NewsAPIURL string

	// Model inference configuration
	SentimentURL string
	NERURL       string

	// Application configuration
	Port          string
	SessionSecret string
	TopicsFile    string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
