package topics

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Cache holds the curated topics loaded at startup. The list is immutable
// for the lifetime of the process.
type Cache struct {
	file   string
	topics []Topic
}

func NewCache(file string) *Cache {
	return &Cache{file: file}
}

// Run loads and validates the topics file. A missing file is not an
// error; the dashboard simply gets no presets.
func (c *Cache) Run() error {
	data, err := os.ReadFile(c.file)
	if os.IsNotExist(err) {
		slog.Debug("Topics file not found, no presets loaded", "file", c.file)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read topics file: %w", err)
	}

	var parsed topicsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse topics file: %w", err)
	}

	for i, topic := range parsed.Topics {
		if topic.Name == "" {
			return fmt.Errorf("topic at index %d has no name", i)
		}
		if topic.Query == "" {
			return fmt.Errorf("topic %q has no query", topic.Name)
		}
	}

	c.topics = parsed.Topics
	slog.Debug("Topics loaded", "file", c.file, "count", len(c.topics))

	return nil
}

// GetTopics returns the loaded presets, never nil.
func (c *Cache) GetTopics() []Topic {
	if c.topics == nil {
		return []Topic{}
	}
	return c.topics
}

func (c *Cache) GetTopicCount() int {
	return len(c.topics)
}
