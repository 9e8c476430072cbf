package news

import "fmt"

// Article is a single record returned by the news search API. All fields
// are optional on the wire; Content may be empty while Description is not.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	PublishedAt string `json:"publishedAt"`
}

type searchResponse struct {
	Status   string    `json:"status"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Articles []Article `json:"articles"`
}

// UnavailableError indicates the news service could not be reached at the
// transport level.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("news service unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// APIError indicates the news service was reached but rejected the request,
// reporting a non-ok status in the payload. Message carries the upstream
// message verbatim.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("news API error: %s", e.Message)
}
