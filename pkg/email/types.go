package email

import "time"

type Config struct {
	BaseURL string
	APIKey  string
	From    string
	Timeout time.Duration

	// MaxFailures consecutive failures open the breaker for OpenTimeout.
	MaxFailures   uint32
	OpenTimeout   time.Duration
	FailureWindow time.Duration
}

// Message is a plain-text email. TemplateID is passed through to the
// provider when set.
type Message struct {
	To         string
	Subject    string
	Body       string
	TemplateID string
	Data       map[string]string
}

type sendRequest struct {
	From       string            `json:"from"`
	To         string            `json:"to"`
	Subject    string            `json:"subject"`
	Text       string            `json:"text"`
	TemplateID string            `json:"template_id,omitempty"`
	Data       map[string]string `json:"data,omitempty"`
}
