package mock

import "time"

// Config represents the mock peer configuration
type Config struct {
	Port      int        `json:"port" yaml:"port"`                               // Listen port (default: 8080)
	Host      string     `json:"host" yaml:"host"`                               // Listen host (default: 127.0.0.1)
	Responses []Response `json:"responses" yaml:"responses"`                     // Response rules, first match wins
	Logging   bool       `json:"logging" yaml:"logging"`                         // Keep an exchange log
	ReadSize  int        `json:"readSize,omitempty" yaml:"readSize,omitempty"`   // Bytes read per connection (default: 64KiB)
}

// Response describes what the peer replies to a matching payload
type Response struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`           // Rule description
	Match     string `json:"match,omitempty" yaml:"match,omitempty"`         // exact, prefix, regex, any (default: exact)
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`     // Compared against the payload text
	Body      string `json:"body,omitempty" yaml:"body,omitempty"`           // Reply bytes
	BodyFile  string `json:"bodyFile,omitempty" yaml:"bodyFile,omitempty"`   // Path to reply file
	Delay     int    `json:"delay,omitempty" yaml:"delay,omitempty"`         // Reply delay in milliseconds
	SplitAt   int    `json:"splitAt,omitempty" yaml:"splitAt,omitempty"`     // Write the body in two parts at this offset
	SplitWait int    `json:"splitWait,omitempty" yaml:"splitWait,omitempty"` // Pause between the two parts in milliseconds
}

// ExchangeLog represents one logged connection
type ExchangeLog struct {
	ID          string        `json:"id"`
	Timestamp   time.Time     `json:"timestamp"`
	Remote      string        `json:"remote"`
	Payload     string        `json:"payload"`
	MatchedRule string        `json:"matchedRule"`
	Reply       string        `json:"reply"`
	Duration    time.Duration `json:"duration"`
}
