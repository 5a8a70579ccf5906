package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/studiowebux/tcpjson/internal/config"
	"github.com/studiowebux/tcpjson/internal/filter"
	"github.com/studiowebux/tcpjson/internal/jsonfmt"
	"github.com/studiowebux/tcpjson/internal/transport"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Run
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// RunOptions contains options for a one-shot send
type RunOptions struct {
	Config       config.Config
	Payload      string // Sent as is when PayloadSet
	PayloadSet   bool   // Payload was given, even if empty; otherwise read Stdin
	OutputFormat string // text, json, yaml
	Query        string // JMESPath query or $(shell command)

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Result is the structured form printed by the json and yaml outputs
type Result struct {
	ID            string `json:"id" yaml:"id"`
	Address       string `json:"address" yaml:"address"`
	BytesSent     int    `json:"bytesSent" yaml:"bytesSent"`
	BytesReceived int    `json:"bytesReceived" yaml:"bytesReceived"`
	Duration      string `json:"duration" yaml:"duration"`
	Body          string `json:"body" yaml:"body"`
	Formatted     string `json:"formatted" yaml:"formatted"`
}

// Run sends a single payload and prints the response
func Run(ctx context.Context, opts RunOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}

	format := opts.OutputFormat
	if format == "" {
		format = OutputText
	}
	if format != OutputText && format != OutputJSON && format != OutputYAML {
		return fmt.Errorf("unknown output format %q (expected text, json or yaml)", format)
	}

	if err := opts.Config.Validate(); err != nil {
		return err
	}

	payload := opts.Payload
	if !opts.PayloadSet {
		data, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read payload from stdin: %w", err)
		}
		payload = string(data)
	}

	client := transport.NewClient(opts.Config)
	exchange, err := client.Send(ctx, []byte(payload))
	if err != nil {
		if errors.Is(err, transport.ErrConnect) {
			fmt.Fprintln(opts.Stdout, transport.ConnectFailureMessage)
		}
		return err
	}

	body := exchange.Response
	if opts.Query != "" {
		filtered, err := filter.Apply(body, opts.Query)
		if err != nil {
			fmt.Fprintf(opts.Stderr, "Warning: query error: %v\n", err)
		} else {
			body = filtered
		}
	}

	formatted := jsonfmt.RenderWith(body, jsonfmt.Options{EscapeStrings: opts.Config.EscapeStrings})

	output, err := formatOutput(exchange, body, formatted, format)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Fprint(opts.Stdout, output)
	return nil
}

// formatOutput formats the exchange based on the output format
func formatOutput(exchange *transport.Exchange, body []byte, formatted, format string) (string, error) {
	result := Result{
		ID:            exchange.ID,
		Address:       exchange.Address,
		BytesSent:     exchange.BytesSent,
		BytesReceived: exchange.BytesReceived,
		Duration:      exchange.Duration.Round(time.Microsecond).String(),
		Body:          string(body),
		Formatted:     formatted,
	}

	switch format {
	case OutputJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case OutputYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return "", err
		}
		return string(data), nil

	default:
		if !strings.HasSuffix(formatted, "\n") {
			formatted += "\n"
		}
		return formatted, nil
	}
}
