package jsonfmt

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// InvalidPrefix starts the text shown when a response is not valid JSON
const InvalidPrefix = "Invalid JSON response: "

const indentUnit = "  "

// Options tune the rendering
type Options struct {
	// EscapeStrings writes strings and keys JSON-escaped. When false they are
	// written verbatim between double quotes, so embedded quotes and control
	// characters pass through untouched.
	EscapeStrings bool
}

// Render parses raw and formats it with default options. A parse failure
// yields InvalidPrefix followed by the parser's error description.
func Render(raw []byte) string {
	return RenderWith(raw, Options{})
}

// RenderWith is Render with explicit options
func RenderWith(raw []byte, opts Options) string {
	v, err := Parse(raw)
	if err != nil {
		return InvalidPrefix + err.Error()
	}
	return FormatWith(v, opts)
}

// Format renders v as indented text with default options
func Format(v Value) string {
	return FormatWith(v, Options{})
}

// FormatWith renders v as indented text
func FormatWith(v Value, opts Options) string {
	var sb strings.Builder
	writeValue(&sb, v, 0, opts)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value, level int, opts Options) {
	indent := strings.Repeat(indentUnit, level)

	switch v.Kind {
	case Object:
		sb.WriteString("{\n")
		for _, m := range v.Members {
			sb.WriteString(indent)
			sb.WriteString(indentUnit)
			sb.WriteString(quote(m.Key, opts))
			sb.WriteString(": ")
			writeValue(sb, m.Value, level+1, opts)
			sb.WriteString("\n")
		}
		sb.WriteString(indent)
		sb.WriteString("}")
	case Array:
		sb.WriteString("[\n")
		for _, item := range v.Items {
			sb.WriteString(indent)
			sb.WriteString(indentUnit)
			writeValue(sb, item, level+1, opts)
			sb.WriteString("\n")
		}
		sb.WriteString(indent)
		sb.WriteString("]")
	case String:
		sb.WriteString(quote(v.Str, opts))
	case Number:
		sb.WriteString(FormatNumber(v.Number))
	case Bool:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case Null:
		sb.WriteString("null")
	}
}

func quote(s string, opts Options) string {
	if !opts.EscapeStrings {
		return `"` + s + `"`
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `"` + s + `"`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// FormatNumber returns the shortest text that round-trips to f. Magnitudes
// in [1e-6, 1e21) are written in plain decimal, others in exponent form.
func FormatNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}

	b := strconv.AppendFloat(nil, f, format, -1, 64)
	if format == 'e' {
		// 1e-07 -> 1e-7
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b)
}
