package http

import (
	"sort"
	"strings"
)

type ContentType string

const (
	ContentTypeJSON ContentType = "application/json"
	ContentTypeText ContentType = "text/plain"
)

func (ct ContentType) String() string { return string(ct) }

const headerContentLength = "Content-Length"

// Headers maps a header name to its value. Names are case sensitive and a name
// holds a single value.
type Headers map[string]string

func (h Headers) Get(name string) string {
	return h[name]
}

// Set inserts or overwrites the value stored for name. It returns h so calls
// can be chained.
func (h Headers) Set(name string, value string) Headers {
	h[name] = value
	return h
}

// Adds value to header, joining repeated names with ", "
func (h Headers) Add(name string, value string) Headers {
	if existing_value, ok := h[name]; ok {
		h[name] = existing_value + ", " + value
	} else {
		h[name] = value
	}
	return h
}

func (h Headers) Del(name string) Headers {
	delete(h, name)
	return h
}

// WireString renders the headers as "name: value" lines joined by CRLF, sorted
// by name. There is no trailing CRLF.
func (h Headers) WireString() string {
	lines := make([]string, 0, len(h))
	for _, name := range h.names() {
		lines = append(lines, name+": "+h[name])
	}
	return strings.Join(lines, "\r\n")
}

func (h Headers) names() []string {
	names := getKeys(h)
	sort.Strings(names)
	return names
}

// parseLine reads one request header line. Lines without a colon or with an
// invalid name are skipped, they do not fail the request.
func (h Headers) parseLine(line string) bool {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return false
	}

	name := strings.TrimSpace(parts[0])
	if name == "" || !isValidHeaderName(name) {
		return false
	}

	h.Add(name, strings.TrimSpace(parts[1]))
	return true
}

// See RFC 9110 5.1 and 5.6.2
func isValidHeaderName(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '!' || r == '#' || r == '$' || r == '%' || r == '&' ||
			r == '\'' || r == '*' || r == '+' || r == '-' || r == '.' ||
			r == '^' || r == '_' || r == '`' || r == '|' || r == '~':
			continue
		default:
			return false
		}
	}
	return true
}
