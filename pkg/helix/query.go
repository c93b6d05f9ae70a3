package helix

import (
	"net/url"
	"strconv"
	"strings"
)

// Query is an insertion-ordered list of query parameters. Unlike url.Values,
// whose Encode sorts keys alphabetically, Query preserves the order in which
// parameters were added, so endpoint Query() methods produce the same URI
// byte for byte on every call. Repeated keys encode as repeated parameters
// (user_id=2&user_id=3).
type Query struct {
	pairs []queryPair
}

type queryPair struct {
	key   string
	value string
}

// Add appends a parameter. Empty values are appended as-is; callers omit
// optional fields by not calling Add for them.
func (q *Query) Add(key, value string) {
	q.pairs = append(q.pairs, queryPair{key: key, value: value})
}

// AddInt appends an integer parameter.
func (q *Query) AddInt(key string, value int) {
	q.Add(key, strconv.Itoa(value))
}

// Len reports the number of parameters added.
func (q *Query) Len() int {
	return len(q.pairs)
}

// Encode returns the query string in insertion order with percent-encoded
// keys and values, or "" when no parameter was added.
func (q *Query) Encode() string {
	if len(q.pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
