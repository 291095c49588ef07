package ingestors

import (
	"fmt"
	"regexp"
	"strings"

	"session-analytics/internal/models"
)

// TokenizePath names the strategy that produced a token sequence.
type TokenizePath string

const (
	PathQuotedSplit     TokenizePath = "quoted_split"
	PathRequestRecovery TokenizePath = "request_recovery"
	PathNone            TokenizePath = "none"
)

// TokenizeResult is the tagged outcome of tokenizing one line: either Tokens (one per schema field)
// with the Path that produced them, or Err wrapping ErrMalformedLine.
type TokenizeResult struct {
	Tokens []string
	Path   TokenizePath
	Err    error
}

func (r TokenizeResult) OK() bool {
	return r.Err == nil
}

type LineTokenizer interface {
	Tokenize(line string) TokenizeResult
}

// tokenizeStrategy returns the tokens for line and whether they satisfy the schema.
type tokenizeStrategy struct {
	path  TokenizePath
	split func(line string, schema models.LogSchema) ([]string, bool)
}

type lineTokenizer struct {
	schema     models.LogSchema
	strategies []tokenizeStrategy
}

// NewLineTokenizer splits lines on blanks outside double quotes. When that does not yield exactly one
// token per schema field, the request field is re-derived from its "METHOD target HTTP/x.y" shape.
func NewLineTokenizer(schema models.LogSchema) LineTokenizer {
	return &lineTokenizer{
		schema: schema,
		strategies: []tokenizeStrategy{
			{path: PathQuotedSplit, split: quotedSplitStrategy},
			{path: PathRequestRecovery, split: requestRecoveryStrategy},
		},
	}
}

func (t *lineTokenizer) Tokenize(line string) TokenizeResult {
	for _, strategy := range t.strategies {
		if tokens, ok := strategy.split(line, t.schema); ok {
			return TokenizeResult{Tokens: tokens, Path: strategy.path}
		}
	}
	return TokenizeResult{
		Path: PathNone,
		Err:  fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedLine, t.schema.Len(), len(splitQuoted(line))),
	}
}

func quotedSplitStrategy(line string, schema models.LogSchema) ([]string, bool) {
	if strings.Count(line, `"`)%2 != 0 {
		return nil, false
	}
	tokens := splitQuoted(line)
	return tokens, len(tokens) == schema.Len()
}

// requestLinePattern matches a quoted request line plus the delimiter after it. The greedy target
// swallows stray quotes inside the request.
var requestLinePattern = regexp.MustCompile(`"([A-Z]+ .* HTTP/[0-9]+\.[0-9]+)"( |$)`)

func requestRecoveryStrategy(line string, schema models.LogSchema) ([]string, bool) {
	requestIdx := schema.IndexOf(models.FieldRequest)
	if requestIdx < 0 {
		return nil, false
	}
	loc := requestLinePattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return nil, false
	}
	request := line[loc[2]:loc[3]]
	remainder := line[:loc[0]] + line[loc[1]:]

	rest := splitQuoted(remainder)
	if len(rest)+1 != schema.Len() || requestIdx > len(rest) {
		return nil, false
	}

	tokens := make([]string, 0, schema.Len())
	tokens = append(tokens, rest[:requestIdx]...)
	tokens = append(tokens, request)
	tokens = append(tokens, rest[requestIdx:]...)
	return tokens, true
}

// splitQuoted splits on runs of blanks that are not inside double quotes. A token wrapped in quotes
// loses that outer pair, so `"GET / HTTP/1.1"` yields `GET / HTTP/1.1` and `""` yields an empty
// token. Quotes inside a token are kept: `"GET /a"b"c HTTP/1.1"` yields `GET /a"b"c HTTP/1.1`.
func splitQuoted(line string) []string {
	var (
		tokens   []string
		start    = -1
		inQuotes bool
	)
	flush := func(end int) {
		tokens = append(tokens, unquote(line[start:end]))
		start = -1
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case (c == ' ' || c == '\t') && !inQuotes:
			if start >= 0 {
				flush(i)
			}
		default:
			if c == '"' {
				inQuotes = !inQuotes
			}
			if start < 0 {
				start = i
			}
		}
	}
	if start >= 0 {
		flush(len(line))
	}
	return tokens
}

func unquote(token string) string {
	if len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"' {
		return token[1 : len(token)-1]
	}
	return token
}
