package usecase

import (
	"regexp"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
)

var payloadMarker = regexp.MustCompile(`(?i)payload\s*:`)

const rawExcerptLimit = 500

type PayloadOutcome string

const (
	PayloadFound          PayloadOutcome = "found"
	PayloadMarkerNotFound PayloadOutcome = "marker_not_found"
	PayloadNoObject       PayloadOutcome = "no_object"
)

// PayloadExtraction is the outcome of scanning a deploy log for its payload object.
// MarkerIndex is the byte offset of the marker, or -1 when it was not found.
type PayloadExtraction struct {
	Outcome     PayloadOutcome
	Payload     *model.PayloadObject
	MarkerIndex int
	Excerpt     string
}

// extractPayload locates the first "payload:" marker in text and decodes the JSON object
// that follows it. The object extent is found by counting '{' and '}' only, so braces in
// string literals are not distinguished.
func extractPayload(text string) (*PayloadExtraction, error) {
	loc := payloadMarker.FindStringIndex(text)
	if loc == nil {
		return &PayloadExtraction{Outcome: PayloadMarkerNotFound, MarkerIndex: -1}, nil
	}

	result := &PayloadExtraction{
		MarkerIndex: loc[0],
		Excerpt:     truncateRunes(text[loc[0]:], rawExcerptLimit),
	}

	start := -1
	for i := loc[1]; i < len(text); i++ {
		if text[i] == '{' {
			start = i
			break
		}
	}
	if start < 0 {
		result.Outcome = PayloadNoObject
		return result, nil
	}

	end := -1
	depth := 0
	for i := start; i < len(text) && end < 0; i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i
			}
		}
	}
	if end < 0 {
		return nil, goerr.Wrap(types.ErrUnbalancedBraces, "payload object is not closed",
			goerr.V("offset", start),
			goerr.V("depth", depth),
		)
	}

	payload, err := model.ParsePayloadObject([]byte(text[start : end+1]))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode payload object", goerr.V("offset", start))
	}

	result.Outcome = PayloadFound
	result.Payload = payload
	return result, nil
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
