package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed indicates content could not be decoded as JSON, neither
// directly nor after stripping a surrounding markdown code fence.
var ErrParseFailed = errors.New("failed to parse response")

var fencedJSON = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// Parse decodes model output into T. Models sometimes wrap JSON in a
// markdown fence, so a failed direct decode falls back to extracting the
// fenced block before giving up with ErrParseFailed.
func Parse[T any](content string) (T, error) {
	var out T
	content = strings.TrimSpace(content)

	if json.Unmarshal([]byte(content), &out) == nil {
		return out, nil
	}

	if m := fencedJSON.FindStringSubmatch(content); len(m) >= 2 {
		if json.Unmarshal([]byte(strings.TrimSpace(m[1])), &out) == nil {
			return out, nil
		}
	}

	return out, fmt.Errorf("%w: %s", ErrParseFailed, content)
}
