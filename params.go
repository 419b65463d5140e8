package verity

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ErrMissingArgument is returned, wrapped with the argument name, when a
// required argument is empty or blank. Nothing is sent in that case.
var ErrMissingArgument = errors.New("verity: missing required argument")

func missingArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingArgument, name)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NewIdempotencyKey returns a random key suitable for the IdempotencyKey field
// of write requests. Reuse the same key when resending the same request.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

// idempotencyHeaders returns the extra headers for a write call, or nil when
// no key was given.
func idempotencyHeaders(key string) map[string]string {
	if isBlank(key) {
		return nil
	}
	return map[string]string{IdempotencyKeyHeader: key}
}

// queryParams collects query string values. Setters drop blank values so a
// request never carries empty parameters.
type queryParams url.Values

func (p queryParams) setString(key, value string) {
	if !isBlank(value) {
		url.Values(p).Set(key, value)
	}
}

// setStrings flattens values into one comma-joined parameter.
func (p queryParams) setStrings(key string, values []string) {
	if joined := strings.Join(nonBlank(values), ","); joined != "" {
		url.Values(p).Set(key, joined)
	}
}

func (p queryParams) setInt(key string, value int) {
	if value > 0 {
		url.Values(p).Set(key, strconv.Itoa(value))
	}
}

func (p queryParams) setBool(key string, value bool) {
	url.Values(p).Set(key, strconv.FormatBool(value))
}

// buildPath appends the percent-encoded query to path. Keys are sorted.
func buildPath(path string, params queryParams) string {
	if len(params) == 0 {
		return path
	}
	// url.Values encodes spaces as '+'; the API expects %20. Literal '+' is
	// already escaped as %2B so the replacement is unambiguous.
	return path + "?" + strings.ReplaceAll(url.Values(params).Encode(), "+", "%20")
}

// pathSegment escapes a caller-supplied id for use inside a path.
func pathSegment(id string) string {
	return url.PathEscape(strings.TrimSpace(id))
}

// requestBody is a JSON object under construction. Like queryParams, setters
// skip blank values so absent options never reach the wire as null or "".
type requestBody map[string]any

func (b requestBody) setString(key, value string) {
	if !isBlank(value) {
		b[key] = value
	}
}

// setStrings keeps values as a JSON array.
func (b requestBody) setStrings(key string, values []string) {
	if kept := nonBlank(values); len(kept) > 0 {
		b[key] = kept
	}
}

func (b requestBody) setInt(key string, value int) {
	if value > 0 {
		b[key] = value
	}
}

func (b requestBody) setObject(key string, value map[string]any) {
	if len(value) > 0 {
		b[key] = value
	}
}

func nonBlank(values []string) []string {
	var kept []string
	for _, v := range values {
		if !isBlank(v) {
			kept = append(kept, v)
		}
	}
	return kept
}
