package httpwire

import (
	"net/url"
	"strconv"
	"strings"
)

// ParseForm decodes a URL-encoded form body ("username=bob&password=1234")
// into a key/value map. Malformed pairs are reported as errors instead of
// being skipped or panicking, so handlers can turn them into a 400 response.
func ParseForm(body string) (map[string]string, error) {
	form := make(map[string]string)
	if body == "" {
		return form, nil
	}
	for _, pair := range strings.Split(body, "&") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			return nil, &ParseError{Op: "parse form pair " + strconv.Quote(pair), Err: ErrMalformedForm}
		}
		key, err := unescapeForm(kv[0])
		if err != nil {
			return nil, &ParseError{Op: "unescape form key " + strconv.Quote(kv[0]), Err: ErrMalformedForm}
		}
		value, err := unescapeForm(kv[1])
		if err != nil {
			return nil, &ParseError{Op: "unescape form value " + strconv.Quote(kv[1]), Err: ErrMalformedForm}
		}
		form[key] = value
	}
	return form, nil
}

func unescapeForm(s string) (string, error) {
	return url.QueryUnescape(s)
}
