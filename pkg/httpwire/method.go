package httpwire

// Method is an HTTP request method. Only GET and POST are supported.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// ParseMethod converts a request-line token into a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "GET":
		return MethodGet, nil
	case "POST":
		return MethodPost, nil
	default:
		return "", &ParseError{Op: "parse method " + s, Err: ErrUnsupportedMethod}
	}
}

func (m Method) String() string { return string(m) }
