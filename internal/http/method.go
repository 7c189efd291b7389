package http

type Method int

const (
	MethodUnknown Method = iota
	MethodGet
	MethodPost
)

// ParseMethod maps a request-line token to a Method. Matching is exact, so
// "get" is MethodUnknown. Unknown methods never resolve to a route.
func ParseMethod(s string) Method {
	switch s {
	case "GET":
		return MethodGet
	case "POST":
		return MethodPost
	default:
		return MethodUnknown
	}
}

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	default:
		return "UNKNOWN"
	}
}
