package complete

import "strings"

// Context is the operation the user is performing. It biases ranking only;
// candidate generation is identical across contexts.
type Context int

const (
	ContextInstall Context = iota
	ContextRemove
	ContextSearch
	ContextSuggest
)

func (c Context) String() string {
	switch c {
	case ContextRemove:
		return "remove"
	case ContextSearch:
		return "search"
	case ContextSuggest:
		return "suggest"
	default:
		return "install"
	}
}

// ParseContext maps a context name to its Context. Unknown or empty values
// fall back to install semantics, never an error.
func ParseContext(name string) Context {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "remove", "uninstall":
		return ContextRemove
	case "search":
		return ContextSearch
	case "suggest":
		return ContextSuggest
	default:
		return ContextInstall
	}
}
