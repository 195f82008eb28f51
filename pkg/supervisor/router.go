package supervisor

import (
	"sort"
	"strings"
)

// Router maps event types to policies: exact match first, then the
// longest matching prefix pattern ("task.*"), then the default.
type Router struct {
	exact    map[string]Policy
	prefixes []prefixRoute
	fallback Policy
}

type prefixRoute struct {
	prefix string
	policy Policy
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{exact: make(map[string]Policy)}
}

// Register binds a pattern to a policy. A trailing "*" makes it a
// prefix pattern; "*" alone sets the default policy. Later
// registrations for the same pattern win.
func (r *Router) Register(pattern string, policy Policy) {
	switch {
	case pattern == "*":
		r.fallback = policy
	case strings.HasSuffix(pattern, "*"):
		prefix := strings.TrimSuffix(pattern, "*")
		for i := range r.prefixes {
			if r.prefixes[i].prefix == prefix {
				r.prefixes[i].policy = policy
				return
			}
		}
		r.prefixes = append(r.prefixes, prefixRoute{prefix: prefix, policy: policy})
		// Longest prefix wins on lookup.
		sort.SliceStable(r.prefixes, func(a, b int) bool {
			return len(r.prefixes[a].prefix) > len(r.prefixes[b].prefix)
		})
	default:
		r.exact[pattern] = policy
	}
}

// Route returns at most one policy for an event type; nil when nothing
// matches.
func (r *Router) Route(eventType string) Policy {
	if p, ok := r.exact[eventType]; ok {
		return p
	}
	for _, pr := range r.prefixes {
		if strings.HasPrefix(eventType, pr.prefix) {
			return pr.policy
		}
	}
	return r.fallback
}
