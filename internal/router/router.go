package router

import "hello_server/types"

const homeRequestLine = "GET / HTTP/1.1"

// Decision is the status line and resource chosen for one request line.
type Decision struct {
	StatusLine string
	Resource   string
}

type Router struct {
	home     Decision
	notFound Decision
}

func New(homeResource, notFoundResource string) *Router {
	return &Router{
		home:     Decision{StatusLine: types.StatusLineOK, Resource: homeResource},
		notFound: Decision{StatusLine: types.StatusLineNotFound, Resource: notFoundResource},
	}
}

// Route matches the request line verbatim. Everything except the home
// request line, including empty and malformed lines, gets the not-found decision.
func (r *Router) Route(line string) Decision {
	if line == homeRequestLine {
		return r.home
	}
	return r.notFound
}
