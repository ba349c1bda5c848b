package httpmiddleware

import "net/url"

// Route is an operation of a generated API server.
type Route interface {
	OperationID() string
	PathPattern() string
}

// RouteFinder finds the route serving a request.
type RouteFinder func(method string, u *url.URL) (Route, bool)

// MakeRouteFinder adapts the FindPath method of a generated server.
func MakeRouteFinder[R Route](findPath func(method string, u *url.URL) (R, bool)) RouteFinder {
	return func(method string, u *url.URL) (Route, bool) {
		route, ok := findPath(method, u)
		if !ok {
			return nil, false
		}
		return route, true
	}
}
