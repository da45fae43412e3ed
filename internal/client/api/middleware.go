package api

import "net/http"

// Middleware is a request preprocessing hook, used to inject headers
// before a request goes out.
type Middleware func(req *http.Request) error

// PrepareChain is an ordered set of middlewares.
type PrepareChain []Middleware

// Apply runs the chain in order, stopping at the first error.
func (c PrepareChain) Apply(req *http.Request) error {
	for _, mw := range c {
		if mw == nil {
			continue
		}
		if err := mw(req); err != nil {
			return err
		}
	}
	return nil
}

// WithHeader sets a static header on every request.
func WithHeader(key, value string) Middleware {
	return func(req *http.Request) error {
		req.Header.Set(key, value)
		return nil
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Middleware {
	return WithHeader("User-Agent", ua)
}
