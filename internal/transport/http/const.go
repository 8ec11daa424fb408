package http

const (
	// DefaultUserAgent is the User-Agent sent when the configuration does not set one.
	// The registry rejects some requests that carry a non-browser User-Agent.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36" //nolint: lll

	// minErrorStatusCode is the lowest status code logged as an error.
	minErrorStatusCode = 400
)
