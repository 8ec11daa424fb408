package http

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/oshokin/gosuslugi-grabber/internal/config"
	"github.com/oshokin/gosuslugi-grabber/internal/logger"
	"github.com/oshokin/gosuslugi-grabber/internal/utils"
)

// LogTransport is an http.RoundTripper that logs registry traffic.
// Failed transactions (transport errors and statuses >= 400) are always logged at error level,
// full request/response dumps are written only at debug level.
type LogTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// maxLogLength is the maximum length of logged request/response data.
	maxLogLength uint64
}

// Static error definitions for better error handling.
var (
	// ErrNilRequest indicates that the HTTP request is nil.
	ErrNilRequest = errors.New("request is nil")
)

// NewLogTransport creates and returns a new instance of LogTransport.
// A zero maxLogLength defaults to config.DefaultMaxLogLength.
func NewLogTransport(next http.RoundTripper, maxLogLength uint64) http.RoundTripper {
	if maxLogLength == 0 {
		maxLogLength = config.DefaultMaxLogLength
	}

	return &LogTransport{
		next:         next,
		maxLogLength: maxLogLength,
	}
}

// RoundTrip executes a single HTTP transaction and logs it.
// It implements the http.RoundTripper interface.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	var (
		ctx         = req.Context()
		isDebug     = logger.IsDebugLevel()
		requestDump string
	)

	// The dump has to be taken before the body is consumed by the next round tripper.
	if isDebug {
		requestDump = t.dumpRequest(req)
	}

	startTime := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(startTime)

	if err != nil {
		logger.ErrorKV(ctx, "Request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"duration", duration,
			"error", err)

		return nil, err
	}

	if resp.StatusCode >= minErrorStatusCode {
		logger.ErrorKV(ctx, "Request answered with an error status",
			"method", req.Method,
			"url", req.URL.String(),
			"status", resp.StatusCode,
			"duration", duration)
	}

	if isDebug {
		logger.Debugf(ctx, "%s %s [%d] %s\nRequest: %s\nResponse: %s",
			req.Method, req.URL.Path, resp.StatusCode, duration, requestDump, t.dumpResponse(resp))
	}

	return resp, nil
}

func (t *LogTransport) dumpRequest(req *http.Request) string {
	dump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) dumpResponse(resp *http.Response) string {
	// License archives are binary, only text bodies are dumped.
	contentType := resp.Header.Get("Content-Type")

	dump, err := httputil.DumpResponse(resp, utils.IsTextContentType(contentType))
	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) truncate(data []byte) string {
	if uint64(len(data)) > t.maxLogLength {
		return string(data[:t.maxLogLength]) + "... [truncated]"
	}

	return string(data)
}
