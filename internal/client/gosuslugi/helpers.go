package gosuslugi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// apiRequest describes a single call to the registry.
type apiRequest struct {
	method string
	// uri is joined to the base URL; the last element keeps its trailing slash.
	uri     []string
	query   url.Values
	payload any
}

// errEmptyBody is returned by fetchText for a blank response.
var errEmptyBody = errors.New("empty response body")

// fetchJSON performs the request and decodes a JSON body into T.
// An empty body or a JSON null yields a nil result without error.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func fetchJSON[T any](c *ClientImpl, ctx context.Context, request *apiRequest) (*T, error) {
	route, body, err := c.fetch(ctx, request)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil //nolint:nilnil // An empty body is a valid "nothing found" answer.
	}

	var result *T
	if err = json.Unmarshal(body, &result); err != nil {
		return nil, &DecodeError{URL: route, Err: err}
	}

	return result, nil
}

// fetchText performs the request and returns the trimmed body as a string.
func (c *ClientImpl) fetchText(ctx context.Context, request *apiRequest) (string, error) {
	route, body, err := c.fetch(ctx, request)
	if err != nil {
		return "", err
	}

	text := string(bytes.Trim(body, " \t\r\n\""))
	if text == "" {
		return "", &DecodeError{URL: route, Err: errEmptyBody}
	}

	return text, nil
}

// fetch performs the request and returns the resolved URL and the full response body.
// Transport failures become ConnectivityError, non-2xx statuses become RemoteServiceError.
func (c *ClientImpl) fetch(ctx context.Context, request *apiRequest) (string, []byte, error) {
	route, err := url.JoinPath(c.baseURL, request.uri...)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build URL: %w", err)
	}

	var requestBody io.Reader = http.NoBody

	if request.payload != nil {
		payload, marshalErr := json.Marshal(request.payload)
		if marshalErr != nil {
			return route, nil, fmt.Errorf("failed to marshal request payload: %w", marshalErr)
		}

		requestBody = bytes.NewReader(payload)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, request.method, route, requestBody)
	if err != nil {
		return route, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if request.payload != nil {
		httpRequest.Header.Set(contentTypeHeader, jsonContentType)
	}

	if len(request.query) > 0 {
		httpRequest.URL.RawQuery = request.query.Encode()
		route = httpRequest.URL.String()
	}

	response, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return route, nil, &ConnectivityError{Method: request.method, URL: route, Err: err}
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return route, nil, &ConnectivityError{Method: request.method, URL: route, Err: err}
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		if len(body) > maxErrorBodyInError {
			body = body[:maxErrorBodyInError]
		}

		return route, nil, &RemoteServiceError{
			Method:     request.method,
			URL:        route,
			StatusCode: response.StatusCode,
			Body:       string(body),
		}
	}

	return route, body, nil
}
