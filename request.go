package shopapi

import (
	"context"
	"encoding/json"
	"net/http"
)

// GetJSON issues a GET and decodes the response body into out. Pass a nil out
// to discard the body. GET responses are cached by default.
func (c *Client) GetJSON(ctx context.Context, endpoint string, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, http.MethodGet, endpoint, nil, out, opts...)
}

// PostJSON issues a POST with body serialized as JSON and decodes the
// response into out. Mutations never touch the cache; callers that know which
// GET entries they stale should Invalidate them.
func (c *Client) PostJSON(ctx context.Context, endpoint string, body, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, http.MethodPost, endpoint, body, out, opts...)
}

// PutJSON issues a PUT with a JSON body.
func (c *Client) PutJSON(ctx context.Context, endpoint string, body, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, http.MethodPut, endpoint, body, out, opts...)
}

// PatchJSON issues a PATCH with a JSON body.
func (c *Client) PatchJSON(ctx context.Context, endpoint string, body, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, http.MethodPatch, endpoint, body, out, opts...)
}

// DeleteJSON issues a DELETE and decodes the response into out when non-nil.
func (c *Client) DeleteJSON(ctx context.Context, endpoint string, out any, opts ...RequestOption) error {
	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, out, opts...)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, out any, opts ...RequestOption) error {
	resp, err := c.Do(ctx, method, endpoint, body, opts...)
	if err != nil {
		return err
	}
	return decodeBody(resp, out, method, endpoint)
}

// Fetch is the generic entry point: it executes one logical request and
// returns the decoded payload. The zero value of T is returned alongside any
// error, or for an empty response body.
func Fetch[T any](ctx context.Context, c *Client, method, endpoint string, body any, opts ...RequestOption) (T, error) {
	var out T
	resp, err := c.Do(ctx, method, endpoint, body, opts...)
	if err != nil {
		return out, err
	}
	if err := decodeBody(resp, &out, method, endpoint); err != nil {
		return out, err
	}
	return out, nil
}

func decodeBody(resp *Response, out any, method, endpoint string) error {
	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &Error{
			Type:       ErrorTypeDecoding,
			Message:    "deserializing response body",
			StatusCode: resp.StatusCode,
			Method:     method,
			URL:        endpoint,
			Cause:      err,
		}
	}
	return nil
}
