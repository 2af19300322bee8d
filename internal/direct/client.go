// Package direct verifies external advertising-account credentials against
// the Direct API. One synchronous call, no retries; the caller surfaces
// failures to the end user verbatim.
package direct

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultEndpoint is the production agency-clients endpoint.
	DefaultEndpoint = "https://api.direct.yandex.com/json/v5/agencyclients"

	requestTimeout = 15 * time.Second
	maxBodyExcerpt = 200
)

// ErrNoMatchingAccount means the API answered normally but the result set
// held no customer for the requested login.
var ErrNoMatchingAccount = errors.New("API returned no matching account")

// TransportError wraps a connection or timeout failure before any HTTP
// response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// APIHTTPError is an HTTP-level rejection (status >= 400). Body holds an
// excerpt of the response, capped at 200 characters.
type APIHTTPError struct {
	Status int
	Body   string
}

func (e *APIHTTPError) Error() string {
	return fmt.Sprintf("API returned HTTP %d: %s", e.Status, e.Body)
}

// APILogicError is an error envelope inside a successful HTTP response.
type APILogicError struct {
	Detail string
}

func (e *APILogicError) Error() string { return e.Detail }

type request struct {
	Method string `json:"method"`
	Params params `json:"params"`
}

type params struct {
	SelectionCriteria selectionCriteria `json:"SelectionCriteria"`
	FieldNames        []string          `json:"FieldNames"`
}

type selectionCriteria struct {
	Logins []string `json:"Logins"`
}

type response struct {
	Error  *apiError `json:"error"`
	Result *result   `json:"result"`
}

type apiError struct {
	ErrorDetail string `json:"error_detail"`
	ErrorString string `json:"error_string"`
}

type result struct {
	Customers []customer `json:"Customers"`
}

type customer struct {
	Login      string `json:"Login"`
	ClientInfo string `json:"ClientInfo"`
}

// Client calls the Direct API over HTTPS with a bearer credential.
type Client struct {
	http *resty.Client
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(requestTimeout).
		SetHeader("Accept-Language", "ru")

	return &Client{http: client}
}

// Verify confirms that token grants access to the account behind login and
// returns the account's display name. Failures are reported in a fixed
// order: transport, HTTP status, API error envelope, empty result.
func (c *Client) Verify(ctx context.Context, token, login string) (string, error) {
	body := request{
		Method: "get",
		Params: params{
			SelectionCriteria: selectionCriteria{Logins: []string{login}},
			FieldNames:        []string{"Login", "ClientInfo"},
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(body).
		Post("")
	if err != nil {
		return "", &TransportError{Err: err}
	}

	if resp.StatusCode() >= 400 {
		return "", &APIHTTPError{
			Status: resp.StatusCode(),
			Body:   excerpt(resp.String()),
		}
	}

	var parsed response
	err = json.Unmarshal(resp.Body(), &parsed)
	if err != nil {
		return "", &APILogicError{Detail: "unknown API error"}
	}

	if parsed.Error != nil {
		detail := parsed.Error.ErrorDetail
		if detail == "" {
			detail = parsed.Error.ErrorString
		}
		if detail == "" {
			detail = "unknown API error"
		}
		return "", &APILogicError{Detail: detail}
	}

	if parsed.Result == nil || len(parsed.Result.Customers) == 0 {
		return "", ErrNoMatchingAccount
	}

	matched := parsed.Result.Customers[0]
	name := matched.ClientInfo
	if name == "" {
		name = matched.Login
	}
	if name == "" {
		name = login
	}

	return name, nil
}

func excerpt(body string) string {
	runes := []rune(body)
	if len(runes) <= maxBodyExcerpt {
		return body
	}
	return string(runes[:maxBodyExcerpt])
}
