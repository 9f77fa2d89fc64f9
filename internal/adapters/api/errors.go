package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/giftbox-cli/internal/domain"
)

const genericErrorDetail = "an error occurred"

// APIError is a non-2xx response. Detail is the server-provided text and is
// meant for logs and verbose output, not for direct display.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
	RequestID  string
}

func (e *APIError) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, detail)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotAuthenticated:
		return e.StatusCode == http.StatusUnauthorized
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	default:
		return false
	}
}

// StatusCode reports the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, true
	}
	return 0, false
}

func IsStatus(err error, code int) bool {
	status, ok := StatusCode(err)
	return ok && status == code
}

type errorPayload struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

type validationIssue struct {
	Msg string `json:"msg"`
}

func decodeAPIError(resp *http.Response, method, path string) *APIError {
	apiErr := &APIError{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get(requestIDHeader),
	}

	var payload errorPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		apiErr.Detail = genericErrorDetail
		return apiErr
	}

	apiErr.Detail = formatDetail(payload)
	return apiErr
}

func formatDetail(payload errorPayload) string {
	if len(payload.Detail) > 0 {
		var text string
		if err := json.Unmarshal(payload.Detail, &text); err == nil && text != "" {
			return text
		}

		var issues []validationIssue
		if err := json.Unmarshal(payload.Detail, &issues); err == nil && len(issues) > 0 {
			messages := make([]string, 0, len(issues))
			for _, issue := range issues {
				if issue.Msg != "" {
					messages = append(messages, issue.Msg)
				}
			}
			if len(messages) > 0 {
				return strings.Join(messages, "; ")
			}
		}
	}
	if payload.Message != "" {
		return payload.Message
	}
	return genericErrorDetail
}

// HTTPStatus lets callers outside this package map failures by status code.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
