package application

import "errors"

type statusCoder interface {
	HTTPStatus() int
}

// UserMessage picks a fixed message for err. A status listed in
// statusMessages wins; anything else falls back. Server-provided detail text
// is never returned.
func UserMessage(err error, fallback string, statusMessages map[int]string) string {
	if err == nil {
		return ""
	}

	var coded statusCoder
	if statusMessages != nil && errors.As(err, &coded) {
		if message, ok := statusMessages[coded.HTTPStatus()]; ok {
			return message
		}
	}
	return fallback
}

// HTTPStatus extracts the status code carried by err, if any.
func HTTPStatus(err error) (int, bool) {
	var coded statusCoder
	if errors.As(err, &coded) {
		return coded.HTTPStatus(), true
	}
	return 0, false
}
