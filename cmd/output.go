package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bnema/giftbox-cli/internal/application"
	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/spf13/cobra"
)

var commonStatusMessages = map[int]string{
	http.StatusUnauthorized:        "session expired: run `gb auth login` again",
	http.StatusForbidden:           "not allowed",
	http.StatusNotFound:            "not found",
	http.StatusUnprocessableEntity: "the server rejected the input",
	http.StatusTooManyRequests:     "too many requests, try again later",
}

// failure turns err into the message shown to the user. The full error,
// including server detail, only reaches the debug log.
func failure(app *app, err error, fallback string, statusMessages map[int]string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidID) || errors.Is(err, domain.ErrInvalidPageSize) {
		return err
	}

	event := app.logger.Debug().Err(err)
	if status, ok := application.HTTPStatus(err); ok {
		event = event.Int("status", status)
	}
	event.Msg(fallback)

	messages := make(map[int]string, len(commonStatusMessages)+len(statusMessages))
	for status, message := range commonStatusMessages {
		messages[status] = message
	}
	for status, message := range statusMessages {
		messages[status] = message
	}
	return errors.New(application.UserMessage(err, fallback, messages))
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeLine(cmd *cobra.Command, format string, args ...any) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
	return err
}
