package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vendify/salesflow-web/pkg/apperror"
)

// decodeError turns a non-2xx API response into an AppError. The backend
// reports validation problems as an object keyed by field name, with the
// message either a string or an array of strings ({"cpf": ["duplicate"]}).
// General messages arrive under "detail" or "message". Anything else
// becomes a generic failure with the original status.
func decodeError(status int, body []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return apperror.NewAppError(status, http.StatusText(status))
	}

	if msg, ok := rawString(raw, "detail"); ok {
		return apperror.NewAppError(status, msg)
	}
	if msg, ok := rawString(raw, "message"); ok {
		return apperror.NewAppError(status, msg)
	}

	var fieldErrors []apperror.FieldError
	for field, val := range raw {
		if msg, ok := asMessage(val); ok {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field, Message: msg})
		}
	}
	if len(fieldErrors) > 0 {
		return &apperror.AppError{
			Code:    status,
			Message: "The sales API rejected the request",
			Errors:  fieldErrors,
		}
	}

	return apperror.NewAppError(status, http.StatusText(status))
}

func rawString(raw map[string]json.RawMessage, key string) (string, bool) {
	val, ok := raw[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(val, &s); err != nil {
		return "", false
	}
	return s, true
}

// asMessage accepts either "msg" or ["msg", ...] as a field message.
func asMessage(val json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(val, &s); err == nil {
		return s, true
	}
	var list []string
	if err := json.Unmarshal(val, &list); err == nil && len(list) > 0 {
		return list[0], true
	}
	return "", false
}

// decodeCollection accepts both collection shapes the backend has been
// seen returning: a bare JSON array and an object wrapping the array
// under "results". Unifying the two here keeps the screens out of the
// guessing game.
func decodeCollection[T any](body []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(body, &items); err == nil {
		return items, nil
	}

	var wrapped struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Results != nil {
		return wrapped.Results, nil
	}

	return nil, fmt.Errorf("unexpected collection shape")
}

// getCollection fetches a collection path and decodes either shape.
func getCollection[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, path, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	return decodeCollection[T](raw)
}
