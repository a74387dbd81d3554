// Package postal wraps the external postal-code lookup service the
// address forms autofill from.
package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vendify/salesflow-web/internal/config"
	"github.com/vendify/salesflow-web/internal/domain/entity"
	"github.com/vendify/salesflow-web/pkg/apperror"
	"github.com/vendify/salesflow-web/pkg/numfmt"
)

// ErrCodeNotFound is returned when the service resolves the request but
// flags the code as unknown. The form shows a non-blocking notice and
// leaves the draft untouched.
var ErrCodeNotFound = apperror.NewNotFoundError("Postal code")

// ErrInvalidCode is returned before any request when the input is not
// exactly 8 digits.
var ErrInvalidCode = apperror.NewBadRequestError("Postal code must have exactly 8 digits")

type lookupResponse struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	Erro        bool   `json:"erro"`
}

// Client queries the postal-code lookup service
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a postal lookup client
func NewClient(cfg config.PostalConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
	}
}

// Lookup resolves an 8-digit code into address fields. The street number
// is never part of the response, so the caller leaves it alone.
func (c *Client) Lookup(ctx context.Context, code string) (entity.Address, error) {
	digits := numfmt.DigitsOnly(code)
	if len(digits) != 8 {
		return entity.Address{}, ErrInvalidCode
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entity.Address{}, fmt.Errorf("creating lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.Address{}, apperror.NewUnavailableError("could not reach the postal lookup service")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.Address{}, apperror.NewUnavailableError("reading postal lookup response")
	}

	if resp.StatusCode != http.StatusOK {
		return entity.Address{}, apperror.NewAppError(resp.StatusCode, "postal lookup failed")
	}

	var lr lookupResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return entity.Address{}, fmt.Errorf("decoding postal lookup response: %w", err)
	}
	if lr.Erro {
		return entity.Address{}, ErrCodeNotFound
	}

	return entity.Address{
		PostalCode: digits,
		Street:     lr.Logradouro,
		District:   lr.Bairro,
		City:       lr.Localidade,
		Region:     lr.UF,
		Complement: lr.Complemento,
	}, nil
}
