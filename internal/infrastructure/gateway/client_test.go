package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendify/salesflow-web/internal/config"
	"github.com/vendify/salesflow-web/pkg/apperror"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.APIConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(config.APIConfig{})
	assert.Error(t, err)
}

func TestClientDecodesResponse(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"id": 7, "nome": "Maria"}`))
	}))

	var out struct {
		ID   int    `json:"id"`
		Nome string `json:"nome"`
	}
	require.NoError(t, client.Get(context.Background(), "/clientes/7/", &out))
	assert.Equal(t, 7, out.ID)
	assert.Equal(t, "Maria", out.Nome)
}

func TestClientNotFound(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Not found."}`))
	}))

	err := client.Get(context.Background(), "/clientes/999/", nil)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Not found.", apperror.GetAppError(err).Message)
}

func TestClientFieldErrors(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"cpf": ["customer with this cpf already exists."], "email": "invalid email"}`))
	}))

	err := client.Post(context.Background(), "/clientes/", map[string]string{}, nil)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Len(t, appErr.Errors, 2)

	msg, ok := appErr.FieldMessage("cpf")
	require.True(t, ok)
	assert.Equal(t, "customer with this cpf already exists.", msg)

	msg, ok = appErr.FieldMessage("email")
	require.True(t, ok)
	assert.Equal(t, "invalid email", msg)
}

func TestClientUnreachable(t *testing.T) {
	client, err := NewClient(config.APIConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: 500 * time.Millisecond,
	})
	require.NoError(t, err)

	err = client.Get(context.Background(), "/clientes/", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperror.GetAppError(err).Code)
}

func TestClientTrailingSlashPaths(t *testing.T) {
	var gotPath string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))

	gw := NewCustomerGateway(client)
	_, err := gw.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/clientes/", gotPath)

	require.NoError(t, client.Delete(context.Background(), "/clientes/7/"))
	assert.Equal(t, "/clientes/7/", gotPath)
}

func TestGetCollectionShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "bare array", body: `[{"nome": "A"}, {"nome": "B"}]`, want: 2},
		{name: "results wrapper", body: `{"count": 1, "results": [{"nome": "A"}]}`, want: 1},
		{name: "empty array", body: `[]`, want: 0},
		{name: "empty results", body: `{"results": []}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))

			items, err := getCollection[customerDTO](context.Background(), client, "/clientes/")
			require.NoError(t, err)
			assert.Len(t, items, tt.want)
		})
	}
}

func TestCustomerGatewayRoundTrip(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`{"id": 7, "nome": "Maria", "cpf": "12345678901", "cep": "01310100", "cidade": "Sao Paulo", "uf": "SP"}`))
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": 8, "nome": "Ana"}`))
		}
	}))

	gw := NewCustomerGateway(client)

	got, err := gw.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Maria", got.Name)
	assert.Equal(t, "12345678901", got.NationalID)
	assert.Equal(t, "Sao Paulo", got.Address.City)
	assert.Equal(t, "SP", got.Address.Region)

	created, err := gw.Create(context.Background(), got)
	require.NoError(t, err)
	assert.Equal(t, 8, created.ID)
}
