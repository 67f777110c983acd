package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type widget struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{BaseURL: server.URL, Token: "test-token"}, zap.NewNop())
	require.NoError(t, err)
	return client, server
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "not-a-url"}, zap.NewNop())
	assert.Error(t, err)
}

func TestClient_GetList(t *testing.T) {
	t.Run("total from header", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, r.URL.Query().Get("cacheBuster"))
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			w.Header().Set("X-Total-Count", "42")
			_, _ = w.Write([]byte(`[{"id":1,"name":"a"},{"id":2,"name":"b"}]`))
		}))

		var widgets []widget
		total, err := client.GetList(context.Background(), "/api/widgets", nil, &widgets)
		require.NoError(t, err)
		assert.Equal(t, 42, total)
		assert.Len(t, widgets, 2)
	})

	t.Run("header absent yields unknown total", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id":1,"name":"a"}]`))
		}))

		var widgets []widget
		total, err := client.GetList(context.Background(), "/api/widgets", nil, &widgets)
		require.NoError(t, err)
		assert.Equal(t, TotalCountUnknown, total)
	})

	t.Run("header non-numeric yields unknown total", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Total-Count", "many")
			_, _ = w.Write([]byte(`[]`))
		}))

		total, err := client.GetList(context.Background(), "/api/widgets", nil, &[]widget{})
		require.NoError(t, err)
		assert.Equal(t, TotalCountUnknown, total)
	})

	t.Run("caller query preserved", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "0", r.URL.Query().Get("page"))
			assert.Equal(t, "20", r.URL.Query().Get("size"))
			_, _ = w.Write([]byte(`[]`))
		}))

		query := url.Values{"page": {"0"}, "size": {"20"}}
		_, err := client.GetList(context.Background(), "/api/widgets", query, &[]widget{})
		require.NoError(t, err)
	})
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	t.Run("transport failure", func(t *testing.T) {
		client, server := newTestClient(t, http.NewServeMux())
		server.Close() // force connection refused

		err := client.Get(context.Background(), "/api/widgets/1", nil, &widget{})
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("server rejection with problem body", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errorKey":"quantityInvalid","title":"Bad Request","detail":"quantity must be positive"}`))
		}))

		err := client.Post(context.Background(), "/api/widgets", widget{Name: "x"}, nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "QUANTITYINVALID", apiErr.Code)
		assert.Equal(t, "quantity must be positive", apiErr.Message)
	})

	t.Run("server rejection with unparseable body", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("gone"))
		}))

		err := client.Get(context.Background(), "/api/widgets/99", nil, &widget{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.True(t, IsNotFound(err))
		assert.False(t, IsUnauthorized(err))
	})

	t.Run("invalid success payload", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}))

		err := client.Get(context.Background(), "/api/widgets/1", nil, &widget{})
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestClient_Mutations(t *testing.T) {
	t.Run("post strips nulls and decodes response", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.NotContains(t, body, "remark")

			_, _ = w.Write([]byte(`{"id":10,"name":"created"}`))
		}))

		var created widget
		err := client.Post(context.Background(), "/api/widgets",
			map[string]any{"name": "created", "remark": nil}, &created)
		require.NoError(t, err)
		assert.Equal(t, int64(10), created.ID)
	})

	t.Run("delete issues no body", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		}))

		require.NoError(t, client.Delete(context.Background(), "/api/widgets/3"))
	})
}

func TestClient_SetToken(t *testing.T) {
	var seen string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))

	client.SetToken("rotated")
	require.NoError(t, client.Get(context.Background(), "/api/widgets/1", nil, &widget{}))
	assert.Equal(t, "Bearer rotated", seen)
}

func TestAPIError_Error(t *testing.T) {
	withCode := &APIError{StatusCode: 400, Code: "BAD", Message: "nope"}
	assert.Contains(t, withCode.Error(), "BAD")

	plain := &APIError{StatusCode: 500, Message: "boom"}
	assert.Contains(t, plain.Error(), "boom")
	assert.False(t, errors.Is(plain, ErrUnavailable))
}
