package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gobd/naru/openapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(h http.Handler, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)
	return rec
}

func TestOperationsHandler(t *testing.T) {
	h := openapi.OperationsHandler()

	tests := []struct {
		name string
		path string
		body string
		want string
	}{
		{
			name: "snakify mapping",
			path: "/snakify",
			body: `{"item": {"UserID": 1}}`,
			want: `{"user_id": 1}`,
		},
		{
			name: "snakify recursive",
			path: "/snakify",
			body: `{"item": {"a": {"B": 1}}, "recursive": true}`,
			want: `{"a": {"b": 1}}`,
		},
		{
			name: "add prefix",
			path: "/add_prefix",
			body: `{"item": ["a"], "affix": "x", "divider": "_"}`,
			want: `["x_a"]`,
		},
		{
			name: "cleave index",
			path: "/cleave",
			body: `{"item": [1, 2, 3], "divider": 2}`,
			want: `[[1, 2], [3]]`,
		},
		{
			name: "cleave mapping by key prefix",
			path: "/cleave",
			body: `{"item": {"db_a": 1, "b": 2}, "divider": "db_"}`,
			want: `[{"db_a": 1}, {"b": 2}]`,
		},
		{
			name: "cleave text first divider",
			path: "/cleave",
			body: `{"item": "a_b_c", "return_last": false}`,
			want: `["a", "b_c"]`,
		},
		{
			name: "separate",
			path: "/separate",
			body: `{"item": "a.b", "divider": "."}`,
			want: `["a", "b"]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(h, tt.path, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestOperationsHandler_Errors(t *testing.T) {
	h := openapi.OperationsHandler()

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{name: "unknown operation", path: "/shout", body: `{"item": "a"}`, status: http.StatusNotFound},
		{name: "bad json", path: "/snakify", body: `{"item":`, status: http.StatusBadRequest},
		{name: "missing item", path: "/snakify", body: `{}`, status: http.StatusBadRequest},
		{name: "unknown field", path: "/snakify", body: `{"item": "a", "affix": "x"}`, status: http.StatusBadRequest},
		{name: "option of another operation", path: "/snakify", body: `{"item": "a", "return_last": true}`, status: http.StatusBadRequest},
		{name: "divider without affix", path: "/add_prefix", body: `{"item": "a", "divider": "_"}`, status: http.StatusBadRequest},
		{name: "missing affix", path: "/add_prefix", body: `{"item": "a"}`, status: http.StatusBadRequest},
		{name: "unsupported item", path: "/snakify", body: `{"item": 3}`, status: http.StatusBadRequest},
		{name: "fractional index", path: "/cleave", body: `{"item": [1, 2], "divider": 1.5}`, status: http.StatusBadRequest},
		{name: "option not bool", path: "/snakify", body: `{"item": "a", "recursive": "yes"}`, status: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(h, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			var body openapi.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/snakify", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestOperationsHandler_ServesDocumentPaths(t *testing.T) {
	doc, err := openapi.Document("naru", "1.0.0")
	require.NoError(t, err)
	h := openapi.OperationsHandler()

	for path, item := range doc.Paths.Map() {
		require.NotNil(t, item.Post, path)
		rec := post(h, path, `{"item": "x"}`)
		assert.NotEqual(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, []int{http.StatusOK, http.StatusBadRequest}, rec.Code, path)
	}
}
