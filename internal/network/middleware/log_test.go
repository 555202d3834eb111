package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogHandle(t *testing.T) {
	testCases := []struct {
		TestName       string
		Handler        http.HandlerFunc
		ExpectedStatus int
		ExpectedBody   string
	}{
		{"Explicit status #1", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte("created"))
		}, http.StatusCreated, "created"},
		{"Implicit status #2", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		}, http.StatusOK, "ok"},
		{"No body #3", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, http.StatusNoContent, ""},
	}
	for _, test := range testCases {
		t.Run(test.TestName, func(t *testing.T) {
			rec := httptest.NewRecorder()
			LogHandle(test.Handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
			assert.Equal(t, test.ExpectedStatus, rec.Code)
			assert.Equal(t, test.ExpectedBody, rec.Body.String())
		})
	}
}

func TestLoggingResponseWriter_Counts(t *testing.T) {
	data := &ResponseData{}
	lw := LoggingResponseWriter{ResponseWriter: httptest.NewRecorder(), responseData: data}
	lw.Write([]byte("abc"))
	lw.Write([]byte("de"))
	assert.Equal(t, http.StatusOK, data.status)
	assert.Equal(t, 5, data.size)
}
