package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomlord1122/storefront-backend/internal/apperror"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"single object", `{"text":"a"}`, false},
		{"trailing newline", "{\"text\":\"a\"}\n", false},
		{"empty body", "", false},
		{"trailing garbage", `{"text":"a"} garbage`, true},
		{"second object", `{"text":"a"} {}`, true},
		{"truncated", `{"text":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst struct {
				Text string `json:"text"`
			}

			err := decodeJSON(req, &dst)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperror.ErrValidation)
				assert.Equal(t, "Invalid JSON", err.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRespondWithJSON_MarshalFailureUsesServerLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil)).With(slog.String("service", "todo"))
	rs := responder{logger: log}

	rec := httptest.NewRecorder()
	rs.respondWithData(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error preparing response","status":500}`, rec.Body.String())
	assert.Contains(t, buf.String(), "marshal JSON response")
	assert.Contains(t, buf.String(), `"service":"todo"`)
}
