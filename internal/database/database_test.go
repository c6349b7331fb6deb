package database

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSQLLogger_VisibleAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	sqlLogger := newSQLLogger(log)

	sqlLogger.Info(context.Background(), "opened %s", "pool")
	assert.Empty(t, buf.String())

	sqlLogger.Error(context.Background(), "relation %s does not exist", "carts")
	assert.Contains(t, buf.String(), "relation carts does not exist")
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"component":"gorm"`)
}
