package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShop_Defaults(t *testing.T) {
	cfg, err := LoadShop()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.DB.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.True(t, cfg.DB.Bootstrap)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoadShop_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USERNAME", "shop")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_DATABASE", "shop_db")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("DB_BOOTSTRAP", "false")

	cfg, err := LoadShop()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, 4, cfg.DB.MaxOpenConns)
	assert.False(t, cfg.DB.Bootstrap)
	assert.Equal(t, "host=db.internal user=shop password=secret dbname=shop_db port=6543 sslmode=disable", cfg.DB.DSN())
}

func TestLoadShop_Invalid(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := LoadShop()
		assert.Error(t, err)
	})

	t.Run("non numeric port", func(t *testing.T) {
		t.Setenv("PORT", "abc")
		_, err := LoadShop()
		assert.Error(t, err)
	})

	t.Run("empty pool", func(t *testing.T) {
		t.Setenv("DB_MAX_OPEN_CONNS", "0")
		_, err := LoadShop()
		assert.Error(t, err)
	})
}

func TestLoadTodo(t *testing.T) {
	cfg, err := LoadTodo()
	require.NoError(t, err)
	assert.True(t, cfg.Seed)
	assert.Equal(t, int64(1245), cfg.InitialViews)

	t.Setenv("TODO_SEED", "false")
	t.Setenv("TODO_INITIAL_VIEWS", "0")
	cfg, err = LoadTodo()
	require.NoError(t, err)
	assert.False(t, cfg.Seed)
	assert.Zero(t, cfg.InitialViews)

	t.Setenv("TODO_INITIAL_VIEWS", "-1")
	_, err = LoadTodo()
	assert.Error(t, err)
}
