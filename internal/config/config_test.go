package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "grading_db", cfg.Database.Name)
	assert.Equal(t, "disable", cfg.Database.SSLMode)

	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "submission.graded", cfg.RabbitMQ.RoutingKey)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Contains(t, cfg.CORS.ExposedHeaders, "Content-Disposition")
}
