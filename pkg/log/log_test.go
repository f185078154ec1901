package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeepField(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	assert.True(t, keepField("correlation_id"))
	assert.True(t, keepField("month_a"))
	assert.True(t, keepField("filter_countries"))
	assert.False(t, keepField("user_agent"))

	t.Setenv("APP_ENV", "production")
	assert.True(t, keepField("user_agent"))
}
