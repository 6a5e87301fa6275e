package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RunIDFromContext(ctx))

	ctx = ContextWithRunID(ctx, "run-42")
	assert.Equal(t, "run-42", RunIDFromContext(ctx))
	assert.Nil(t, TxFromContext(ctx))
}
