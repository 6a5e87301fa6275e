package ocp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "100", FormatAmount(100))
	assert.Equal(t, "50.5", FormatAmount(50.5))
	assert.Equal(t, "0.01", FormatAmount(0.01))
	assert.Equal(t, "0", FormatAmount(0))
}
