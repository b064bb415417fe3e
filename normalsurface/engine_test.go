package normalsurface_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regina-normal/tri3/normalsurface"
)

func TestSentinelErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(normalsurface.ErrNotFound, normalsurface.ErrIndeterminate))
	assert.False(t, errors.Is(normalsurface.ErrIndeterminate, normalsurface.ErrNotFound))
}
