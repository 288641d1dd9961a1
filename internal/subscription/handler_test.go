package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler_Creation(t *testing.T) {
	assert.NotNil(t, &Handler{})
}
