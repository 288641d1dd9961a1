package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type creditPayload struct {
	RefillCoins int64  `validate:"gte=0"`
	Reason      string `validate:"required,max=32"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(creditPayload{RefillCoins: 10, Reason: "topup"})
	assert.Empty(t, errs)
}

func TestValidateStruct_Invalid(t *testing.T) {
	errs := ValidateStruct(creditPayload{RefillCoins: -1})
	assert.Len(t, errs, 2)

	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "RefillCoins")
	assert.Contains(t, fields, "Reason")
}
