package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleReq struct {
	UnitID string  `validate:"required,hex32"`
	Amount float64 `validate:"required,gt=0,dec2"`
	Status string  `validate:"omitempty,oneof=draft active"`
}

func TestCustomValidator_Hex32AndDec2(t *testing.T) {
	cv := NewValidator()

	ok := sampleReq{UnitID: "0123456789abcdef0123456789abcdef", Amount: 1200.50}
	require.NoError(t, cv.Validate(&ok))

	badID := ok
	badID.UnitID = "not-hex"
	assert.Error(t, cv.Validate(&badID))

	upperID := ok
	upperID.UnitID = "0123456789ABCDEF0123456789ABCDEF"
	assert.Error(t, cv.Validate(&upperID), "uppercase hex is rejected")

	badAmount := ok
	badAmount.Amount = 1200.505
	assert.Error(t, cv.Validate(&badAmount))

	badStatus := ok
	badStatus.Status = "pending"
	assert.Error(t, cv.Validate(&badStatus))
}

func TestToFieldErrors_Messages(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleReq{UnitID: "nope", Amount: 0})
	require.Error(t, err)

	fields := ToFieldErrors(err)
	require.Len(t, fields, 2)

	byField := map[string]string{}
	for _, fe := range fields {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "must be 32-char lowercase hex", byField["UnitID"])
	assert.Equal(t, "is required", byField["Amount"])
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fields := ToFieldErrors(assert.AnError)
	require.Len(t, fields, 1)
	assert.Equal(t, "_", fields[0].Field)
}
