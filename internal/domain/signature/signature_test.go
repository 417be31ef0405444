package signature_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/saftpt-validator/internal/domain/signature"
)

// TestMessage_FormatoLegal valida el orden y el formato de los campos de la cadena firmada.
func TestMessage_FormatoLegal(t *testing.T) {
	f := signature.Fields{
		DocumentDate:    time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		SystemEntryDate: time.Date(2024, 3, 5, 9, 7, 3, 0, time.UTC),
		DocumentNumber:  "FT A/12",
		GrossTotal:      decimal.RequireFromString("123"),
		PreviousHash:    "abc",
	}
	assert.Equal(t, "2024-03-05;2024-03-05T09:07:03;FT A/12;123.00;abc", signature.Message(f))
}

func TestMessage_PrimerDocumentoSinHashAnterior(t *testing.T) {
	f := signature.Fields{
		DocumentDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		SystemEntryDate: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		DocumentNumber:  "FT A/1",
		GrossTotal:      decimal.RequireFromString("10.005"),
	}
	assert.Equal(t, "2024-01-01;2024-01-01T10:00:00;FT A/1;10.01;", signature.Message(f))
}

func TestFieldsValidate(t *testing.T) {
	assert.Error(t, signature.Fields{}.Validate())
	assert.Error(t, signature.Fields{DocumentDate: time.Now()}.Validate())
	assert.NoError(t, signature.Fields{
		DocumentDate:    time.Now(),
		SystemEntryDate: time.Now(),
		DocumentNumber:  "FT A/1",
	}.Validate())
}
