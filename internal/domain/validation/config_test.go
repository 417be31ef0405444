package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/saftpt-validator/internal/domain/validation"
)

func TestNewConfig_ValoresPorDefecto(t *testing.T) {
	cfg := validation.NewConfig()

	assert.True(t, cfg.DeltaLine().Equal(validation.DefaultDelta))
	assert.True(t, cfg.DeltaTable().Equal(validation.DefaultDelta))
	assert.True(t, cfg.DeltaCurrency().Equal(validation.DefaultDelta))
	assert.True(t, cfg.DeltaTotalDoc().Equal(validation.DefaultDelta))
	assert.True(t, cfg.ContinuousLines)
	assert.False(t, cfg.AllowDebitAndCredit)
	assert.True(t, cfg.SignValidation)
	assert.True(t, cfg.SchemaValidation)
}

// Una tolerancia negativa se guarda como su valor absoluto.
func TestConfig_ToleranciasEnValorAbsoluto(t *testing.T) {
	for _, v := range []string{"0.05", "1", "0", "12.345"} {
		x := decimal.RequireFromString(v)

		var pos, neg validation.Config
		pos.SetDeltaLine(x)
		neg.SetDeltaLine(x.Neg())
		assert.True(t, pos.DeltaLine().Equal(neg.DeltaLine()), v)

		pos.SetDeltaTable(x)
		neg.SetDeltaTable(x.Neg())
		assert.True(t, pos.DeltaTable().Equal(neg.DeltaTable()), v)

		pos.SetDeltaCurrency(x)
		neg.SetDeltaCurrency(x.Neg())
		assert.True(t, pos.DeltaCurrency().Equal(neg.DeltaCurrency()), v)

		pos.SetDeltaTotalDoc(x)
		neg.SetDeltaTotalDoc(x.Neg())
		assert.True(t, pos.DeltaTotalDoc().Equal(neg.DeltaTotalDoc()), v)
		assert.False(t, neg.DeltaTotalDoc().IsNegative(), v)
	}
}

func TestApproximatelyEquals(t *testing.T) {
	d := decimal.RequireFromString("0.01")
	a := decimal.RequireFromString("100")

	assert.True(t, validation.ApproximatelyEquals(a, decimal.RequireFromString("99.99"), d))
	assert.True(t, validation.ApproximatelyEquals(a, decimal.RequireFromString("100.01"), d))
	assert.False(t, validation.ApproximatelyEquals(a, decimal.RequireFromString("99.98"), d))
	assert.True(t, validation.ApproximatelyEquals(a, decimal.RequireFromString("99.99"), d.Neg()), "delta negativo")
}
