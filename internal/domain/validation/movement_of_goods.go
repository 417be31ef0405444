package validation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/internal/domain/signature"
)

// MovementOfGoodsValidator valida la tabla MovementOfGoods (4.2).
type MovementOfGoodsValidator struct {
	*engine
	table *entity.MovementOfGoods
}

// NewMovementOfGoodsValidator crea el validador. verifier puede ser nil.
func NewMovementOfGoodsValidator(audit *entity.AuditFile, cfg Config, verifier signature.Verifier, opts ...Option) *MovementOfGoodsValidator {
	t := audit.SourceDocuments.MovementOfGoods
	var errs *entity.ErrorMap
	if t != nil {
		errs = &t.Errors
	}
	return &MovementOfGoodsValidator{engine: newEngine(movementOfGoodsFamily, audit, cfg, verifier, errs, opts), table: t}
}

func (v *MovementOfGoodsValidator) docs() []document {
	out := make([]document, 0, len(v.table.StockMovements))
	for _, m := range v.table.StockMovements {
		out = append(out, movementDoc{m})
	}
	return out
}

// Validate recorre la tabla completa. Una tabla ausente es válida.
func (v *MovementOfGoodsValidator) Validate() bool {
	if v.table == nil {
		return v.IsValid()
	}
	state := NewChainState()
	v.walk(v.docs(), state)
	v.NumberOfLinesAndTotalQuantity(state)
	return v.IsValid()
}

// DocumentNumber formato, prefijo y unicidad del número. state puede ser nil.
func (v *MovementOfGoodsValidator) DocumentNumber(m *entity.StockMovement, state *ChainState) bool {
	return v.documentNumber(movementDoc{m}, state)
}

// MovementType tipo admitido.
func (v *MovementOfGoodsValidator) MovementType(m *entity.StockMovement) bool {
	return v.documentType(movementDoc{m})
}

// DocumentStatus estado de la guía.
func (v *MovementOfGoodsValidator) DocumentStatus(m *entity.StockMovement) bool {
	return v.documentStatus(movementDoc{m})
}

// CustomerIDOrSupplierID GD exige SupplierID; el resto, CustomerID o SupplierID pero no ambos.
func (v *MovementOfGoodsValidator) CustomerIDOrSupplierID(m *entity.StockMovement) bool {
	return v.party(movementDoc{m})
}

// MovementDateAndSystemEntryDate fechas dentro del período y no anteriores a las de la guía
// anterior de la serie.
func (v *MovementOfGoodsValidator) MovementDateAndSystemEntryDate(m *entity.StockMovement, state *ChainState) bool {
	return v.dateAndSystemEntryDate(movementDoc{m}, state)
}

// Shipment datos de transporte.
func (v *MovementOfGoodsValidator) Shipment(m *entity.StockMovement) bool {
	return v.shipment(movementDoc{m})
}

// Lines numeración, importes y cantidad × precio de las líneas.
func (v *MovementOfGoodsValidator) Lines(m *entity.StockMovement) bool {
	return v.lines(movementDoc{m}, entity.NewDocTotalCalc())
}

// ProductCode productos de las líneas.
func (v *MovementOfGoodsValidator) ProductCode(m *entity.StockMovement) bool {
	return eachLine(movementDoc{m}, v.productCode)
}

// Tax impuestos de las líneas, cuando se declaran.
func (v *MovementOfGoodsValidator) Tax(m *entity.StockMovement) bool {
	return eachLine(movementDoc{m}, v.tax)
}

// OrderReferences referencias a notas de encomenda.
func (v *MovementOfGoodsValidator) OrderReferences(m *entity.StockMovement) bool {
	return eachLine(movementDoc{m}, v.orderReferences)
}

// Totals DocumentTotals frente a las líneas.
func (v *MovementOfGoodsValidator) Totals(m *entity.StockMovement) bool {
	d := movementDoc{m}
	return v.totals(d, sumLines(d))
}

// Sign verifica el Hash de la guía con la cadena de state.
func (v *MovementOfGoodsValidator) Sign(m *entity.StockMovement, state *ChainState) bool {
	return v.sign(movementDoc{m}, state)
}

// NumberOfLinesAndTotalQuantity NumberOfMovementLines y TotalQuantityIssued declarados frente
// a las guías acumuladas en state (sin anuladas ni faturadas).
func (v *MovementOfGoodsValidator) NumberOfLinesAndTotalQuantity(state *ChainState) bool {
	if v.table == nil {
		return true
	}
	if v.table.Calc == nil {
		v.table.Calc = &entity.MovOfGoodsTableTotalCalc{}
	}
	v.table.Calc.NumberOfMovementLines = entity.NullInt{Int: state.Lines, Valid: true}
	v.table.Calc.TotalQuantityIssued = decimal.NewNullDecimal(state.Quantity)

	ok := true
	if v.table.NumberOfMovementLines != state.Lines {
		v.failTable(ruleNumberOfLines, "NumberOfMovementLines declarado %d, calculado %d", v.table.NumberOfMovementLines, state.Lines)
		ok = false
	}
	return v.tableAmount(ruleTotalQuantity, "TotalQuantityIssued", v.table.TotalQuantityIssued, state.Quantity) && ok
}
