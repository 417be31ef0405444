package validation

import (
	"sort"
	"time"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
	"github.com/jhoicas/saftpt-validator/pkg/saft"
)

// document vista común de Invoice, StockMovement, WorkDocument y Payment.
type document interface {
	number() string
	docType() string
	date() time.Time
	systemEntryDate() time.Time
	status() *entity.DocumentStatus
	hash() string
	customerID() string
	supplierID() string
	lines() []*entity.Line
	totals() *entity.DocumentTotals
	payments() []entity.PaymentMethod
	withholding() []entity.WithholdingTax
	shipping() shipment
	errs() *entity.ErrorMap
	warns() *entity.ErrorMap
}

// shipment datos de transporte (facturas y guías).
type shipment struct {
	shipTo   *entity.ShippingPoint
	shipFrom *entity.ShippingPoint
	start    time.Time
	end      time.Time
}

type invoiceDoc struct{ *entity.Invoice }

func (d invoiceDoc) number() string                       { return d.InvoiceNo }
func (d invoiceDoc) docType() string                      { return d.InvoiceType }
func (d invoiceDoc) date() time.Time                      { return d.InvoiceDate }
func (d invoiceDoc) systemEntryDate() time.Time           { return d.SystemEntryDate }
func (d invoiceDoc) status() *entity.DocumentStatus       { return d.DocumentStatus }
func (d invoiceDoc) hash() string                         { return d.Hash }
func (d invoiceDoc) customerID() string                   { return d.CustomerID }
func (d invoiceDoc) supplierID() string                   { return "" }
func (d invoiceDoc) lines() []*entity.Line                { return d.Lines }
func (d invoiceDoc) totals() *entity.DocumentTotals       { return d.DocumentTotals }
func (d invoiceDoc) withholding() []entity.WithholdingTax { return d.WithholdingTax }
func (d invoiceDoc) errs() *entity.ErrorMap               { return &d.Errors }
func (d invoiceDoc) warns() *entity.ErrorMap              { return &d.Warnings }

func (d invoiceDoc) payments() []entity.PaymentMethod {
	if d.DocumentTotals == nil {
		return nil
	}
	return d.DocumentTotals.Payment
}

func (d invoiceDoc) shipping() shipment {
	return shipment{shipTo: d.ShipTo, shipFrom: d.ShipFrom, start: d.MovementStartTime, end: d.MovementEndTime}
}

type movementDoc struct{ *entity.StockMovement }

func (d movementDoc) number() string                       { return d.DocumentNumber }
func (d movementDoc) docType() string                      { return d.MovementType }
func (d movementDoc) date() time.Time                      { return d.MovementDate }
func (d movementDoc) systemEntryDate() time.Time           { return d.SystemEntryDate }
func (d movementDoc) status() *entity.DocumentStatus       { return d.DocumentStatus }
func (d movementDoc) hash() string                         { return d.Hash }
func (d movementDoc) customerID() string                   { return d.CustomerID }
func (d movementDoc) supplierID() string                   { return d.SupplierID }
func (d movementDoc) lines() []*entity.Line                { return d.Lines }
func (d movementDoc) totals() *entity.DocumentTotals       { return d.DocumentTotals }
func (d movementDoc) payments() []entity.PaymentMethod     { return nil }
func (d movementDoc) withholding() []entity.WithholdingTax { return nil }
func (d movementDoc) errs() *entity.ErrorMap               { return &d.Errors }
func (d movementDoc) warns() *entity.ErrorMap              { return &d.Warnings }

func (d movementDoc) shipping() shipment {
	return shipment{shipTo: d.ShipTo, shipFrom: d.ShipFrom, start: d.MovementStartTime, end: d.MovementEndTime}
}

type workDoc struct{ *entity.WorkDocument }

func (d workDoc) number() string                       { return d.DocumentNumber }
func (d workDoc) docType() string                      { return d.WorkType }
func (d workDoc) date() time.Time                      { return d.WorkDate }
func (d workDoc) systemEntryDate() time.Time           { return d.SystemEntryDate }
func (d workDoc) status() *entity.DocumentStatus       { return d.DocumentStatus }
func (d workDoc) hash() string                         { return d.Hash }
func (d workDoc) customerID() string                   { return d.CustomerID }
func (d workDoc) supplierID() string                   { return "" }
func (d workDoc) lines() []*entity.Line                { return d.Lines }
func (d workDoc) totals() *entity.DocumentTotals       { return d.DocumentTotals }
func (d workDoc) payments() []entity.PaymentMethod     { return nil }
func (d workDoc) withholding() []entity.WithholdingTax { return nil }
func (d workDoc) shipping() shipment                   { return shipment{} }
func (d workDoc) errs() *entity.ErrorMap               { return &d.Errors }
func (d workDoc) warns() *entity.ErrorMap              { return &d.Warnings }

type paymentDoc struct{ *entity.Payment }

func (d paymentDoc) number() string                       { return d.PaymentRefNo }
func (d paymentDoc) docType() string                      { return d.PaymentType }
func (d paymentDoc) date() time.Time                      { return d.TransactionDate }
func (d paymentDoc) systemEntryDate() time.Time           { return d.SystemEntryDate }
func (d paymentDoc) status() *entity.DocumentStatus       { return d.DocumentStatus }
func (d paymentDoc) hash() string                         { return "" }
func (d paymentDoc) customerID() string                   { return d.CustomerID }
func (d paymentDoc) supplierID() string                   { return "" }
func (d paymentDoc) lines() []*entity.Line                { return d.Lines }
func (d paymentDoc) totals() *entity.DocumentTotals       { return d.DocumentTotals }
func (d paymentDoc) payments() []entity.PaymentMethod     { return d.PaymentMethod }
func (d paymentDoc) withholding() []entity.WithholdingTax { return d.WithholdingTax }
func (d paymentDoc) shipping() shipment                   { return shipment{} }
func (d paymentDoc) errs() *entity.ErrorMap               { return &d.Errors }
func (d paymentDoc) warns() *entity.ErrorMap              { return &d.Warnings }

// documentOrder ordena por (serie, secuencial). Los números que no se pueden interpretar van
// al final en el orden del ficheiro.
func documentOrder(docs []document) []document {
	type keyed struct {
		doc    document
		series string
		seq    int64
		ok     bool
	}
	ks := make([]keyed, len(docs))
	for i, d := range docs {
		n, err := saft.ParseDocumentNumber(d.number())
		ks[i] = keyed{doc: d, series: n.SeriesKey(), seq: n.Sequence, ok: err == nil}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		a, b := ks[i], ks[j]
		if a.ok != b.ok {
			return a.ok
		}
		if !a.ok {
			return false
		}
		if a.series != b.series {
			return a.series < b.series
		}
		return a.seq < b.seq
	})
	out := make([]document, len(ks))
	for i, k := range ks {
		out[i] = k.doc
	}
	return out
}
