package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
)

func TestTaxTableEntry_LiveAt(t *testing.T) {
	sinCaducidad := entity.TaxTableEntry{TaxCode: "NOR"}
	assert.True(t, sinCaducidad.LiveAt(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)))

	exp := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	e := entity.TaxTableEntry{TaxCode: "NOR", TaxExpirationDate: &exp}
	assert.True(t, e.LiveAt(time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.True(t, e.LiveAt(time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)), "caduca al final del día")
	assert.False(t, e.LiveAt(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
}

func TestMasterFiles_Busquedas(t *testing.T) {
	var m entity.MasterFiles
	m.SetCustomers([]*entity.Customer{{CustomerID: "C1"}, {CustomerID: "C2"}})
	m.SetSuppliers([]*entity.Supplier{{SupplierID: "S1"}})

	c, ok := m.Customer("C2")
	assert.True(t, ok)
	assert.Equal(t, "C2", c.CustomerID)
	_, ok = m.Customer("c2")
	assert.False(t, ok, "búsqueda por código exacto")
	_, ok = m.Supplier("S1")
	assert.True(t, ok)
	_, ok = m.Product("P1")
	assert.False(t, ok)
}

func TestMasterFiles_SustituirTablaYaConsultada(t *testing.T) {
	var m entity.MasterFiles
	m.SetProducts([]*entity.Product{{ProductCode: "P1"}})
	_, ok := m.Product("P1")
	assert.True(t, ok)

	m.SetProducts([]*entity.Product{{ProductCode: "P2"}})
	_, ok = m.Product("P2")
	assert.True(t, ok)
	_, ok = m.Product("P1")
	assert.False(t, ok)

	m.SetCustomers([]*entity.Customer{{CustomerID: "C1"}})
	_, _ = m.Customer("C1")
	m.SetCustomers([]*entity.Customer{{CustomerID: "C9"}})
	_, ok = m.Customer("C9")
	assert.True(t, ok)

	m.SetSuppliers([]*entity.Supplier{{SupplierID: "S1"}})
	_, _ = m.Supplier("S1")
	m.SetSuppliers(nil)
	_, ok = m.Supplier("S1")
	assert.False(t, ok)
}

func TestMasterFiles_TaxTableEntries(t *testing.T) {
	m := entity.MasterFiles{TaxTable: []*entity.TaxTableEntry{
		{TaxType: "IVA", TaxCountryRegion: "PT", TaxCode: "NOR"},
		{TaxType: "IVA", TaxCountryRegion: "PT-AC", TaxCode: "NOR"},
		{TaxType: "IVA", TaxCountryRegion: "PT", TaxCode: "NOR"},
	}}
	assert.Len(t, m.TaxTableEntries("IVA", "PT", "NOR"), 2)
	assert.Empty(t, m.TaxTableEntries("IS", "PT", "NOR"))
}
