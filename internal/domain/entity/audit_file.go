package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFile raíz del ficheiro SAF-T (PT). Se construye una vez por ejecución de validación;
// los validadores solo escriben en los mapas de errores, en el ErrorRegister y en los
// acumuladores que adjuntan a las tablas.
type AuditFile struct {
	Header          Header
	MasterFiles     MasterFiles
	SourceDocuments SourceDocuments

	register *ErrorRegister
}

// NewAuditFile crea un AuditFile vacío con su ErrorRegister.
func NewAuditFile() *AuditFile {
	return &AuditFile{register: NewErrorRegister()}
}

// ErrorRegister devuelve el colector de errores del ficheiro.
func (a *AuditFile) ErrorRegister() *ErrorRegister {
	if a.register == nil {
		a.register = NewErrorRegister()
	}
	return a.register
}

// Header cabecera del ficheiro (1.).
type Header struct {
	AuditFileVersion          string
	CompanyID                 string
	TaxRegistrationNumber     string
	TaxAccountingBasis        string
	CompanyName               string
	BusinessName              string
	CompanyAddress            Address
	FiscalYear                int
	StartDate                 time.Time // vacío = no declarado
	EndDate                   time.Time
	CurrencyCode              string
	DateCreated               time.Time
	TaxEntity                 string
	ProductCompanyTaxID       string
	SoftwareCertificateNumber string
	ProductID                 string
	ProductVersion            string
}

// Address morada (BillingAddress, ShipToAddress, etc.).
type Address struct {
	BuildingNumber string
	StreetName     string
	AddressDetail  string
	City           string
	PostalCode     string
	Region         string
	Country        string
}

// Customer cliente (2.2).
type Customer struct {
	CustomerID           string
	AccountID            string
	CustomerTaxID        string
	CompanyName          string
	BillingAddress       Address
	ShipToAddress        []Address
	SelfBillingIndicator int
}

// Supplier fornecedor (2.3).
type Supplier struct {
	SupplierID           string
	AccountID            string
	SupplierTaxID        string
	CompanyName          string
	BillingAddress       Address
	ShipFromAddress      []Address
	SelfBillingIndicator int
}

// Product produto ou serviço (2.4).
type Product struct {
	ProductType        string
	ProductCode        string
	ProductGroup       string
	ProductDescription string
	ProductNumberCode  string
}

// TaxTableEntry entrada de la tabla de impuestos (2.5.1).
type TaxTableEntry struct {
	TaxType           string
	TaxCountryRegion  string
	TaxCode           string
	Description       string
	TaxExpirationDate *time.Time // nil = sin caducidad
	TaxPercentage     decimal.NullDecimal
	TaxAmount         decimal.NullDecimal
}

// LiveAt indica si la entrada está vigente en la fecha indicada.
func (e *TaxTableEntry) LiveAt(t time.Time) bool {
	if e.TaxExpirationDate == nil {
		return true
	}
	return !e.TaxExpirationDate.Before(truncateDay(t))
}

// MasterFiles tablas maestras (2.) con búsqueda por código exacto. El índice de búsqueda se
// construye en la primera consulta; para sustituir una tabla ya consultada hay que usar
// SetCustomers, SetSuppliers o SetProducts, que lo descartan.
type MasterFiles struct {
	Customers []*Customer
	Suppliers []*Supplier
	Products  []*Product
	TaxTable  []*TaxTableEntry

	customerIdx map[string]*Customer
	supplierIdx map[string]*Supplier
	productIdx  map[string]*Product
}

// SetCustomers sustituye la tabla de clientes.
func (m *MasterFiles) SetCustomers(cs []*Customer) {
	m.Customers = cs
	m.customerIdx = nil
}

// SetSuppliers sustituye la tabla de fornecedores.
func (m *MasterFiles) SetSuppliers(ss []*Supplier) {
	m.Suppliers = ss
	m.supplierIdx = nil
}

// SetProducts sustituye la tabla de productos.
func (m *MasterFiles) SetProducts(ps []*Product) {
	m.Products = ps
	m.productIdx = nil
}

// Customer busca un cliente por CustomerID.
func (m *MasterFiles) Customer(id string) (*Customer, bool) {
	if m.customerIdx == nil {
		m.customerIdx = make(map[string]*Customer, len(m.Customers))
		for _, c := range m.Customers {
			m.customerIdx[c.CustomerID] = c
		}
	}
	c, ok := m.customerIdx[id]
	return c, ok
}

// Supplier busca un fornecedor por SupplierID.
func (m *MasterFiles) Supplier(id string) (*Supplier, bool) {
	if m.supplierIdx == nil {
		m.supplierIdx = make(map[string]*Supplier, len(m.Suppliers))
		for _, s := range m.Suppliers {
			m.supplierIdx[s.SupplierID] = s
		}
	}
	s, ok := m.supplierIdx[id]
	return s, ok
}

// Product busca un producto por ProductCode.
func (m *MasterFiles) Product(code string) (*Product, bool) {
	if m.productIdx == nil {
		m.productIdx = make(map[string]*Product, len(m.Products))
		for _, p := range m.Products {
			m.productIdx[p.ProductCode] = p
		}
	}
	p, ok := m.productIdx[code]
	return p, ok
}

// TaxTableEntries devuelve las entradas que coinciden con (tipo, región, código).
func (m *MasterFiles) TaxTableEntries(taxType, region, code string) []*TaxTableEntry {
	var out []*TaxTableEntry
	for _, e := range m.TaxTable {
		if e.TaxType == taxType && e.TaxCountryRegion == region && e.TaxCode == code {
			out = append(out, e)
		}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
