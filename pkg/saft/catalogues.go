// Package saft contiene catálogos y reglas de formato del ficheiro SAF-T (PT) versión 1.04_01
// (Portaria n.º 302/2016). Lo usan el decodificador XML y el motor de validación.
package saft

import "time"

// Namespace del ficheiro SAF-T (PT) 1.04_01.
const Namespace = "urn:OECD:StandardAuditFile-Tax:PT_1.04_01"

// =============================================================================
// 4.1 SalesInvoices - InvoiceType
// =============================================================================

const (
	InvoiceTypeFatura             = "FT" // Fatura
	InvoiceTypeFaturaSimplificada = "FS" // Fatura simplificada
	InvoiceTypeFaturaRecibo       = "FR" // Fatura-recibo
	InvoiceTypeNotaDebito         = "ND" // Nota de débito
	InvoiceTypeNotaCredito        = "NC" // Nota de crédito
	InvoiceTypeVendaDinheiro      = "VD" // Venda a dinheiro (até 2012-12-31)
	InvoiceTypeTalaoVenda         = "TV" // Talão de venda (até 2012-12-31)
	InvoiceTypeTalaoDevolucao     = "TD" // Talão de devolução (até 2012-12-31)
	InvoiceTypeAlienacaoAtivos    = "AA" // Alienação de ativos (até 2012-12-31)
	InvoiceTypeDevolucaoAtivos    = "DA" // Devolução de ativos (até 2012-12-31)
	InvoiceTypeRecibo             = "RP" // Prémio ou recibo de prémio (seguros)
	InvoiceTypeEstorno            = "RE" // Estorno ou recibo de estorno (seguros)
	InvoiceTypeCosseguro          = "CS" // Imputação a co-seguradoras
	InvoiceTypeCosseguradoraLider = "LD" // Imputação a co-seguradora líder
	InvoiceTypeResseguro          = "RA" // Resseguro aceite
)

// ValidInvoiceTypes tipos de fatura válidos en 4.1.4.8.
var ValidInvoiceTypes = map[string]bool{
	InvoiceTypeFatura: true, InvoiceTypeFaturaSimplificada: true, InvoiceTypeFaturaRecibo: true,
	InvoiceTypeNotaDebito: true, InvoiceTypeNotaCredito: true,
	InvoiceTypeVendaDinheiro: true, InvoiceTypeTalaoVenda: true, InvoiceTypeTalaoDevolucao: true,
	InvoiceTypeAlienacaoAtivos: true, InvoiceTypeDevolucaoAtivos: true,
	InvoiceTypeRecibo: true, InvoiceTypeEstorno: true, InvoiceTypeCosseguro: true,
	InvoiceTypeCosseguradoraLider: true, InvoiceTypeResseguro: true,
}

// InvoiceLegacyCutoff último día en que los tipos VD, TV, TD, AA y DA eran admitidos.
var InvoiceLegacyCutoff = time.Date(2012, time.December, 31, 0, 0, 0, 0, time.UTC)

// LegacyInvoiceTypes tipos que solo valen para documentos con fecha <= InvoiceLegacyCutoff.
var LegacyInvoiceTypes = map[string]bool{
	InvoiceTypeVendaDinheiro: true, InvoiceTypeTalaoVenda: true, InvoiceTypeTalaoDevolucao: true,
	InvoiceTypeAlienacaoAtivos: true, InvoiceTypeDevolucaoAtivos: true,
}

// =============================================================================
// 4.2 MovementOfGoods - MovementType
// =============================================================================

const (
	MovementTypeRemessa     = "GR" // Guia de remessa
	MovementTypeTransporte  = "GT" // Guia de transporte (utilizar para guia global)
	MovementTypeAtivos      = "GA" // Guia de movimentação de ativos próprios
	MovementTypeConsignacao = "GC" // Guia de consignação
	MovementTypeDevolucao   = "GD" // Guia ou nota de devolução
)

// MovementTypeGlobal es el tipo usado para la guia global: no exige ShipTo.
const MovementTypeGlobal = MovementTypeTransporte

// ValidMovementTypes tipos de guía válidos en 4.2.3.9.
var ValidMovementTypes = map[string]bool{
	MovementTypeRemessa: true, MovementTypeTransporte: true, MovementTypeAtivos: true,
	MovementTypeConsignacao: true, MovementTypeDevolucao: true,
}

// =============================================================================
// 4.3 WorkingDocuments - WorkType
// =============================================================================

const (
	WorkTypeConsultaMesa       = "CM" // Consultas de mesa
	WorkTypeCreditoConsignacao = "CC" // Credito de consignação
	WorkTypeFaturaConsignacao  = "FC" // Fatura de consignação
	WorkTypeFolhaObra          = "FO" // Folhas de obra
	WorkTypeNotaEncomenda      = "NE" // Nota de Encomenda
	WorkTypeOutros             = "OU" // Outros
	WorkTypeOrcamento          = "OR" // Orçamentos
	WorkTypeProForma           = "PF" // Pró-forma
	WorkTypeConferencia        = "DC" // Documentos de conferência (até 2017-06-30)
	WorkTypeRecibo             = "RP" // Prémio ou recibo de prémio
	WorkTypeEstorno            = "RE" // Estorno ou recibo de estorno
	WorkTypeCosseguro          = "CS" // Imputação a co-seguradoras
	WorkTypeCosseguradoraLider = "LD" // Imputação a co-seguradora líder
	WorkTypeResseguro          = "RA" // Resseguro aceite
)

// ValidWorkTypes tipos de documento de conferência válidos en 4.3.4.8.
var ValidWorkTypes = map[string]bool{
	WorkTypeConsultaMesa: true, WorkTypeCreditoConsignacao: true, WorkTypeFaturaConsignacao: true,
	WorkTypeFolhaObra: true, WorkTypeNotaEncomenda: true, WorkTypeOutros: true,
	WorkTypeOrcamento: true, WorkTypeProForma: true, WorkTypeConferencia: true,
	WorkTypeRecibo: true, WorkTypeEstorno: true, WorkTypeCosseguro: true,
	WorkTypeCosseguradoraLider: true, WorkTypeResseguro: true,
}

// WorkLegacyCutoff último día en que el tipo DC era admitido.
var WorkLegacyCutoff = time.Date(2017, time.June, 30, 0, 0, 0, 0, time.UTC)

// LegacyWorkTypes tipos que solo valen para documentos con fecha <= WorkLegacyCutoff.
var LegacyWorkTypes = map[string]bool{WorkTypeConferencia: true}

// =============================================================================
// 4.4 Payments - PaymentType
// =============================================================================

const (
	PaymentTypeRecibo      = "RC" // Recibo emitido no âmbito do regime de IVA de caixa
	PaymentTypeReciboOutro = "RG" // Outro recibo emitido
)

// ValidPaymentTypes tipos de recibo válidos en 4.4.4.6.
var ValidPaymentTypes = map[string]bool{PaymentTypeRecibo: true, PaymentTypeReciboOutro: true}

// =============================================================================
// Estados de documento
// =============================================================================

const (
	StatusNormal     = "N" // Normal
	StatusAutofatura = "S" // Autofaturação
	StatusAnulado    = "A" // Documento anulado
	StatusResumo     = "R" // Documento de resumo de outros documentos
	StatusFaturado   = "F" // Documento faturado
	StatusTransporte = "T" // Por conta de terceiros (guias)
)

// ValidInvoiceStatus estados admitidos en 4.1.4.3.1.
var ValidInvoiceStatus = map[string]bool{
	StatusNormal: true, StatusAutofatura: true, StatusAnulado: true, StatusResumo: true, StatusFaturado: true,
}

// ValidMovementStatus estados admitidos en 4.2.3.3.1.
var ValidMovementStatus = map[string]bool{
	StatusNormal: true, StatusTransporte: true, StatusAnulado: true, StatusFaturado: true, StatusResumo: true,
}

// ValidWorkStatus estados admitidos en 4.3.4.3.1.
var ValidWorkStatus = map[string]bool{StatusNormal: true, StatusAnulado: true, StatusFaturado: true}

// ValidPaymentStatus estados admitidos en 4.4.4.10.1.
var ValidPaymentStatus = map[string]bool{StatusNormal: true, StatusAnulado: true}

// Origen del documento (SourceBilling / SourcePayment).
const (
	SourceBillingProduced   = "P" // Documento produzido na aplicação
	SourceBillingIntegrated = "I" // Documento integrado e produzido noutra aplicação
	SourceBillingManual     = "M" // Documento proveniente de recuperação ou de emissão manual
)

// ValidSourceBilling orígenes admitidos.
var ValidSourceBilling = map[string]bool{
	SourceBillingProduced: true, SourceBillingIntegrated: true, SourceBillingManual: true,
}

// =============================================================================
// Tabla de impostos (TaxTable)
// =============================================================================

const (
	TaxTypeIVA = "IVA" // Imposto sobre o valor acrescentado
	TaxTypeIS  = "IS"  // Imposto do selo
	TaxTypeNS  = "NS"  // Não sujeição a IVA ou IS
)

const (
	TaxCodeReduzida   = "RED" // Taxa reduzida
	TaxCodeIntermedia = "INT" // Taxa intermédia
	TaxCodeNormal     = "NOR" // Taxa normal
	TaxCodeIsenta     = "ISE" // Isenta
	TaxCodeOutros     = "OUT" // Outros
	TaxCodeNaoSujeito = "NS"  // Não sujeição
)

// ValidTaxTypes tipos de imposto admitidos.
var ValidTaxTypes = map[string]bool{TaxTypeIVA: true, TaxTypeIS: true, TaxTypeNS: true}

// ValidTaxCodes códigos admitidos por tipo. IS usa el código de la verba de la Tabela Geral
// do Imposto do Selo, por eso no tiene lista cerrada.
var ValidTaxCodes = map[string]map[string]bool{
	TaxTypeIVA: {
		TaxCodeReduzida: true, TaxCodeIntermedia: true, TaxCodeNormal: true,
		TaxCodeIsenta: true, TaxCodeOutros: true,
	},
	TaxTypeNS: {TaxCodeNaoSujeito: true},
}

// ValidTaxCountryRegions regiones fiscales nacionales; los códigos ISO 3166-1 alpha-2 también son válidos.
var ValidTaxCountryRegions = map[string]bool{"PT": true, "PT-AC": true, "PT-MA": true}

// IsValidTaxCountryRegion región nacional o código de país de dos letras mayúsculas.
func IsValidTaxCountryRegion(region string) bool {
	if ValidTaxCountryRegions[region] {
		return true
	}
	if len(region) != 2 {
		return false
	}
	for _, r := range region {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// IsValidTaxCode indica si el código es admitido para el tipo de imposto.
func IsValidTaxCode(taxType, code string) bool {
	codes, closed := ValidTaxCodes[taxType]
	if !closed {
		return ValidTaxTypes[taxType] && code != ""
	}
	return codes[code]
}
