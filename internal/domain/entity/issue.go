package entity

// Severity gravedad de un hallazgo de validación.
type Severity int

const (
	SeverityError   Severity = iota // invalida el documento, la tabla o el ficheiro
	SeverityWarning                 // se reporta pero no invalida
)

// String devuelve "error" o "warning".
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// ParseSeverity inverso de String; cualquier valor desconocido es error.
func ParseSeverity(s string) Severity {
	if s == "warning" {
		return SeverityWarning
	}
	return SeverityError
}

// Code código estable de la regla que falló (ej: N_DOCUMENTSTATUS, N_HASH).
type Code string

// Códigos sin familia: estructura del ficheiro y cabecera.
const (
	CodeStructure   Code = "N_XMLSTRUCTURE"
	CodeHeaderDates Code = "N_HEADERDATES"
)

// Issue hallazgo registrado en el ErrorRegister del ficheiro.
type Issue struct {
	Code     Code
	Severity Severity
	Message  string
	Table    string // SalesInvoices, MovementOfGoods, WorkingDocuments, Payments u otro contexto
	Document string // número del documento, vacío para errores de tabla
	Line     int    // número de línea, 0 si no aplica
}

// ErrorMap errores de una entidad (documento, línea, totales o tabla) por código.
// Conserva el orden de inserción de los códigos. El valor cero está listo para usarse.
type ErrorMap struct {
	order    []Code
	messages map[Code][]string
}

// Add registra un mensaje bajo el código.
func (m *ErrorMap) Add(code Code, message string) {
	if m.messages == nil {
		m.messages = make(map[Code][]string)
	}
	if _, ok := m.messages[code]; !ok {
		m.order = append(m.order, code)
	}
	m.messages[code] = append(m.messages[code], message)
}

// Has indica si existe al menos un mensaje con el código.
func (m *ErrorMap) Has(code Code) bool {
	_, ok := m.messages[code]
	return ok
}

// Keys devuelve los códigos en orden de inserción.
func (m *ErrorMap) Keys() []Code {
	out := make([]Code, len(m.order))
	copy(out, m.order)
	return out
}

// First devuelve el primer código registrado.
func (m *ErrorMap) First() (Code, bool) {
	if len(m.order) == 0 {
		return "", false
	}
	return m.order[0], true
}

// Messages devuelve los mensajes de un código.
func (m *ErrorMap) Messages(code Code) []string {
	return m.messages[code]
}

// Len número de códigos distintos.
func (m *ErrorMap) Len() int { return len(m.order) }

// IsEmpty indica si no hay ningún código.
func (m *ErrorMap) IsEmpty() bool { return len(m.order) == 0 }

// ErrorRegister colector de errores y avisos de todo el ficheiro, independiente de los
// ErrorMap de cada entidad.
type ErrorRegister struct {
	issues []Issue
}

// NewErrorRegister crea un registro vacío.
func NewErrorRegister() *ErrorRegister {
	return &ErrorRegister{}
}

// AddError registra un error.
func (r *ErrorRegister) AddError(issue Issue) {
	issue.Severity = SeverityError
	r.issues = append(r.issues, issue)
}

// AddWarning registra un aviso.
func (r *ErrorRegister) AddWarning(issue Issue) {
	issue.Severity = SeverityWarning
	r.issues = append(r.issues, issue)
}

// HasErrors indica si hay al menos un error (los avisos no cuentan).
func (r *ErrorRegister) HasErrors() bool {
	for _, i := range r.issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors devuelve solo los errores, en orden de registro.
func (r *ErrorRegister) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings devuelve solo los avisos, en orden de registro.
func (r *ErrorRegister) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

// All devuelve errores y avisos en orden de registro.
func (r *ErrorRegister) All() []Issue {
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return out
}

func (r *ErrorRegister) filter(s Severity) []Issue {
	var out []Issue
	for _, i := range r.issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}
