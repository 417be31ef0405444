package validation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/saftpt-validator/pkg/saft"
)

// ChainState estado que se arrastra de un documento al siguiente al recorrer una tabla:
// por serie, el último documento procesado (hash, número, fechas); para la tabla, los
// importes acumulados. Un estado nuevo por tabla.
type ChainState struct {
	series map[string]chainLink
	seen   map[string]bool

	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Entries     int
	Lines       int
	Quantity    decimal.Decimal
}

type chainLink struct {
	sequence        int64
	hash            string
	date            time.Time
	systemEntryDate time.Time
}

// NewChainState crea el estado inicial de una tabla.
func NewChainState() *ChainState {
	return &ChainState{
		series: make(map[string]chainLink),
		seen:   make(map[string]bool),
	}
}

// seriesOf devuelve la clave de serie y el secuencial. Los números que no se pueden
// interpretar comparten la clave vacía y secuencial 0.
func seriesOf(number string) (string, int64) {
	n, err := saft.ParseDocumentNumber(number)
	if err != nil {
		return "", 0
	}
	return n.SeriesKey(), n.Sequence
}

// PreviousHash hash del documento inmediatamente anterior de la misma serie, si fue el
// último procesado de esa serie. Vacío si no existe.
func (s *ChainState) PreviousHash(number string) string {
	key, seq := seriesOf(number)
	if seq == 0 {
		return ""
	}
	link, ok := s.series[key]
	if !ok || link.sequence != seq-1 {
		return ""
	}
	return link.hash
}

// Last fechas del último documento procesado de la misma serie.
func (s *ChainState) Last(number string) (date, systemEntryDate time.Time, ok bool) {
	key, _ := seriesOf(number)
	link, ok := s.series[key]
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return link.date, link.systemEntryDate, true
}

// Record registra un documento como el último procesado de su serie.
func (s *ChainState) Record(number, hash string, date, systemEntryDate time.Time) {
	if s.series == nil {
		s.series = make(map[string]chainLink)
	}
	key, seq := seriesOf(number)
	s.series[key] = chainLink{sequence: seq, hash: hash, date: date, systemEntryDate: systemEntryDate}
}

// markSeen devuelve false si el número ya apareció en la tabla.
func (s *ChainState) markSeen(number string) bool {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[number] {
		return false
	}
	s.seen[number] = true
	return true
}
