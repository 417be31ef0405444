package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/saftpt-validator/internal/domain/entity"
)

func TestErrorMap_OrdenDeInsercion(t *testing.T) {
	var m entity.ErrorMap
	assert.True(t, m.IsEmpty())
	_, ok := m.First()
	assert.False(t, ok)

	m.Add("N_HASH", "sin hash")
	m.Add("N_DOCUMENTSTATUS", "sin estado")
	m.Add("N_HASH", "segundo mensaje")
	m.Add("N_CUSTOMERID", "cliente desconocido")

	assert.Equal(t, []entity.Code{"N_HASH", "N_DOCUMENTSTATUS", "N_CUSTOMERID"}, m.Keys())
	assert.Equal(t, 3, m.Len())
	first, ok := m.First()
	assert.True(t, ok)
	assert.Equal(t, entity.Code("N_HASH"), first)
	assert.Equal(t, []string{"sin hash", "segundo mensaje"}, m.Messages("N_HASH"))
	assert.True(t, m.Has("N_CUSTOMERID"))
	assert.False(t, m.Has("N_REASON"))
}

func TestErrorMap_KeysEsCopia(t *testing.T) {
	var m entity.ErrorMap
	m.Add("N_HASH", "x")
	keys := m.Keys()
	keys[0] = "OTRO"
	assert.Equal(t, []entity.Code{"N_HASH"}, m.Keys())
}

func TestErrorRegister_ErroresYAvisos(t *testing.T) {
	r := entity.NewErrorRegister()
	assert.False(t, r.HasErrors())

	r.AddWarning(entity.Issue{Code: "N_ORIGINATINGON", Document: "RG A/1", Severity: entity.SeverityError})
	assert.False(t, r.HasErrors(), "los avisos no cuentan como error")

	r.AddError(entity.Issue{Code: "N_HASH", Document: "FT A/2"})
	r.AddWarning(entity.Issue{Code: "N_HASH", Document: "FT A/3"})

	assert.True(t, r.HasErrors())
	warnings := r.Warnings()
	if assert.Len(t, warnings, 2) {
		assert.Equal(t, "RG A/1", warnings[0].Document)
		assert.Equal(t, entity.SeverityWarning, warnings[0].Severity, "AddWarning fija la gravedad")
		assert.Equal(t, "FT A/3", warnings[1].Document)
	}
	assert.Len(t, r.Errors(), 1)

	all := r.All()
	assert.Equal(t, []string{"RG A/1", "FT A/2", "FT A/3"}, []string{all[0].Document, all[1].Document, all[2].Document})
}

func TestSeverity_StringYParse(t *testing.T) {
	assert.Equal(t, "error", entity.SeverityError.String())
	assert.Equal(t, "warning", entity.SeverityWarning.String())
	assert.Equal(t, entity.SeverityWarning, entity.ParseSeverity("warning"))
	assert.Equal(t, entity.SeverityError, entity.ParseSeverity("desconocido"))
}

func TestAuditFile_ErrorRegisterSinConstructor(t *testing.T) {
	var a entity.AuditFile
	r := a.ErrorRegister()
	r.AddError(entity.Issue{Code: "N_HASH"})
	assert.Same(t, r, a.ErrorRegister())
	assert.True(t, a.ErrorRegister().HasErrors())
}
