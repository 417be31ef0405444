package main

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/saftpt-validator/internal/domain/signature"
	"github.com/jhoicas/saftpt-validator/internal/domain/validation"
	"github.com/jhoicas/saftpt-validator/internal/infrastructure/signer"
	"github.com/jhoicas/saftpt-validator/pkg/config"
)

// validationConfig traduce la configuración de entorno al Config del motor.
func validationConfig(c config.ValidationConfig) (validation.Config, error) {
	out := validation.NewConfig()
	out.ContinuousLines = c.ContinuousLines
	out.AllowDebitAndCredit = c.AllowDebitAndCredit
	out.SignValidation = c.Sign
	out.SchemaValidation = c.Schema

	var errs []error
	set := func(name, raw string, setter func(decimal.Decimal)) {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", name, raw, err))
			return
		}
		setter(d)
	}
	set("VALIDATION_DELTA_LINE", c.DeltaLine, out.SetDeltaLine)
	set("VALIDATION_DELTA_TABLE", c.DeltaTable, out.SetDeltaTable)
	set("VALIDATION_DELTA_CURRENCY", c.DeltaCurrency, out.SetDeltaCurrency)
	set("VALIDATION_DELTA_TOTAL_DOC", c.DeltaTotalDoc, out.SetDeltaTotalDoc)
	return out, errors.Join(errs...)
}

// loadVerifier carga la clave de verificación: PKCS#12, clave privada PEM o clave pública PEM,
// en ese orden. Sin ninguna ruta devuelve nil, nil.
func loadVerifier(c config.SignatureConfig) (signature.Verifier, error) {
	var (
		svc *signer.Service
		err error
	)
	switch {
	case c.P12Path != "":
		cert, lerr := signer.LoadFromP12(c.P12Path, c.P12Password)
		if lerr != nil {
			return nil, lerr
		}
		svc, err = signer.NewFromCertificate(cert)
	case c.PrivateKeyPath != "":
		priv, lerr := signer.LoadPrivateKeyPEM(c.PrivateKeyPath)
		if lerr != nil {
			return nil, lerr
		}
		svc, err = signer.NewService(priv, nil)
	case c.PublicKeyPath != "":
		pub, lerr := signer.LoadPublicKeyPEM(c.PublicKeyPath)
		if lerr != nil {
			return nil, lerr
		}
		svc, err = signer.NewService(nil, pub)
	default:
		return nil, nil
	}
	// un *Service nil no debe llegar como Verifier no nil
	if err != nil {
		return nil, err
	}
	return svc, nil
}
