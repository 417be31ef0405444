// Firma de documentos SAF-T (PT): RSA PKCS#1 v1.5 sobre SHA-1, resultado en Base64.
package signer

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jhoicas/saftpt-validator/internal/domain"
	"github.com/jhoicas/saftpt-validator/internal/domain/signature"
)

// Service firma y verifica la cadena de Hash. Con solo la llave pública únicamente verifica.
type Service struct {
	priv *rsa.PrivateKey
	pub  *rsa.PublicKey
}

// NewService crea el servicio. Si pub es nil se usa la parte pública de priv.
func NewService(priv *rsa.PrivateKey, pub *rsa.PublicKey) (*Service, error) {
	if pub == nil && priv != nil {
		pub = &priv.PublicKey
	}
	if pub == nil {
		return nil, domain.ErrSignatureKey
	}
	return &Service{priv: priv, pub: pub}, nil
}

// NewFromCertificate crea el servicio con la llave de un certificado cargado con LoadFromP12.
func NewFromCertificate(cert tls.Certificate) (*Service, error) {
	priv, ok := cert.PrivateKey.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: el certificado debe incluir llave privada RSA", domain.ErrSignatureKey)
	}
	return NewService(priv, nil)
}

// PublicKey llave con la que se verifica.
func (s *Service) PublicKey() *rsa.PublicKey { return s.pub }

// CreateSignature implementa signature.Signer.
func (s *Service) CreateSignature(f signature.Fields) (string, error) {
	if s.priv == nil {
		return "", fmt.Errorf("%w: falta la llave privada", domain.ErrSignatureKey)
	}
	if err := f.Validate(); err != nil {
		return "", err
	}
	digest := sha1.Sum([]byte(signature.Message(f)))
	sig, err := rsa.SignPKCS1v15(rand.Reader, s.priv, crypto.SHA1, digest[:])
	if err != nil {
		return "", fmt.Errorf("signer: firmar: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// VerifySignature implementa signature.Verifier. Un Hash que no es Base64 válido es una firma
// que no corresponde, no un error.
func (s *Service) VerifySignature(f signature.Fields, hash string) (bool, error) {
	if err := f.Validate(); err != nil {
		return false, err
	}
	sig, err := base64.StdEncoding.DecodeString(strings.TrimSpace(hash))
	if err != nil {
		return false, nil
	}
	digest := sha1.Sum([]byte(signature.Message(f)))
	return rsa.VerifyPKCS1v15(s.pub, crypto.SHA1, digest[:], sig) == nil, nil
}

var (
	_ signature.Signer   = (*Service)(nil)
	_ signature.Verifier = (*Service)(nil)
)
