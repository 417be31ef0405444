package signer_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/saftpt-validator/internal/domain"
	"github.com/jhoicas/saftpt-validator/internal/domain/signature"
	"github.com/jhoicas/saftpt-validator/internal/infrastructure/signer"
)

func newKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	k, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return k
}

func fields(number, prev string) signature.Fields {
	return signature.Fields{
		DocumentDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		SystemEntryDate: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		DocumentNumber:  number,
		GrossTotal:      decimal.RequireFromString("123.00"),
		PreviousHash:    prev,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Firma y verificación
// ──────────────────────────────────────────────────────────────────────────────

func TestService_FirmaYVerifica(t *testing.T) {
	svc, err := signer.NewService(newKey(t), nil)
	require.NoError(t, err)

	h1, err := svc.CreateSignature(fields("FT A/1", ""))
	require.NoError(t, err)
	h2, err := svc.CreateSignature(fields("FT A/2", h1))
	require.NoError(t, err)

	ok, err := svc.VerifySignature(fields("FT A/1", ""), h1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifySignature(fields("FT A/2", h1), h2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifySignature(fields("FT A/2", ""), h2)
	require.NoError(t, err)
	assert.False(t, ok, "la firma depende del hash anterior")
}

func TestService_Determinista(t *testing.T) {
	svc, err := signer.NewService(newKey(t), nil)
	require.NoError(t, err)

	a, err := svc.CreateSignature(fields("FT A/1", ""))
	require.NoError(t, err)
	b, err := svc.CreateSignature(fields("FT A/1", ""))
	require.NoError(t, err)
	assert.Equal(t, a, b, "PKCS#1 v1.5 no usa aleatoriedad")
}

func TestService_HashNoBase64EsFirmaIncorrecta(t *testing.T) {
	svc, err := signer.NewService(newKey(t), nil)
	require.NoError(t, err)

	ok, err := svc.VerifySignature(fields("FT A/1", ""), "%%%no-base64%%%")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_SoloVerificacion(t *testing.T) {
	k := newKey(t)
	full, err := signer.NewService(k, nil)
	require.NoError(t, err)
	h, err := full.CreateSignature(fields("FT A/1", ""))
	require.NoError(t, err)

	verifyOnly, err := signer.NewService(nil, &k.PublicKey)
	require.NoError(t, err)

	ok, err := verifyOnly.VerifySignature(fields("FT A/1", ""), h)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = verifyOnly.CreateSignature(fields("FT A/1", ""))
	assert.True(t, errors.Is(err, domain.ErrSignatureKey))
}

func TestService_CamposIncompletos(t *testing.T) {
	svc, err := signer.NewService(newKey(t), nil)
	require.NoError(t, err)

	_, err = svc.CreateSignature(signature.Fields{DocumentNumber: "FT A/1"})
	assert.Error(t, err)
	_, err = svc.VerifySignature(signature.Fields{}, "abc")
	assert.Error(t, err)
}

func TestNewService_SinLlaves(t *testing.T) {
	_, err := signer.NewService(nil, nil)
	assert.ErrorIs(t, err, domain.ErrSignatureKey)
}

func TestNewFromCertificate(t *testing.T) {
	k := newKey(t)
	svc, err := signer.NewFromCertificate(tls.Certificate{PrivateKey: k})
	require.NoError(t, err)
	assert.Equal(t, &k.PublicKey, svc.PublicKey())

	_, err = signer.NewFromCertificate(tls.Certificate{})
	assert.ErrorIs(t, err, domain.ErrSignatureKey)
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga de llaves
// ──────────────────────────────────────────────────────────────────────────────

func writePEM(t *testing.T, typ string, der []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: typ, Bytes: der}), 0o600))
	return path
}

func TestLoadPrivateKeyPEM_PKCS1yPKCS8(t *testing.T) {
	k := newKey(t)

	got, err := signer.LoadPrivateKeyPEM(writePEM(t, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(k)))
	require.NoError(t, err)
	assert.True(t, k.Equal(got))

	der, err := x509.MarshalPKCS8PrivateKey(k)
	require.NoError(t, err)
	got, err = signer.LoadPrivateKeyPEM(writePEM(t, "PRIVATE KEY", der))
	require.NoError(t, err)
	assert.True(t, k.Equal(got))
}

func TestLoadPublicKeyPEM(t *testing.T) {
	k := newKey(t)

	der, err := x509.MarshalPKIXPublicKey(&k.PublicKey)
	require.NoError(t, err)
	got, err := signer.LoadPublicKeyPEM(writePEM(t, "PUBLIC KEY", der))
	require.NoError(t, err)
	assert.True(t, k.PublicKey.Equal(got))

	got, err = signer.LoadPublicKeyPEM(writePEM(t, "RSA PUBLIC KEY", x509.MarshalPKCS1PublicKey(&k.PublicKey)))
	require.NoError(t, err)
	assert.True(t, k.PublicKey.Equal(got))
}

func TestParsePEM_Invalido(t *testing.T) {
	_, err := signer.ParsePrivateKeyPEM([]byte("no es pem"))
	assert.ErrorIs(t, err, domain.ErrSignatureKey)
	_, err = signer.ParsePublicKeyPEM([]byte("no es pem"))
	assert.ErrorIs(t, err, domain.ErrSignatureKey)

	_, err = signer.LoadPublicKeyPEM(filepath.Join(t.TempDir(), "no-existe.pem"))
	assert.Error(t, err)
	_, err = signer.LoadFromP12(filepath.Join(t.TempDir(), "no-existe.p12"), "")
	assert.Error(t, err)
}

func TestKeyDigest(t *testing.T) {
	k := newKey(t)
	assert.NotEmpty(t, signer.KeyDigest(&k.PublicKey))
	assert.Equal(t, signer.KeyDigest(&k.PublicKey), signer.KeyDigest(&k.PublicKey))
	assert.Empty(t, signer.KeyDigest(nil))
}
