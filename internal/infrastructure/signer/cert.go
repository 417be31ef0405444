// Carga de claves RSA desde .p12 (PKCS#12) o PEM.

package signer

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"

	"golang.org/x/crypto/pkcs12"

	"github.com/jhoicas/saftpt-validator/internal/domain"
)

// LoadFromP12 carga certificado y llave privada desde un archivo .p12/.pfx.
// El password puede ser vacío si el archivo no está protegido.
func LoadFromP12(path, password string) (tls.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("leer p12: %w", err)
	}
	priv, cert, err := pkcs12.Decode(data, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("decodificar p12: %w", err)
	}
	return tls.Certificate{
		Certificate: [][]byte{cert.Raw},
		PrivateKey:  priv,
		Leaf:        cert,
	}, nil
}

// LoadPrivateKeyPEM lee una llave privada RSA (PKCS#1 o PKCS#8) desde un archivo PEM.
func LoadPrivateKeyPEM(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer llave privada: %w", err)
	}
	return ParsePrivateKeyPEM(data)
}

// LoadPublicKeyPEM lee una llave pública RSA desde un archivo PEM. Acepta "PUBLIC KEY",
// "RSA PUBLIC KEY" y "CERTIFICATE".
func LoadPublicKeyPEM(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer llave pública: %w", err)
	}
	return ParsePublicKeyPEM(data)
}

// ParsePrivateKeyPEM decodifica el primer bloque PEM como llave privada RSA.
func ParsePrivateKeyPEM(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: PEM sin bloques", domain.ErrSignatureKey)
	}
	if k, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return k, nil
	}
	k, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: llave privada: %v", domain.ErrSignatureKey, err)
	}
	rk, ok := k.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: la llave privada no es RSA", domain.ErrSignatureKey)
	}
	return rk, nil
}

// ParsePublicKeyPEM decodifica el primer bloque PEM como llave pública RSA.
func ParsePublicKeyPEM(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: PEM sin bloques", domain.ErrSignatureKey)
	}
	switch block.Type {
	case "RSA PUBLIC KEY":
		k, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: llave pública: %v", domain.ErrSignatureKey, err)
		}
		return k, nil
	case "CERTIFICATE":
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: certificado: %v", domain.ErrSignatureKey, err)
		}
		rk, ok := cert.PublicKey.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: el certificado no tiene llave RSA", domain.ErrSignatureKey)
		}
		return rk, nil
	}
	k, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: llave pública: %v", domain.ErrSignatureKey, err)
	}
	rk, ok := k.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: la llave pública no es RSA", domain.ErrSignatureKey)
	}
	return rk, nil
}

// KeyDigest devuelve el SHA-256 (Base64) de la llave pública en DER, para identificar en los
// informes con qué llave se verificó la cadena.
func KeyDigest(pub *rsa.PublicKey) string {
	if pub == nil {
		return ""
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return ""
	}
	h := sha256.Sum256(der)
	return base64.StdEncoding.EncodeToString(h[:])
}
