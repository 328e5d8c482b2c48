package sign

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
)

var (
	ErrInvalidPublicKey = errors.New("invalid public key")
	ErrBadSignature     = errors.New("signature verification failed")
)

// Verifier checks base64-encoded RSA-SHA256 signatures produced by the
// payment gateway over raw callback bodies.
type Verifier struct {
	pub *rsa.PublicKey
}

func NewVerifier(pemData []byte) (*Verifier, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, ErrInvalidPublicKey
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPublicKey, err)
	}
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, ErrInvalidPublicKey
	}

	return &Verifier{pub: pub}, nil
}

func (v *Verifier) Verify(body []byte, signatureB64 string) error {
	signature, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBadSignature, "signature is not valid base64")
	}

	digest := sha256.Sum256(body)
	if err := rsa.VerifyPKCS1v15(v.pub, crypto.SHA256, digest[:], signature); err != nil {
		return ErrBadSignature
	}
	return nil
}
