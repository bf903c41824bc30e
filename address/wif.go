package address

import (
	"github.com/juju/errors"

	"github.com/trezor/bchwallet/base58"
	"github.com/trezor/bchwallet/netparams"
)

// privKeyLen is the length of a raw secp256k1 private key
const privKeyLen = 32

// compressedFlag marks a WIF key whose public key is serialized compressed
const compressedFlag = 0x01

// EncodeWIF encodes a raw private key in wallet import format
func EncodeWIF(privKey []byte, compressed bool, params *netparams.Params) (string, error) {
	if len(privKey) != privKeyLen {
		return "", errors.Errorf("private key must be %d bytes, got %d", privKeyLen, len(privKey))
	}
	payload := make([]byte, 0, privKeyLen+2)
	payload = append(payload, params.PrivateKeyID)
	payload = append(payload, privKey...)
	if compressed {
		payload = append(payload, compressedFlag)
	}
	return base58.CheckEncode(payload), nil
}

// DecodeWIF decodes a wallet import format string into the raw private key
// and its compressed public key flag
func DecodeWIF(wif string, params *netparams.Params) ([]byte, bool, error) {
	payload, err := base58.CheckDecode(wif)
	if err != nil {
		return nil, false, err
	}
	if len(payload) == 0 || payload[0] != params.PrivateKeyID {
		return nil, false, errors.Errorf("not a %s network private key", params.Name)
	}
	payload = payload[1:]
	switch len(payload) {
	case privKeyLen:
		return payload, false, nil
	case privKeyLen + 1:
		if payload[privKeyLen] != compressedFlag {
			return nil, false, errors.Errorf("invalid WIF suffix byte %#02x", payload[privKeyLen])
		}
		return payload[:privKeyLen], true, nil
	}
	return nil, false, errors.Errorf("invalid WIF payload length %d", len(payload))
}
