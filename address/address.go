// Package address implements the Bitcoin Cash address value object and its
// string renderings, legacy Base58Check, cashaddr and token aware cashaddr.
package address

import (
	"bytes"
	"encoding/hex"
	"sync"

	"github.com/juju/errors"
	"github.com/martinboehm/btcd/chaincfg/chainhash"
	"github.com/martinboehm/btcutil"

	"github.com/trezor/bchwallet/base58"
	"github.com/trezor/bchwallet/cashaddr"
	"github.com/trezor/bchwallet/netparams"
)

// Kind is the script class of an address
type Kind uint8

const (
	// P2PKH pays to a 20 byte public key hash
	P2PKH Kind = iota
	// P2SH pays to a 20 byte or, for P2SH32, 32 byte script hash
	P2SH
)

// Format selects one of the supported address renderings
type Format int

const (
	// FormatCashAddr is the bare cashaddr payload without network prefix
	FormatCashAddr Format = iota
	// FormatLegacy is the Base58Check rendering
	FormatLegacy
	// FormatToken is the token aware cashaddr rendering
	FormatToken
	// FormatFull is the cashaddr rendering with the network prefix
	FormatFull

	numFormats
)

// AddressError is returned when an address string cannot be parsed or an
// address invariant is violated. For parse failures it carries the reasons of
// both the cashaddr and the Base58Check attempt
type AddressError struct {
	msg         string
	cashAddrErr error
	base58Err   error
}

func (e *AddressError) Error() string {
	s := e.msg
	if e.cashAddrErr != nil {
		s += "; cashaddr: " + e.cashAddrErr.Error()
	}
	if e.base58Err != nil {
		s += "; base58: " + e.base58Err.Error()
	}
	return s
}

// CashAddrErr returns the failure of the cashaddr decode attempt, if any
func (e *AddressError) CashAddrErr() error { return e.cashAddrErr }

// Base58Err returns the failure of the Base58Check decode attempt, if any
func (e *AddressError) Base58Err() error { return e.base58Err }

func addressErrorf(format string, args ...interface{}) *AddressError {
	return &AddressError{msg: errors.Errorf(format, args...).Error()}
}

// Address is an immutable (hash, kind) pair. Equality and map identity are
// derived from the hash and kind only, the format cache is ephemeral
type Address struct {
	hash []byte
	kind Kind

	mu     sync.Mutex
	cached [numFormats]*cachedString
}

type cachedString struct {
	params *netparams.Params
	s      string
}

// New returns an Address for the given hash and kind. P2PKH requires a
// 20 byte hash, P2SH accepts 20 or 32 bytes
func New(hash []byte, kind Kind) (*Address, error) {
	switch kind {
	case P2PKH:
		if len(hash) != 20 {
			return nil, addressErrorf("P2PKH requires a 20 byte hash, got %d", len(hash))
		}
	case P2SH:
		if len(hash) != 20 && len(hash) != 32 {
			return nil, addressErrorf("P2SH requires a 20 or 32 byte hash, got %d", len(hash))
		}
	default:
		return nil, addressErrorf("unknown address kind %d", kind)
	}
	h := make([]byte, len(hash))
	copy(h, hash)
	return &Address{hash: h, kind: kind}, nil
}

// FromPubKey returns the P2PKH address of a serialized public key
func FromPubKey(pubKey []byte) *Address {
	a, _ := New(btcutil.Hash160(pubKey), P2PKH)
	return a
}

// FromP2PKHHash returns the P2PKH address of a public key hash
func FromP2PKHHash(hash []byte) (*Address, error) {
	return New(hash, P2PKH)
}

// FromP2SHHash returns the P2SH address of a script hash
func FromP2SHHash(hash []byte) (*Address, error) {
	return New(hash, P2SH)
}

// FromP2SHScript returns the P2SH address of a redeem script, hashing it with
// hash160
func FromP2SHScript(script []byte) *Address {
	a, _ := New(btcutil.Hash160(script), P2SH)
	return a
}

// FromP2SH32Script returns the P2SH32 address of a redeem script, hashing it
// with double SHA256
func FromP2SH32Script(script []byte) *Address {
	a, _ := New(chainhash.DoubleHashB(script), P2SH)
	return a
}

// FromString parses an address in any supported encoding. The cashaddr forms
// are tried first, token aware type tags included, then legacy Base58Check.
// On total failure the returned AddressError carries both decode failures
func FromString(addr string, params *netparams.Params) (*Address, error) {
	a, cashAddrErr := fromCashAddr(addr, params)
	if cashAddrErr == nil {
		return a, nil
	}
	a, base58Err := fromLegacy(addr, params)
	if base58Err == nil {
		return a, nil
	}
	return nil, &AddressError{
		msg:         "invalid address " + addr,
		cashAddrErr: cashAddrErr,
		base58Err:   base58Err,
	}
}

func fromCashAddr(addr string, params *netparams.Params) (*Address, error) {
	prefix, typeTag, hash, err := cashaddr.Decode(addr, params.CashAddrPrefix)
	if err != nil {
		return nil, err
	}
	if prefix != params.CashAddrPrefix {
		return nil, errors.Errorf("address prefix %q does not match network %q", prefix, params.CashAddrPrefix)
	}
	switch typeTag {
	case cashaddr.P2PKH, cashaddr.TokenP2PKH:
		return New(hash, P2PKH)
	case cashaddr.P2SH, cashaddr.TokenP2SH:
		return New(hash, P2SH)
	}
	return nil, errors.Errorf("unsupported cashaddr type tag %d", typeTag)
}

func fromLegacy(addr string, params *netparams.Params) (*Address, error) {
	payload, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, errors.New("empty base58 payload")
	}
	version, hash := payload[0], payload[1:]
	switch version {
	case params.PubKeyHashAddrID:
		return New(hash, P2PKH)
	case params.ScriptHashAddrID:
		return New(hash, P2SH)
	}
	return nil, errors.Errorf("unknown address version byte %#02x", version)
}

// Hash returns a copy of the address hash
func (a *Address) Hash() []byte {
	h := make([]byte, len(a.hash))
	copy(h, a.hash)
	return h
}

// Kind returns the script class of the address
func (a *Address) Kind() Kind {
	return a.kind
}

// Equal reports whether two addresses have the same hash and kind
func (a *Address) Equal(b *Address) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.kind == b.kind && bytes.Equal(a.hash, b.hash)
}

// Key returns a comparable identity usable as a map key
func (a *Address) Key() string {
	return string(append([]byte{byte(a.kind)}, a.hash...))
}

// String renders the address in the requested format. Results are memoized
// per format as long as the same params value is used, the common case of a
// single configured network
func (a *Address) String(format Format, params *netparams.Params) (string, error) {
	if format < 0 || format >= numFormats {
		return "", addressErrorf("unknown address format %d", format)
	}

	a.mu.Lock()
	c := a.cached[format]
	a.mu.Unlock()
	if c != nil && c.params == params {
		return c.s, nil
	}

	s, err := a.render(format, params)
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	a.cached[format] = &cachedString{params: params, s: s}
	a.mu.Unlock()
	return s, nil
}

func (a *Address) render(format Format, params *netparams.Params) (string, error) {
	switch format {
	case FormatCashAddr:
		return cashaddr.Encode(params.CashAddrPrefix, a.cashAddrTypeTag(false), a.hash)
	case FormatToken:
		return cashaddr.Encode(params.CashAddrPrefix, a.cashAddrTypeTag(true), a.hash)
	case FormatFull:
		return cashaddr.EncodeFull(params.CashAddrPrefix, a.cashAddrTypeTag(false), a.hash)
	case FormatLegacy:
		version := params.PubKeyHashAddrID
		if a.kind == P2SH {
			version = params.ScriptHashAddrID
		}
		payload := make([]byte, 0, len(a.hash)+1)
		payload = append(payload, version)
		payload = append(payload, a.hash...)
		return base58.CheckEncode(payload), nil
	}
	return "", addressErrorf("unknown address format %d", format)
}

func (a *Address) cashAddrTypeTag(tokenAware bool) uint8 {
	switch {
	case a.kind == P2PKH && !tokenAware:
		return cashaddr.P2PKH
	case a.kind == P2PKH:
		return cashaddr.TokenP2PKH
	case !tokenAware:
		return cashaddr.P2SH
	default:
		return cashaddr.TokenP2SH
	}
}

// CashAddr returns the bare cashaddr rendering
func (a *Address) CashAddr(params *netparams.Params) string {
	s, _ := a.String(FormatCashAddr, params)
	return s
}

// TokenAddr returns the token aware cashaddr rendering
func (a *Address) TokenAddr(params *netparams.Params) string {
	s, _ := a.String(FormatToken, params)
	return s
}

// Legacy returns the Base58Check rendering
func (a *Address) Legacy(params *netparams.Params) string {
	s, _ := a.String(FormatLegacy, params)
	return s
}

// Full returns the prefix qualified cashaddr rendering
func (a *Address) Full(params *netparams.Params) string {
	s, _ := a.String(FormatFull, params)
	return s
}

// HashHex returns the address hash as hex
func (a *Address) HashHex() string {
	return hex.EncodeToString(a.hash)
}
