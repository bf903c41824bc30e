// Package token implements the CashTokens output prefix encoding, see
// https://github.com/bitjson/cashtokens/blob/master/readme.md#token-encoding
package token

import (
	"github.com/martinboehm/btcd/chaincfg/chainhash"

	"github.com/trezor/bchwallet/serialize"
)

// PrefixByte is the scriptPubKey sentinel introducing serialized token data.
// It is not itself part of the serialized token
const PrefixByte = 0xef

// Structure bits of the token bitfield. The high bit is reserved and must be
// zero
const (
	StructureHasAmount           uint8 = 0x10
	StructureHasNFT              uint8 = 0x20
	StructureHasCommitmentLength uint8 = 0x40
	structureReserved            uint8 = 0x80

	structureMask  uint8 = 0xf0
	capabilityMask uint8 = 0x0f
)

// NFT capability values, stored in the low nibble of the bitfield
const (
	CapabilityNone    uint8 = 0
	CapabilityMutable uint8 = 1
	CapabilityMinting uint8 = 2
)

// MaxAmount is the largest representable fungible token amount
const MaxAmount uint64 = 9223372036854775807

// CapabilityLabel is the human readable name of an NFT capability
type CapabilityLabel string

const (
	CapabilityLabelNone    CapabilityLabel = "none"
	CapabilityLabelMutable CapabilityLabel = "mutable"
	CapabilityLabelMinting CapabilityLabel = "minting"
)

// ToCapabilityLabel maps a capability value to its label
func ToCapabilityLabel(c uint8) CapabilityLabel {
	switch c {
	case CapabilityMutable:
		return CapabilityLabelMutable
	case CapabilityMinting:
		return CapabilityLabelMinting
	default:
		return CapabilityLabelNone
	}
}

// ToCapabilityType maps a capability label to its value
func ToCapabilityType(l CapabilityLabel) uint8 {
	switch l {
	case CapabilityLabelMutable:
		return CapabilityMutable
	case CapabilityLabelMinting:
		return CapabilityMinting
	default:
		return CapabilityNone
	}
}

// OutputData is the token data attached to a transaction output. Category is
// stored in serialized order, reversed relative to the display hex of the
// category id, the convention chainhash.Hash implements.
//
// Invariants are enforced at deserialize time only, the fields of a freshly
// constructed OutputData are the caller's responsibility
type OutputData struct {
	Category   chainhash.Hash
	Bitfield   uint8
	Amount     uint64
	Commitment []byte
}

// New returns OutputData with the given fields
func New(category chainhash.Hash, bitfield uint8, amount uint64, commitment []byte) *OutputData {
	return &OutputData{
		Category:   category,
		Bitfield:   bitfield,
		Amount:     amount,
		Commitment: commitment,
	}
}

// CategoryID returns the display hex of the category id
func (d *OutputData) CategoryID() string {
	return d.Category.String()
}

// HasAmount reports whether the output carries a fungible amount
func (d *OutputData) HasAmount() bool {
	return d.Bitfield&StructureHasAmount != 0
}

// HasNFT reports whether the output carries a non fungible token
func (d *OutputData) HasNFT() bool {
	return d.Bitfield&StructureHasNFT != 0
}

// HasCommitmentLength reports whether a commitment is serialized
func (d *OutputData) HasCommitmentLength() bool {
	return d.Bitfield&StructureHasCommitmentLength != 0
}

// Capability returns the NFT capability nibble
func (d *OutputData) Capability() uint8 {
	return d.Bitfield & capabilityMask
}

// IsMintingNFT reports an NFT with the minting capability
func (d *OutputData) IsMintingNFT() bool {
	return d.HasNFT() && d.Capability() == CapabilityMinting
}

// IsMutableNFT reports an NFT with the mutable capability
func (d *OutputData) IsMutableNFT() bool {
	return d.HasNFT() && d.Capability() == CapabilityMutable
}

// IsImmutableNFT reports an NFT without a capability
func (d *OutputData) IsImmutableNFT() bool {
	return d.HasNFT() && d.Capability() == CapabilityNone
}

// Equal reports whether two OutputData encode the same token data
func (d *OutputData) Equal(o *OutputData) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.Key() == o.Key()
}

// Key returns a comparable identity usable as a map key. It covers all
// fields, two OutputData with equal keys serialize identically
func (d *OutputData) Key() string {
	w := serialize.NewBytesWriter()
	w.WriteBytes(d.Category[:])
	w.WriteUint8(d.Bitfield)
	w.WriteUint64(d.Amount)
	w.WriteVarBytes(d.Commitment)
	return string(w.Bytes())
}

// Serialize writes the token data in wire order, without the PrefixByte
// sentinel
func (d *OutputData) Serialize(w *serialize.BytesWriter) {
	w.WriteBytes(d.Category[:])
	w.WriteUint8(d.Bitfield)
	if d.HasCommitmentLength() {
		w.WriteVarBytes(d.Commitment)
	}
	if d.HasAmount() {
		w.WriteCompactSize(d.Amount)
	}
}

// SerializeBytes returns the wire encoding of the token data
func (d *OutputData) SerializeBytes() []byte {
	w := serialize.NewBytesWriter()
	d.Serialize(w)
	return w.Bytes()
}

// validateBitfield rejects every structurally invalid bitfield. The reserved
// bit is examined first so that overlapping violations report it
func validateBitfield(bitfield uint8) error {
	structure := bitfield & structureMask
	if structure&structureReserved != 0 {
		return serialize.Errorf("token prefix reserved bit is set, bitfield 0b%08b", bitfield)
	}
	switch structure {
	case StructureHasAmount,
		StructureHasNFT,
		StructureHasNFT | StructureHasAmount,
		StructureHasNFT | StructureHasCommitmentLength,
		StructureHasNFT | StructureHasCommitmentLength | StructureHasAmount:
	case 0:
		return serialize.Errorf("token prefix must encode at least one token, bitfield 0b%08b", bitfield)
	default:
		// the commitment length bit without the NFT bit
		return serialize.Errorf("token prefix commitment requires an NFT, bitfield 0b%08b", bitfield)
	}
	capability := bitfield & capabilityMask
	if capability > CapabilityMinting {
		return serialize.Errorf("token capability must be none (0), mutable (1) or minting (2), capability %d", capability)
	}
	if capability != CapabilityNone && bitfield&StructureHasNFT == 0 {
		return serialize.Errorf("token capability requires an NFT, bitfield 0b%08b", bitfield)
	}
	return nil
}

// Deserialize reads token data in wire order, after the PrefixByte sentinel
// has been consumed, and validates every structural rule. Both CompactSize
// reads are strict, non minimal encodings are rejected
func Deserialize(r *serialize.BytesReader) (*OutputData, error) {
	idBytes, err := r.ReadBytes(chainhash.HashSize, true)
	if err != nil {
		return nil, err
	}
	d := &OutputData{}
	copy(d.Category[:], idBytes)

	d.Bitfield, err = r.ReadByte()
	if err != nil {
		return nil, err
	}
	if err := validateBitfield(d.Bitfield); err != nil {
		return nil, err
	}

	if d.HasCommitmentLength() {
		d.Commitment, err = r.ReadVarBytes(true)
		if err != nil {
			return nil, err
		}
		if len(d.Commitment) == 0 {
			return nil, serialize.Errorf("token commitment length must be greater than 0 when encoded")
		}
	}

	if d.HasAmount() {
		d.Amount, err = r.ReadCompactSize(true)
		if err != nil {
			return nil, err
		}
		if d.Amount == 0 {
			return nil, serialize.Errorf("token amount must be greater than 0 when encoded")
		}
		if d.Amount > MaxAmount {
			return nil, serialize.Errorf("token amount %d exceeds maximum of %d", d.Amount, MaxAmount)
		}
	}

	return d, nil
}

// DeserializeBytes decodes token data from buf and returns the number of
// bytes consumed
func DeserializeBytes(buf []byte) (*OutputData, int, error) {
	r := serialize.NewBytesReader(buf)
	d, err := Deserialize(r)
	if err != nil {
		return nil, 0, err
	}
	return d, r.Cursor(), nil
}
