package token

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/trezor/bchwallet/serialize"
)

func hexToBytes(h string) []byte {
	b, _ := hex.DecodeString(h)
	return b
}

func TestDeserialize(t *testing.T) {
	tests := []struct {
		name       string
		hex        string
		category   string
		bitfield   uint8
		amount     uint64
		commitment string
		wantErr    bool
	}{
		{
			name:     "amount-only",
			hex:      strings.Repeat("aa", 32) + "1001",
			category: strings.Repeat("aa", 32),
			bitfield: 0x10,
			amount:   1,
		},
		{
			name:     "amount-three-byte",
			hex:      strings.Repeat("bb", 32) + "10fdffff",
			category: strings.Repeat("bb", 32),
			bitfield: 0x10,
			amount:   0xffff,
		},
		{
			name:     "max-amount",
			hex:      strings.Repeat("aa", 32) + "10ffffffffffffffff7f",
			category: strings.Repeat("aa", 32),
			bitfield: 0x10,
			amount:   MaxAmount,
		},
		{
			name:     "nft-only",
			hex:      strings.Repeat("cc", 32) + "20",
			category: strings.Repeat("cc", 32),
			bitfield: 0x20,
		},
		{
			name:     "mutable-nft",
			hex:      strings.Repeat("cc", 32) + "21",
			category: strings.Repeat("cc", 32),
			bitfield: 0x21,
		},
		{
			name:       "minting-nft-with-commitment-and-amount",
			hex:        strings.Repeat("bb", 32) + "7201ccfdffff",
			category:   strings.Repeat("bb", 32),
			bitfield:   0x72,
			amount:     0xffff,
			commitment: "cc",
		},
		{
			name:       "nft-with-commitment",
			hex:        strings.Repeat("dd", 32) + "6002f00d",
			category:   strings.Repeat("dd", 32),
			bitfield:   0x60,
			commitment: "f00d",
		},
		{name: "truncated-id", hex: strings.Repeat("aa", 30), wantErr: true},
		{name: "missing-bitfield", hex: strings.Repeat("aa", 32), wantErr: true},
		{name: "no-token-encoded", hex: strings.Repeat("aa", 32) + "00", wantErr: true},
		{name: "reserved-bit", hex: strings.Repeat("aa", 32) + "9001", wantErr: true},
		{name: "commitment-without-nft", hex: strings.Repeat("aa", 32) + "4001cc", wantErr: true},
		{name: "commitment-and-amount-without-nft", hex: strings.Repeat("aa", 32) + "5001cc01", wantErr: true},
		{name: "capability-without-nft", hex: strings.Repeat("aa", 32) + "1101", wantErr: true},
		{name: "capability-too-large", hex: strings.Repeat("aa", 32) + "23", wantErr: true},
		{name: "empty-commitment", hex: strings.Repeat("aa", 32) + "6000", wantErr: true},
		{name: "truncated-commitment", hex: strings.Repeat("aa", 32) + "6004cc", wantErr: true},
		{name: "zero-amount", hex: strings.Repeat("aa", 32) + "1000", wantErr: true},
		{name: "amount-too-large", hex: strings.Repeat("aa", 32) + "10ff0000000000000080", wantErr: true},
		{name: "non-minimal-amount", hex: strings.Repeat("aa", 32) + "10fd0100", wantErr: true},
		{name: "non-minimal-commitment-length", hex: strings.Repeat("aa", 32) + "60fd0100cc", wantErr: true},
		{name: "missing-amount", hex: strings.Repeat("aa", 32) + "10", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := DeserializeBytes(hexToBytes(tt.hex))
			if (err != nil) != tt.wantErr {
				t.Errorf("DeserializeBytes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				if !serialize.IsSerializationError(err) {
					t.Errorf("DeserializeBytes() error %v is not a SerializationError", err)
				}
				return
			}
			if got.Bitfield != tt.bitfield {
				t.Errorf("Bitfield = %#02x, want %#02x", got.Bitfield, tt.bitfield)
			}
			if got.Amount != tt.amount {
				t.Errorf("Amount = %d, want %d", got.Amount, tt.amount)
			}
			if hex.EncodeToString(got.Commitment) != tt.commitment {
				t.Errorf("Commitment = %x, want %s", got.Commitment, tt.commitment)
			}
			if hex.EncodeToString(got.Category[:]) != tt.category {
				t.Errorf("Category bytes = %x, want %s", got.Category[:], tt.category)
			}

			// serialization must reproduce the input byte for byte
			if reencoded := hex.EncodeToString(got.SerializeBytes()); reencoded != tt.hex {
				t.Errorf("SerializeBytes() = %s, want %s", reencoded, tt.hex)
			}
		})
	}
}

// the category id is stored in serialized order, its display hex is reversed
func TestCategoryID(t *testing.T) {
	raw := strings.Repeat("00", 31) + "ff"
	d, _, err := DeserializeBytes(hexToBytes(raw + "1001"))
	if err != nil {
		t.Fatalf("DeserializeBytes: %v", err)
	}
	want := "ff" + strings.Repeat("00", 31)
	if d.CategoryID() != want {
		t.Errorf("CategoryID() = %s, want %s", d.CategoryID(), want)
	}
}

func TestBitfieldAccessors(t *testing.T) {
	tests := []struct {
		name      string
		bitfield  uint8
		amount    bool
		nft       bool
		minting   bool
		mutable   bool
		immutable bool
	}{
		{name: "amount-only", bitfield: 0x10, amount: true},
		{name: "immutable-nft", bitfield: 0x20, nft: true, immutable: true},
		{name: "mutable-nft", bitfield: 0x21, nft: true, mutable: true},
		{name: "minting-nft", bitfield: 0x22, nft: true, minting: true},
		{name: "minting-nft-with-everything", bitfield: 0x72, amount: true, nft: true, minting: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &OutputData{Bitfield: tt.bitfield}
			if d.HasAmount() != tt.amount {
				t.Errorf("HasAmount() = %v, want %v", d.HasAmount(), tt.amount)
			}
			if d.HasNFT() != tt.nft {
				t.Errorf("HasNFT() = %v, want %v", d.HasNFT(), tt.nft)
			}
			if d.IsMintingNFT() != tt.minting {
				t.Errorf("IsMintingNFT() = %v, want %v", d.IsMintingNFT(), tt.minting)
			}
			if d.IsMutableNFT() != tt.mutable {
				t.Errorf("IsMutableNFT() = %v, want %v", d.IsMutableNFT(), tt.mutable)
			}
			if d.IsImmutableNFT() != tt.immutable {
				t.Errorf("IsImmutableNFT() = %v, want %v", d.IsImmutableNFT(), tt.immutable)
			}
		})
	}
}

func TestCapabilityLabels(t *testing.T) {
	for _, c := range []uint8{CapabilityNone, CapabilityMutable, CapabilityMinting} {
		if got := ToCapabilityType(ToCapabilityLabel(c)); got != c {
			t.Errorf("capability label round trip of %d = %d", c, got)
		}
	}
}

func TestEqualAndKey(t *testing.T) {
	a, _, err := DeserializeBytes(hexToBytes(strings.Repeat("bb", 32) + "7201ccfdffff"))
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := DeserializeBytes(hexToBytes(strings.Repeat("bb", 32) + "7201ccfdffff"))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) || a.Key() != b.Key() {
		t.Error("identical token data does not compare equal")
	}

	c := New(a.Category, a.Bitfield, a.Amount+1, a.Commitment)
	if a.Equal(c) || a.Key() == c.Key() {
		t.Error("different token data compares equal")
	}

	seen := map[string]*OutputData{a.Key(): a}
	if seen[b.Key()] != a {
		t.Error("Key() does not work as a map key")
	}
}

func TestSerializeRoundTripExhaustiveBitfields(t *testing.T) {
	var category [32]byte
	for i := range category {
		category[i] = byte(i)
	}
	for bitfield := 0; bitfield < 256; bitfield++ {
		d := &OutputData{
			Category: category,
			Bitfield: uint8(bitfield),
			Amount:   12345,
		}
		if d.HasCommitmentLength() {
			d.Commitment = []byte{0xca, 0xfe}
		}
		buf := d.SerializeBytes()
		got, n, err := DeserializeBytes(buf)
		valid := validateBitfield(uint8(bitfield)) == nil
		if valid != (err == nil) {
			t.Errorf("bitfield %#02x: valid=%v but err=%v", bitfield, valid, err)
			continue
		}
		if err != nil {
			continue
		}
		if n != len(buf) {
			t.Errorf("bitfield %#02x: consumed %d of %d bytes", bitfield, n, len(buf))
		}
		if !bytes.Equal(got.SerializeBytes(), buf) {
			t.Errorf("bitfield %#02x: round trip mismatch", bitfield)
		}
	}
}
