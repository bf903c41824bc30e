package address

import "github.com/martinboehm/btcutil/txscript"

// Script returns the locking script paying to the address. P2PKH uses the
// 25 byte template, P2SH the 23 byte template and P2SH32 the 35 byte
// OP_HASH256 template
func (a *Address) Script() []byte {
	if a.kind == P2PKH {
		script := make([]byte, 0, 25)
		script = append(script, txscript.OP_DUP, txscript.OP_HASH160, txscript.OP_DATA_20)
		script = append(script, a.hash...)
		return append(script, txscript.OP_EQUALVERIFY, txscript.OP_CHECKSIG)
	}
	if len(a.hash) == 32 {
		script := make([]byte, 0, 35)
		script = append(script, txscript.OP_HASH256, txscript.OP_DATA_32)
		script = append(script, a.hash...)
		return append(script, txscript.OP_EQUAL)
	}
	script := make([]byte, 0, 23)
	script = append(script, txscript.OP_HASH160, txscript.OP_DATA_20)
	script = append(script, a.hash...)
	return append(script, txscript.OP_EQUAL)
}

// FromScript extracts the address from a standard locking script, returning
// nil for non standard scripts
func FromScript(script []byte) *Address {
	switch {
	case len(script) == 25 &&
		script[0] == txscript.OP_DUP &&
		script[1] == txscript.OP_HASH160 &&
		script[2] == txscript.OP_DATA_20 &&
		script[23] == txscript.OP_EQUALVERIFY &&
		script[24] == txscript.OP_CHECKSIG:
		a, _ := New(script[3:23], P2PKH)
		return a
	case len(script) == 23 &&
		script[0] == txscript.OP_HASH160 &&
		script[1] == txscript.OP_DATA_20 &&
		script[22] == txscript.OP_EQUAL:
		a, _ := New(script[2:22], P2SH)
		return a
	case len(script) == 35 &&
		script[0] == txscript.OP_HASH256 &&
		script[1] == txscript.OP_DATA_32 &&
		script[34] == txscript.OP_EQUAL:
		a, _ := New(script[2:34], P2SH)
		return a
	}
	return nil
}
