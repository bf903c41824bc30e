package token

import "github.com/trezor/bchwallet/serialize"

// WrapScriptPubKey prepends serialized token data to a locking script. A nil
// token returns the script unchanged
func WrapScriptPubKey(d *OutputData, script []byte) []byte {
	if d == nil {
		return script
	}
	w := serialize.NewBytesWriter()
	w.WriteUint8(PrefixByte)
	d.Serialize(w)
	w.WriteBytes(script)
	return w.Bytes()
}

// UnwrapScriptPubKey splits optional token data from a scriptPubKey. Absence
// of the PrefixByte sentinel is not an error, the script is returned whole
// with a nil token. A script that begins with the sentinel but does not carry
// well formed token data is also returned whole, it is an ordinary script
// that merely starts with the sentinel byte
func UnwrapScriptPubKey(wrapped []byte) (*OutputData, []byte) {
	if len(wrapped) == 0 || wrapped[0] != PrefixByte {
		return nil, wrapped
	}
	d, n, err := DeserializeBytes(wrapped[1:])
	if err != nil {
		return nil, wrapped
	}
	return d, wrapped[1+n:]
}
