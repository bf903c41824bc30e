package netparams

// Params defines the address format constants of a Bitcoin Cash network.
// A pointer to Params is passed explicitly to every encode/decode call that
// needs it; there is no process wide active network.
type Params struct {
	// Name is the human readable network name
	Name string
	// CashAddrPrefix is the cashaddr human readable prefix, without the colon
	CashAddrPrefix string
	// PubKeyHashAddrID is the Base58Check version byte of P2PKH addresses
	PubKeyHashAddrID byte
	// ScriptHashAddrID is the Base58Check version byte of P2SH addresses
	ScriptHashAddrID byte
	// PrivateKeyID is the Base58Check version byte of WIF private keys
	PrivateKeyID byte
}

var (
	// MainNetParams are the parameters of the main Bitcoin Cash network
	MainNetParams = Params{
		Name:             "main",
		CashAddrPrefix:   "bitcoincash",
		PubKeyHashAddrID: 0x00,
		ScriptHashAddrID: 0x05,
		PrivateKeyID:     0x80,
	}
	// TestNetParams are the parameters of the test Bitcoin Cash network
	TestNetParams = Params{
		Name:             "test",
		CashAddrPrefix:   "bchtest",
		PubKeyHashAddrID: 0x6f,
		ScriptHashAddrID: 0xc4,
		PrivateKeyID:     0xef,
	}
	// RegtestParams are the parameters of the regression test Bitcoin Cash network
	RegtestParams = Params{
		Name:             "regtest",
		CashAddrPrefix:   "bchreg",
		PubKeyHashAddrID: 0x6f,
		ScriptHashAddrID: 0xc4,
		PrivateKeyID:     0xef,
	}
)

// GetChainParams returns network parameters for the main Bitcoin Cash
// network, the test network and the regression test network, in this order
func GetChainParams(chain string) *Params {
	switch chain {
	case "test":
		return &TestNetParams
	case "regtest":
		return &RegtestParams
	default:
		return &MainNetParams
	}
}
