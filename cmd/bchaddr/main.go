// Command bchaddr converts Bitcoin Cash addresses between their encodings
// and inspects CashTokens data embedded in scriptPubKeys.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/trezor/bchwallet/address"
	"github.com/trezor/bchwallet/netparams"
	"github.com/trezor/bchwallet/token"
)

var (
	chain         = flag.String("chain", "main", "network to use (main, test, regtest)")
	addr          = flag.String("address", "", "address to convert, any supported encoding")
	format        = flag.String("format", "", "output only this format (cashaddr, legacy, token, full)")
	script        = flag.String("script", "", "hex scriptPubKey to inspect for token data")
	tokenDecimals = flag.Int("decimals", 0, "decimal point position for token amount display")
)

var formats = map[string]address.Format{
	"cashaddr": address.FormatCashAddr,
	"legacy":   address.FormatLegacy,
	"token":    address.FormatToken,
	"full":     address.FormatFull,
}

func main() {
	flag.Parse()
	defer glog.Flush()

	params := netparams.GetChainParams(*chain)
	glog.V(1).Infof("using %s network parameters", params.Name)

	switch {
	case *addr != "":
		convertAddress(*addr, params)
	case *script != "":
		inspectScript(*script, params)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func convertAddress(s string, params *netparams.Params) {
	a, err := address.FromString(s, params)
	if err != nil {
		glog.Fatalf("cannot parse address %q: %v", s, err)
	}

	if *format != "" {
		f, ok := formats[*format]
		if !ok {
			glog.Fatalf("unknown format %q", *format)
		}
		out, err := a.String(f, params)
		if err != nil {
			glog.Fatalf("cannot encode address: %v", err)
		}
		fmt.Println(out)
		return
	}

	fmt.Printf("hash      %s\n", a.HashHex())
	fmt.Printf("cashaddr  %s\n", a.CashAddr(params))
	fmt.Printf("legacy    %s\n", a.Legacy(params))
	fmt.Printf("token     %s\n", a.TokenAddr(params))
	fmt.Printf("full      %s\n", a.Full(params))
}

func inspectScript(s string, params *netparams.Params) {
	script, err := hex.DecodeString(s)
	if err != nil {
		glog.Fatalf("invalid script hex: %v", err)
	}

	data, rest := token.UnwrapScriptPubKey(script)
	if data == nil {
		fmt.Println("no token prefix")
	} else {
		fmt.Printf("category    %s\n", data.CategoryID())
		if data.HasAmount() {
			fmt.Printf("amount      %s\n", token.FormatAmount(data.Amount, *tokenDecimals, &token.FormatOptions{AppendRawUnits: *tokenDecimals > 0}))
		}
		if data.HasNFT() {
			fmt.Printf("nft         %s\n", token.ToCapabilityLabel(data.Capability()))
			fmt.Printf("commitment  %s\n", hex.EncodeToString(data.Commitment))
		}
	}

	if a := address.FromScript(rest); a != nil {
		fmt.Printf("address     %s\n", a.Full(params))
	} else {
		fmt.Printf("script      %s\n", hex.EncodeToString(rest))
	}
}
