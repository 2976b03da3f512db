package payment

import (
	"crypto/rand"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// Scheme identifies the payment scheme in 402 challenge payloads.
	Scheme = "fhe-402"
	// Version is the current challenge payload version.
	Version = 1
)

// Challenge is the JSON body of a 402 Payment Required response. It carries
// everything a buyer needs to construct a proof: which contract and network
// to pay on, which listing, and a fresh nonce to sign.
type Challenge struct {
	Scheme   string `json:"scheme"`
	Version  int    `json:"version"`
	Contract string `json:"contract"`
	Network  string `json:"network"`
	APIID    uint64 `json:"apiId"`
	Nonce    string `json:"nonce"`
}

// NewChallenge mints a challenge with a fresh random nonce. Challenges are
// stateless: the gateway does not record them, and the signature check alone
// binds a proof to the nonce.
func NewChallenge(contract, network string, apiID uint64) Challenge {
	return Challenge{
		Scheme:   Scheme,
		Version:  Version,
		Contract: contract,
		Network:  network,
		APIID:    apiID,
		Nonce:    NewNonce(),
	}
}

// NewNonce returns a 0x-prefixed hex encoding of 16 random bytes.
func NewNonce() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// there is no useful recovery at this level.
		panic(err)
	}
	return hexutil.Encode(buf)
}
