package payment

import (
	"crypto/ecdsa"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// Proof is the decoded X-Payment header: the buyer's signed assertion that
// it intends to pay for one call against a listing.
type Proof struct {
	BuyerAddress string `json:"buyerAddress"`
	APIID        uint64 `json:"apiId"`
	Nonce        string `json:"nonce"`
	Signature    string `json:"signature"`
}

// DecodeHeader parses the base64(JSON) wire form of a payment proof.
func DecodeHeader(raw string) (*Proof, error) {
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode payment header: %w", err)
	}
	var p Proof
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse payment header: %w", err)
	}
	if p.BuyerAddress == "" || p.Nonce == "" || p.Signature == "" {
		return nil, fmt.Errorf("payment header missing fields")
	}
	return &p, nil
}

// Message builds the canonical signed string for a challenge.
func Message(apiID uint64, nonce string) []byte {
	return []byte(fmt.Sprintf("%d:%s", apiID, nonce))
}

// HashMessage constructs the EIP-191 prefixed hash:
// keccak256("\x19Ethereum Signed Message:\n" + len(msg) + msg)
func HashMessage(msg []byte) []byte {
	prefix := fmt.Sprintf("\x19Ethereum Signed Message:\n%d", len(msg))
	return crypto.Keccak256([]byte(prefix), msg)
}

// Verify reports whether the proof's signature over the canonical message
// recovers the claimed buyer address. Malformed signatures and recovery
// failures yield false.
func Verify(p *Proof) bool {
	sigHex := strings.TrimPrefix(p.Signature, "0x")
	sig, err := hex.DecodeString(sigHex)
	if err != nil || len(sig) != 65 {
		return false
	}

	// Normalize V: wallets emit 27/28, ecrecover expects 0/1.
	normalized := make([]byte, 65)
	copy(normalized, sig)
	if normalized[64] >= 27 {
		normalized[64] -= 27
	}

	pub, err := crypto.SigToPub(HashMessage(Message(p.APIID, p.Nonce)), normalized)
	if err != nil {
		return false
	}
	recovered := crypto.PubkeyToAddress(*pub)
	return strings.EqualFold(recovered.Hex(), p.BuyerAddress)
}

// Sign produces a 0x-prefixed EIP-191 signature over the canonical message.
// Used by the payheader tool and tests; the gateway itself never signs proofs.
func Sign(apiID uint64, nonce string, key *ecdsa.PrivateKey) (string, error) {
	sig, err := crypto.Sign(HashMessage(Message(apiID, nonce)), key)
	if err != nil {
		return "", fmt.Errorf("sign payment message: %w", err)
	}
	sig[64] += 27
	return "0x" + hex.EncodeToString(sig), nil
}

// EncodeHeader produces the base64(JSON) wire form carried in X-Payment.
func EncodeHeader(p *Proof) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode payment header: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
