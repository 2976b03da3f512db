package payment

import (
	"crypto/ecdsa"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

// signedProof builds a valid proof over apiId:nonce with a fresh key.
func signedProof(t *testing.T, apiID uint64, nonce string) (*Proof, *ecdsa.PrivateKey) {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	sig, err := Sign(apiID, nonce, key)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	return &Proof{
		BuyerAddress: crypto.PubkeyToAddress(key.PublicKey).Hex(),
		APIID:        apiID,
		Nonce:        nonce,
		Signature:    sig,
	}, key
}

func TestVerify_ValidProof(t *testing.T) {
	p, _ := signedProof(t, 0, "0xdeadbeefdeadbeefdeadbeefdeadbeef")
	if !Verify(p) {
		t.Error("valid proof rejected")
	}
}

// Verify must be case-insensitive on the buyer address: wallets send
// checksummed hex, the ledger map works in lowercase.
func TestVerify_CaseInsensitiveAddress(t *testing.T) {
	p, _ := signedProof(t, 1, "0xaabb")
	p.BuyerAddress = strings.ToLower(p.BuyerAddress)
	if !Verify(p) {
		t.Error("lowercased buyer address rejected")
	}
	p.BuyerAddress = strings.ToUpper(strings.TrimPrefix(p.BuyerAddress, "0x"))
	p.BuyerAddress = "0x" + p.BuyerAddress
	if !Verify(p) {
		t.Error("uppercased buyer address rejected")
	}
}

func TestVerify_WrongBuyer(t *testing.T) {
	p, _ := signedProof(t, 0, "0x1234")
	other, _ := crypto.GenerateKey()
	p.BuyerAddress = crypto.PubkeyToAddress(other.PublicKey).Hex()
	if Verify(p) {
		t.Error("proof accepted for a buyer who did not sign it")
	}
}

// Signing one challenge must not authorize a different listing or nonce.
func TestVerify_TamperedMessage(t *testing.T) {
	p, _ := signedProof(t, 0, "0x1234")

	tampered := *p
	tampered.APIID = 1
	if Verify(&tampered) {
		t.Error("signature valid for a different apiId")
	}

	tampered = *p
	tampered.Nonce = "0x5678"
	if Verify(&tampered) {
		t.Error("signature valid for a different nonce")
	}
}

func TestVerify_MalformedSignature(t *testing.T) {
	cases := []string{
		"",
		"0x",
		"not-hex",
		"0xdeadbeef", // too short
		"0x" + strings.Repeat("ff", 65),
	}
	for _, sig := range cases {
		p := &Proof{BuyerAddress: "0x1111111111111111111111111111111111111111", APIID: 0, Nonce: "0x00", Signature: sig}
		if Verify(p) {
			t.Errorf("malformed signature %q accepted", sig)
		}
	}
}

// V in {0,1} (raw ecdsa output, no +27) must also verify.
func TestVerify_RawRecoveryID(t *testing.T) {
	key, _ := crypto.GenerateKey()
	nonce := "0xabcd"
	sig, err := crypto.Sign(HashMessage(Message(3, nonce)), key)
	if err != nil {
		t.Fatal(err)
	}
	p := &Proof{
		BuyerAddress: crypto.PubkeyToAddress(key.PublicKey).Hex(),
		APIID:        3,
		Nonce:        nonce,
		Signature:    "0x" + hex.EncodeToString(sig),
	}
	if !Verify(p) {
		t.Error("signature with raw recovery id rejected")
	}
}

func TestDecodeHeader_RoundTrip(t *testing.T) {
	p, _ := signedProof(t, 7, "0xfeed")
	raw, err := EncodeHeader(p)
	if err != nil {
		t.Fatalf("EncodeHeader: %v", err)
	}
	got, err := DecodeHeader(raw)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if got.BuyerAddress != p.BuyerAddress || got.APIID != p.APIID || got.Nonce != p.Nonce || got.Signature != p.Signature {
		t.Errorf("round trip mismatch: %+v != %+v", got, p)
	}
}

func TestDecodeHeader_Malformed(t *testing.T) {
	if _, err := DecodeHeader("%%%not-base64%%%"); err == nil {
		t.Error("expected error for invalid base64")
	}
	bad := base64.StdEncoding.EncodeToString([]byte("{not json"))
	if _, err := DecodeHeader(bad); err == nil {
		t.Error("expected error for invalid JSON")
	}
	empty := base64.StdEncoding.EncodeToString([]byte("{}"))
	if _, err := DecodeHeader(empty); err == nil {
		t.Error("expected error for missing fields")
	}
}

func TestNewChallenge(t *testing.T) {
	c := NewChallenge("0xC0FFEE", "sepolia", 42)
	if c.Scheme != Scheme || c.Version != Version {
		t.Errorf("unexpected scheme/version: %s/%d", c.Scheme, c.Version)
	}
	if c.APIID != 42 || c.Contract != "0xC0FFEE" || c.Network != "sepolia" {
		t.Errorf("challenge fields not carried: %+v", c)
	}
	// 16 bytes → 0x + 32 hex chars
	if len(c.Nonce) != 34 || !strings.HasPrefix(c.Nonce, "0x") {
		t.Errorf("nonce format: %q", c.Nonce)
	}
	if c.Nonce == NewChallenge("0xC0FFEE", "sepolia", 42).Nonce {
		t.Error("two challenges produced the same nonce")
	}
}
