// cmd/payheader fetches a 402 challenge from a gateway route, signs it with
// the buyer key, and prints the X-Payment header value. Handy for curl:
//
//	BUYER_PRIVATE_KEY=0x<key> go run ./cmd/payheader/ --url http://localhost:8080/api/weather
//	curl -H "X-Payment: $(...)" http://localhost:8080/api/weather
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/fhe402/fhe402-gateway/internal/payment"
)

func main() {
	url := flag.String("url", "", "Gateway route to pay for")
	apiID := flag.Uint64("api-id", 0, "Listing id (skips the challenge fetch when set with --nonce)")
	nonce := flag.String("nonce", "", "Nonce to sign (skips the challenge fetch when set with --api-id)")
	flag.Parse()

	keyHex := strings.TrimPrefix(os.Getenv("BUYER_PRIVATE_KEY"), "0x")
	if keyHex == "" {
		fmt.Fprintln(os.Stderr, "error: BUYER_PRIVATE_KEY not set")
		os.Exit(1)
	}
	privKey, err := crypto.HexToECDSA(keyHex)
	if err != nil {
		fatalf("parse private key: %v", err)
	}

	id, n := *apiID, *nonce
	if n == "" {
		if *url == "" {
			fmt.Fprintln(os.Stderr, "error: --url or (--api-id and --nonce) required")
			os.Exit(1)
		}
		ch, err := fetchChallenge(*url)
		if err != nil {
			fatalf("fetch challenge: %v", err)
		}
		id, n = ch.APIID, ch.Nonce
		fmt.Fprintf(os.Stderr, "challenge: scheme=%s apiId=%d nonce=%s contract=%s network=%s\n",
			ch.Scheme, ch.APIID, ch.Nonce, ch.Contract, ch.Network)
	}

	sig, err := payment.Sign(id, n, privKey)
	if err != nil {
		fatalf("sign: %v", err)
	}

	header, err := payment.EncodeHeader(&payment.Proof{
		BuyerAddress: crypto.PubkeyToAddress(privKey.PublicKey).Hex(),
		APIID:        id,
		Nonce:        n,
		Signature:    sig,
	})
	if err != nil {
		fatalf("encode header: %v", err)
	}
	fmt.Println(header)
}

func fetchChallenge(url string) (*payment.Challenge, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusPaymentRequired {
		return nil, fmt.Errorf("expected 402, got %d", resp.StatusCode)
	}
	var ch payment.Challenge
	if err := json.NewDecoder(resp.Body).Decode(&ch); err != nil {
		return nil, fmt.Errorf("decode challenge: %w", err)
	}
	if ch.Scheme != payment.Scheme {
		return nil, fmt.Errorf("unexpected scheme %q", ch.Scheme)
	}
	return &ch, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
