// cmd/setup performs the on-chain onboarding needed before running the
// gateway against a fresh marketplace:
//
//  1. listApi — registers the API listing (merchant key)
//  2. deposit — funds the buyer's encrypted balance (buyer key, optional)
//
// Usage:
//
//	MERCHANT_PRIVATE_KEY=0x<key> \
//	go run ./cmd/setup/ \
//	  --rpc      https://rpc.sepolia.org \
//	  --chain-id 11155111 \
//	  --contract 0x<marketplace> \
//	  --name     weather \
//	  --price    5 \
//	  --deposit  100
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fhe402/fhe402-gateway/internal/chain"
	"github.com/fhe402/fhe402-gateway/internal/config"
)

func main() {
	rpc := flag.String("rpc", "https://rpc.sepolia.org", "RPC endpoint")
	chainID := flag.Int64("chain-id", 11155111, "Chain ID")
	contractHex := flag.String("contract", "", "Marketplace contract address")
	name := flag.String("name", "", "Listing name")
	description := flag.String("description", "", "Listing description")
	price := flag.Uint64("price", 0, "Price per call")
	deposit := flag.Uint64("deposit", 0, "Amount to deposit for the signing account (0 skips)")
	flag.Parse()

	if *contractHex == "" {
		fmt.Fprintln(os.Stderr, "error: --contract is required")
		os.Exit(1)
	}
	keyHex := strings.TrimPrefix(os.Getenv("MERCHANT_PRIVATE_KEY"), "0x")
	if keyHex == "" {
		fmt.Fprintln(os.Stderr, "error: MERCHANT_PRIVATE_KEY not set")
		os.Exit(1)
	}

	client, err := chain.NewClient(&config.Config{
		Chain: config.ChainConfig{
			RPCURL:            *rpc,
			ContractAddress:   *contractHex,
			GatewayPrivateKey: keyHex,
			ChainID:           *chainID,
		},
	})
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("account:  %s\n", client.GatewayAddress().Hex())
	fmt.Printf("contract: %s\n", *contractHex)
	fmt.Printf("rpc:      %s\n", *rpc)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *name != "" {
		fmt.Printf("\n[1/2] listApi %q (price=%d)...\n", *name, *price)
		apiID, err := client.ListApi(ctx, *name, *description, *price)
		if err != nil {
			fatalf("listApi: %v", err)
		}
		fmt.Printf("      confirmed, apiId=%s\n", apiID)
	} else {
		fmt.Println("\n[1/2] no --name given, skipping listApi")
	}

	if *deposit > 0 {
		fmt.Printf("\n[2/2] deposit %d...\n", *deposit)
		if err := client.Deposit(ctx, *deposit); err != nil {
			fatalf("deposit: %v", err)
		}
		fmt.Println("      confirmed")
	} else {
		fmt.Println("\n[2/2] no --deposit given, skipping deposit")
	}

	next, err := client.NextApiID(ctx)
	if err != nil {
		fatalf("nextApiId: %v", err)
	}
	fmt.Printf("\nSetup complete! next listing id: %s\n", next)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
