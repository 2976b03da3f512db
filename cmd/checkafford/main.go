// cmd/checkafford reads a marketplace listing and asks the contract whether
// a buyer's encrypted balance covers one call. The gateway key is required
// because the contract only answers the gateway identity.
//
// Usage:
//
//	GATEWAY_PRIVATE_KEY=0x<key> go run ./cmd/checkafford/ \
//	  --rpc      https://rpc.sepolia.org \
//	  --contract 0x<marketplace> \
//	  --api-id   1 \
//	  --buyer    0x<buyer>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fhe402/fhe402-gateway/internal/chain"
	"github.com/fhe402/fhe402-gateway/internal/config"
)

func main() {
	rpc := flag.String("rpc", "https://rpc.sepolia.org", "RPC endpoint")
	chainID := flag.Int64("chain-id", 11155111, "Chain ID")
	contractHex := flag.String("contract", "", "Marketplace contract address")
	apiID := flag.Uint64("api-id", 0, "Listing id")
	buyerHex := flag.String("buyer", "", "Buyer address")
	flag.Parse()

	if *contractHex == "" || *buyerHex == "" {
		fmt.Fprintln(os.Stderr, "error: --contract and --buyer are required")
		os.Exit(1)
	}
	keyHex := strings.TrimPrefix(os.Getenv("GATEWAY_PRIVATE_KEY"), "0x")
	if keyHex == "" {
		fmt.Fprintln(os.Stderr, "error: GATEWAY_PRIVATE_KEY not set")
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
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	listing, err := client.Listing(ctx, *apiID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("listing:   #%d %q (%s)\n", *apiID, listing.Name, listing.Description)
	fmt.Printf("merchant:  %s\n", listing.Merchant.Hex())
	fmt.Printf("price:     %s\n", listing.Price)
	fmt.Printf("active:    %v\n", listing.Active)

	ok, err := client.CanAfford(ctx, *apiID, common.HexToAddress(*buyerHex))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("canAfford: %v\n", ok)
}
