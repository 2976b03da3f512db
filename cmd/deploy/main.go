// cmd/deploy deploys the FHE402Marketplace contract from a Foundry artifact.
//
// Usage:
//
//	go run ./cmd/deploy/ --rpc <url> --key <hex> --chain-id <id> [--artifact <path>]
package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/fhe402/fhe402-gateway/internal/chain"
)

func main() {
	rpcURL := flag.String("rpc", "https://rpc.sepolia.org", "EVM RPC endpoint")
	keyHex := flag.String("key", "", "deployer private key (hex, with or without 0x)")
	chainID := flag.Int64("chain-id", 11155111, "chain ID")
	artifact := flag.String("artifact", "contracts/out/FHE402Marketplace.sol/FHE402Marketplace.json", "Foundry artifact path")
	flag.Parse()

	if *keyHex == "" {
		fmt.Fprintln(os.Stderr, "error: --key is required")
		os.Exit(1)
	}

	privKey, err := crypto.HexToECDSA(strings.TrimPrefix(*keyHex, "0x"))
	if err != nil {
		fatalf("parse key: %v", err)
	}
	deployer := crypto.PubkeyToAddress(privKey.PublicKey)
	fmt.Printf("Deployer : %s\n", deployer.Hex())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := ethclient.DialContext(ctx, *rpcURL)
	if err != nil {
		fatalf("dial rpc: %v", err)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(privKey, big.NewInt(*chainID))
	if err != nil {
		fatalf("transactor: %v", err)
	}
	auth.Context = ctx

	// ── Load bytecode from the Foundry artifact ───────────────────────────────
	raw, err := os.ReadFile(*artifact)
	if err != nil {
		fatalf("read artifact %s: %v", *artifact, err)
	}
	var parsed struct {
		Bytecode struct {
			Object string `json:"object"`
		} `json:"bytecode"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		fatalf("parse artifact %s: %v", *artifact, err)
	}
	bytecode, err := hex.DecodeString(strings.TrimPrefix(parsed.Bytecode.Object, "0x"))
	if err != nil {
		fatalf("decode bytecode: %v", err)
	}

	// ── Deploy ────────────────────────────────────────────────────────────────
	fmt.Printf("\nDeploying FHE402Marketplace (chainID=%d)...\n", *chainID)

	contractABI, err := abi.JSON(strings.NewReader(chain.MarketplaceMetaData.ABI))
	if err != nil {
		fatalf("parse ABI: %v", err)
	}

	addr, tx, _, err := bind.DeployContract(auth, contractABI, bytecode, client)
	if err != nil {
		fatalf("deploy: %v", err)
	}
	fmt.Printf("  Tx hash : %s\n", tx.Hash().Hex())

	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		fatalf("wait mined: %v", err)
	}
	if receipt.Status == 0 {
		fatalf("deploy tx reverted")
	}

	fmt.Printf(`
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
DEPLOY COMPLETE
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Marketplace : %s

Set in .env:
  CONTRACT_ADDRESS=%s
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
`, addr.Hex(), addr.Hex())
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
