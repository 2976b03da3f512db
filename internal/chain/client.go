package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/fhe402/fhe402-gateway/internal/config"
)

// Listing is one API offer as stored on the marketplace contract.
type Listing struct {
	Merchant    common.Address
	Name        string
	Description string
	Price       *big.Int
	Active      bool
}

// Client wraps go-ethereum and the generated Marketplace binding.
type Client struct {
	eth          *ethclient.Client
	contract     *Marketplace
	contractAddr common.Address
	chainID      *big.Int
	gatewayKey   *ecdsa.PrivateKey
	gatewayAddr  common.Address
}

func NewClient(cfg *config.Config) (*Client, error) {
	eth, err := ethclient.Dial(cfg.Chain.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}

	privKey, err := crypto.HexToECDSA(cfg.Chain.GatewayPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("parse gateway private key: %w", err)
	}

	addr := common.HexToAddress(cfg.Chain.ContractAddress)
	contract, err := NewMarketplace(addr, eth)
	if err != nil {
		return nil, fmt.Errorf("bind contract: %w", err)
	}

	return &Client{
		eth:          eth,
		contract:     contract,
		contractAddr: addr,
		chainID:      big.NewInt(cfg.Chain.ChainID),
		gatewayKey:   privKey,
		gatewayAddr:  crypto.PubkeyToAddress(privKey.PublicKey),
	}, nil
}

// PrivateKey returns the gateway signing key.
func (c *Client) PrivateKey() *ecdsa.PrivateKey { return c.gatewayKey }

// ChainID returns the configured chain ID.
func (c *Client) ChainID() *big.Int { return c.chainID }

// ContractAddress returns the marketplace contract address.
func (c *Client) ContractAddress() common.Address { return c.contractAddr }

// GatewayAddress returns the address derived from the gateway key.
func (c *Client) GatewayAddress() common.Address { return c.gatewayAddr }

// transactOpts builds a *bind.TransactOpts signed by the gateway key.
func (c *Client) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(c.gatewayKey, c.chainID)
	if err != nil {
		return nil, err
	}
	auth.Context = ctx
	return auth, nil
}

// Listing reads an API listing from the contract.
func (c *Client) Listing(ctx context.Context, apiID uint64) (*Listing, error) {
	opts := &bind.CallOpts{Context: ctx}
	raw, err := c.contract.Listings(opts, new(big.Int).SetUint64(apiID))
	if err != nil {
		return nil, fmt.Errorf("listings(%d): %w", apiID, err)
	}
	return &Listing{
		Merchant:    raw.Merchant,
		Name:        raw.Name,
		Description: raw.Description,
		Price:       new(big.Int).SetUint64(raw.Price),
		Active:      raw.Active,
	}, nil
}

// NextApiID returns the id the next listApi call will be assigned.
func (c *Client) NextApiID(ctx context.Context) (*big.Int, error) {
	opts := &bind.CallOpts{Context: ctx}
	n, err := c.contract.NextApiId(opts)
	if err != nil {
		return nil, fmt.Errorf("nextApiId: %w", err)
	}
	return n, nil
}

// CanAfford asks the contract whether buyer's encrypted balance covers one
// call to apiID. The contract only answers the gateway identity, so the call
// is made with From set to the gateway address. No state is touched.
func (c *Client) CanAfford(ctx context.Context, apiID uint64, buyer common.Address) (bool, error) {
	opts := &bind.CallOpts{Context: ctx, From: c.gatewayAddr}
	ok, err := c.contract.CanAfford(opts, new(big.Int).SetUint64(apiID), buyer)
	if err != nil {
		return false, fmt.Errorf("canAfford(%d, %s): %w", apiID, buyer.Hex(), err)
	}
	return ok, nil
}

// SettleCall submits the debit/credit transaction for one completed call and
// waits for it to mine.
func (c *Client) SettleCall(ctx context.Context, apiID uint64, buyer common.Address) error {
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return fmt.Errorf("build tx opts: %w", err)
	}

	tx, err := c.contract.SettleCall(opts, new(big.Int).SetUint64(apiID), buyer)
	if err != nil {
		return fmt.Errorf("settleCall tx: %w", err)
	}

	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return fmt.Errorf("wait mined: %w", err)
	}
	if receipt.Status == 0 {
		return fmt.Errorf("tx reverted: %s", tx.Hash().Hex())
	}
	return nil
}

// ListApi registers a new API listing signed by the gateway key and returns
// the assigned id (read back from the ApiListed event).
func (c *Client) ListApi(ctx context.Context, name, description string, price uint64) (*big.Int, error) {
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("build tx opts: %w", err)
	}

	tx, err := c.contract.ListApi(opts, name, description, price)
	if err != nil {
		return nil, fmt.Errorf("listApi tx: %w", err)
	}

	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return nil, fmt.Errorf("wait mined: %w", err)
	}
	if receipt.Status == 0 {
		return nil, fmt.Errorf("tx reverted: %s", tx.Hash().Hex())
	}

	for _, lg := range receipt.Logs {
		ev, err := c.contract.ParseApiListed(*lg)
		if err == nil {
			return ev.ApiId, nil
		}
	}
	return nil, fmt.Errorf("no ApiListed event in receipt %s", tx.Hash().Hex())
}

// Deposit tops up the caller's encrypted balance.
func (c *Client) Deposit(ctx context.Context, amount uint64) error {
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return fmt.Errorf("build tx opts: %w", err)
	}

	tx, err := c.contract.Deposit(opts, amount)
	if err != nil {
		return fmt.Errorf("deposit tx: %w", err)
	}

	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return fmt.Errorf("wait mined: %w", err)
	}
	if receipt.Status == 0 {
		return fmt.Errorf("tx reverted: %s", tx.Hash().Hex())
	}
	return nil
}
