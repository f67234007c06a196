package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/questx-lab/nftdrop/pkg/errorx"
	"github.com/questx-lab/nftdrop/pkg/xcontext"
)

// SendNFTResult is what the wallet service answers after submitting a
// transfer to the ledger.
type SendNFTResult struct {
	TransactionID string `json:"transactionId"`
	BlockID       string `json:"blockId"`
}

// WalletCaller calls the wallet service which owns the NFT inventory and the
// signing keys.
type WalletCaller interface {
	SendNFT(ctx context.Context, address string) (SendNFTResult, error)
	Transfer(ctx context.Context, address string) (string, error)
	Close()
}

type walletCaller struct {
	client *rpc.Client
}

func NewWalletCaller(client *rpc.Client) *walletCaller {
	return &walletCaller{client: client}
}

func (c *walletCaller) SendNFT(ctx context.Context, address string) (SendNFTResult, error) {
	var result SendNFTResult
	err := c.client.CallContext(ctx, &result, c.fname(ctx, "sendNft"), address)
	if err != nil {
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) {
			return SendNFTResult{}, errorx.New(errorx.TransferRejected,
				"wallet rejected transfer (%d): %s", rpcErr.ErrorCode(), rpcErr.Error())
		}

		return SendNFTResult{}, errorx.New(errorx.Unavailable, "cannot call wallet: %v", err)
	}

	if result.TransactionID == "" && result.BlockID == "" {
		return SendNFTResult{}, errorx.New(errorx.BadResponse, "wallet returned no transaction")
	}

	return result, nil
}

// Transfer returns the transaction id, or the block id when the wallet only
// reports the block which included the transfer.
func (c *walletCaller) Transfer(ctx context.Context, address string) (string, error) {
	result, err := c.SendNFT(ctx, address)
	if err != nil {
		return "", err
	}

	if result.TransactionID != "" {
		return result.TransactionID, nil
	}

	return result.BlockID, nil
}

func (c *walletCaller) Close() {
	c.client.Close()
}

func (c *walletCaller) fname(ctx context.Context, funcName string) string {
	return fmt.Sprintf("%s_%s", xcontext.Configs(ctx).Wallet.RPCName, funcName)
}
