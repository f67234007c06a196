package dispatcher

import (
	"context"

	"github.com/questx-lab/nftdrop/internal/common"
	"github.com/questx-lab/nftdrop/internal/model"
	"github.com/questx-lab/nftdrop/pkg/xcontext"
)

// Transferer sends one NFT to address and returns the id of the transaction
// carrying it.
type Transferer interface {
	Transfer(ctx context.Context, address string) (string, error)
}

type TransferFunc func(ctx context.Context, address string) (string, error)

func (f TransferFunc) Transfer(ctx context.Context, address string) (string, error) {
	return f(ctx, address)
}

// Dispatch calls transfer once per address, sequentially and in order. A
// failed transfer is recorded in its result and does not stop the others.
// Nothing is retried.
func Dispatch(
	ctx context.Context, addresses []model.ResolvedAddress, transfer Transferer,
) []model.TransferResult {
	results := []model.TransferResult{}
	if len(addresses) == 0 {
		xcontext.Logger(ctx).Infof("No addresses provided")
		return results
	}

	sent := make(map[string]struct{}, len(addresses))
	for _, a := range addresses {
		if _, ok := sent[a.Address]; ok {
			xcontext.Logger(ctx).Warnf("Address %s appears twice, transfer only once", a.Address)
			continue
		}
		sent[a.Address] = struct{}{}

		results = append(results, transferOne(ctx, a.Address, transfer))
	}

	return results
}

func transferOne(ctx context.Context, address string, transfer Transferer) model.TransferResult {
	txID, err := transfer.Transfer(ctx, address)
	if err != nil {
		xcontext.Logger(ctx).Errorf("[%s] Cannot transfer NFT to %s: %v", xcontext.RunID(ctx), address, err)
		common.PromCounters[common.TransferTotal].WithLabelValues("failure").Inc()
		return model.TransferResult{Address: address, Success: false, Err: err.Error()}
	}

	xcontext.Logger(ctx).Infof("[%s] Sent NFT to %s in %s", xcontext.RunID(ctx), address, txID)
	common.PromCounters[common.TransferTotal].WithLabelValues("success").Inc()
	return model.TransferResult{Address: address, Success: true, TxID: txID}
}
