package dispatcher

import (
	"context"
	"errors"
	"testing"

	"github.com/questx-lab/nftdrop/internal/model"
	"github.com/questx-lab/nftdrop/pkg/testutil"
	"github.com/stretchr/testify/require"
)

type recordingTransferer struct {
	calls []string
	fail  map[string]error
}

func (r *recordingTransferer) Transfer(ctx context.Context, address string) (string, error) {
	r.calls = append(r.calls, address)
	if err, ok := r.fail[address]; ok {
		return "", err
	}
	return "tx-" + address, nil
}

func resolved(addresses ...string) []model.ResolvedAddress {
	result := make([]model.ResolvedAddress, 0, len(addresses))
	for _, a := range addresses {
		result = append(result, model.ResolvedAddress{Address: a, Prefix: "rms1"})
	}
	return result
}

func Test_Dispatch_Empty(t *testing.T) {
	ctx := testutil.MockContext()
	transferer := &recordingTransferer{}

	results := Dispatch(ctx, nil, transferer)
	require.NotNil(t, results)
	require.Empty(t, results)
	require.Empty(t, transferer.calls)

	results = Dispatch(ctx, []model.ResolvedAddress{}, transferer)
	require.Empty(t, results)
	require.Empty(t, transferer.calls)
}

func Test_Dispatch_Single(t *testing.T) {
	ctx := testutil.MockContext()
	transferer := &recordingTransferer{}

	results := Dispatch(ctx, resolved("rms1abc"), transferer)
	require.Equal(t, []string{"rms1abc"}, transferer.calls)
	require.Equal(t, []model.TransferResult{
		{Address: "rms1abc", Success: true, TxID: "tx-rms1abc"},
	}, results)
}

func Test_Dispatch_FailureDoesNotStop(t *testing.T) {
	ctx := testutil.MockContext()
	transferer := &recordingTransferer{
		fail: map[string]error{"rms1b": errors.New("insufficient funds")},
	}

	results := Dispatch(ctx, resolved("rms1a", "rms1b", "rms1c"), transferer)
	require.Equal(t, []string{"rms1a", "rms1b", "rms1c"}, transferer.calls)
	require.Equal(t, []model.TransferResult{
		{Address: "rms1a", Success: true, TxID: "tx-rms1a"},
		{Address: "rms1b", Success: false, Err: "insufficient funds"},
		{Address: "rms1c", Success: true, TxID: "tx-rms1c"},
	}, results)
}

func Test_Dispatch_AllFail(t *testing.T) {
	ctx := testutil.MockContext()
	calls := 0
	transfer := TransferFunc(func(ctx context.Context, address string) (string, error) {
		calls++
		return "", errors.New("node unreachable")
	})

	results := Dispatch(ctx, resolved("rms1a", "rms1b"), transfer)
	require.Equal(t, 2, calls)
	require.Len(t, results, 2)
	for _, r := range results {
		require.False(t, r.Success)
		require.Equal(t, "node unreachable", r.Err)
		require.Empty(t, r.TxID)
	}
}

func Test_Dispatch_DuplicateInput(t *testing.T) {
	ctx := testutil.MockContext()
	transferer := &recordingTransferer{}

	results := Dispatch(ctx, resolved("rms1a", "rms1b", "rms1a"), transferer)
	require.Equal(t, []string{"rms1a", "rms1b"}, transferer.calls)
	require.Len(t, results, 2)
	require.Equal(t, "rms1a", results[0].Address)
	require.Equal(t, "rms1b", results[1].Address)
}
