package repository

import (
	"testing"

	"github.com/questx-lab/nftdrop/internal/entity"
	"github.com/questx-lab/nftdrop/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_nftTransferRepository(t *testing.T) {
	ctx := testutil.MockContext()
	repo := NewNFTTransferRepository()

	require.NoError(t, repo.Create(ctx, &entity.NFTTransfer{
		Base: entity.Base{ID: "t1"}, Address: testutil.Address1, QuestID: testutil.NFTQuestID, TxID: "0x1", RunID: "run-1",
	}))
	require.NoError(t, repo.Create(ctx, &entity.NFTTransfer{
		Base: entity.Base{ID: "t2"}, Address: testutil.Address2, QuestID: testutil.NFTQuestID, TxID: "0x2", RunID: "run-2",
	}))

	// A second transfer to the same address is ignored.
	require.NoError(t, repo.Create(ctx, &entity.NFTTransfer{
		Base: entity.Base{ID: "t3"}, Address: testutil.Address1, QuestID: testutil.NFTQuestID, TxID: "0x3", RunID: "run-2",
	}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	found, err := repo.GetByAddresses(ctx, []string{testutil.Address1, testutil.Address3})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "0x1", found[0].TxID)

	found, err = repo.GetByAddresses(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, found)

	byRun, err := repo.GetByRunID(ctx, "run-2")
	require.NoError(t, err)
	require.Len(t, byRun, 1)
	require.Equal(t, testutil.Address2, byRun[0].Address)
}
