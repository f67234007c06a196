package resolver

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/questx-lab/nftdrop/internal/entity"
	"github.com/questx-lab/nftdrop/internal/model"
	"github.com/questx-lab/nftdrop/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func addressesOf(r *Resolution) []string {
	var result []string
	for _, a := range r.Addresses() {
		result = append(result, a.Address)
	}
	return result
}

func Test_ResolveAddresses_WhitespaceDuplicateAndStatus(t *testing.T) {
	records := []model.CompletionRecord{
		testutil.Record("c1", "u1", entity.Success, "smr_address", "rms1abc"),
		testutil.Record("c2", "u2", entity.Success, "smr_address", " rms1abc "),
		testutil.Record("c3", "u3", entity.Fail, "smr_address", "rms1xyz"),
	}

	resolution := ResolveAddresses(FilterByStatus(records, entity.Success), "smr_address", "rms1")

	require.Equal(t, []string{"rms1abc"}, addressesOf(resolution))
	require.Equal(t, "rms1", resolution.Addresses()[0].Prefix)
	require.False(t, resolution.Contains("rms1xyz"))

	skipped := resolution.Skipped()
	require.Len(t, skipped, 1)
	require.Equal(t, "c2", skipped[0].RecordID)
	require.Equal(t, model.SkipDuplicate, skipped[0].Reason)
}

func Test_ResolveAddresses_WrongNetwork(t *testing.T) {
	records := []model.CompletionRecord{
		testutil.Record("c1", "u1", entity.Success, "smr_address", "smr1bad"),
	}

	resolution := ResolveAddresses(records, "smr_address", "rms1")
	require.Zero(t, resolution.Len())
	require.Equal(t, []model.SkippedSubmission{{
		RecordID: "c1", UserID: "u1", Value: "smr1bad", Reason: model.SkipInvalidPrefix,
	}}, resolution.Skipped())
}

func Test_ResolveAddresses_SkipReasons(t *testing.T) {
	records := []model.CompletionRecord{
		testutil.Record("c1", "u1", entity.Success, "other", "rms1abc"),
		testutil.Record("c2", "u2", entity.Success, "SMR_ADDRESS", "rms1abc"),
		testutil.Record("c3", "u3", entity.Success, "smr_address", "  rms1  "),
		{ID: "c4", UserID: "u4", Status: entity.Success},
		testutil.Record("c5", "u5", entity.Success, "smr_address", "rms1ok"),
	}

	resolution := ResolveAddresses(records, "smr_address", "rms1")
	require.Equal(t, []string{"rms1ok"}, addressesOf(resolution))

	var reasons []model.SkipReason
	for _, s := range resolution.Skipped() {
		reasons = append(reasons, s.Reason)
	}
	require.Equal(t, []model.SkipReason{
		model.SkipMissingField,
		model.SkipMissingField,
		model.SkipTooShort,
		model.SkipMissingField,
	}, reasons)
}

func Test_ResolveAddresses_FirstMatchingField(t *testing.T) {
	record := model.CompletionRecord{
		ID:     "c1",
		UserID: "u1",
		Status: entity.Success,
		Fields: []model.FieldSubmission{
			{Label: "twitter", Value: "@someone"},
			{Label: "smr_address", Value: "rms1first"},
			{Label: "smr_address", Value: "rms1second"},
		},
	}

	resolution := ResolveAddresses([]model.CompletionRecord{record}, "smr_address", "rms1")
	require.Equal(t, []string{"rms1first"}, addressesOf(resolution))
}

func Test_ResolveAddresses_FirstSeenOrder(t *testing.T) {
	records := []model.CompletionRecord{
		testutil.Record("c1", "u1", entity.Success, "smr_address", "rms1c"),
		testutil.Record("c2", "u2", entity.Success, "smr_address", "rms1a"),
		testutil.Record("c3", "u3", entity.Success, "smr_address", "rms1c"),
		testutil.Record("c4", "u4", entity.Success, "smr_address", "rms1b"),
	}

	resolution := ResolveAddresses(records, "smr_address", "rms1")
	require.Equal(t, []string{"rms1c", "rms1a", "rms1b"}, addressesOf(resolution))
}

func Test_ResolveAddresses_Empty(t *testing.T) {
	resolution := ResolveAddresses(nil, "smr_address", "rms1")
	require.Zero(t, resolution.Len())
	require.Empty(t, resolution.Addresses())
	require.Empty(t, resolution.Skipped())
}

func randomRecords(rnd *rand.Rand, n int) []model.CompletionRecord {
	values := []string{"rms1a", "rms1b", " rms1a", "rms1c ", "smr1a", "rms1", "", "rms", "xrms1a", "rms1A"}
	labels := []string{"smr_address", "smr_address", "smr_address", "other"}

	records := make([]model.CompletionRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, testutil.Record(
			fmt.Sprintf("c%d", i), fmt.Sprintf("u%d", i), entity.Success,
			labels[rnd.Intn(len(labels))], values[rnd.Intn(len(values))],
		))
	}
	return records
}

func Test_ResolveAddresses_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		records := randomRecords(rnd, rnd.Intn(20))

		first := ResolveAddresses(records, "smr_address", "rms1")
		second := ResolveAddresses(records, "smr_address", "rms1")

		// Same input, same output.
		require.Equal(t, first.Addresses(), second.Addresses())
		require.Equal(t, first.Skipped(), second.Skipped())

		// Only addresses of the configured network, never the bare prefix.
		distinct := map[string]struct{}{}
		for _, a := range first.Addresses() {
			require.True(t, strings.HasPrefix(a.Address, "rms1"))
			require.Greater(t, len(a.Address), len("rms1"))
			require.Equal(t, strings.TrimSpace(a.Address), a.Address)
			distinct[a.Address] = struct{}{}
		}

		// Duplicates collapse.
		require.Equal(t, len(distinct), first.Len())

		// Every record is either resolved or skipped.
		require.Equal(t, len(records), first.Len()+len(first.Skipped()))
	}
}

func Test_FilterByUsers(t *testing.T) {
	records := []model.CompletionRecord{
		testutil.Record("c1", "u1", entity.Success, "smr_address", "rms1a"),
		testutil.Record("c2", "u2", entity.Success, "smr_address", "rms1b"),
		testutil.Record("c3", "u3", entity.Success, "smr_address", "rms1c"),
	}

	kept := FilterByUsers(records, []string{"u3", "u1", "u9"})
	require.Len(t, kept, 2)
	require.Equal(t, "c1", kept[0].ID)
	require.Equal(t, "c3", kept[1].ID)

	require.Empty(t, FilterByUsers(records, nil))
}

func Test_Resolver_Extract(t *testing.T) {
	r := NewResolver(PrefixValidator{})

	value, reason, ok := r.Extract(
		testutil.Record("c1", "u1", entity.Pending, "smr_address", " "+testutil.Address1+"\n"), "smr_address", "rms1")
	require.True(t, ok)
	require.Equal(t, testutil.Address1, value)
	require.Empty(t, reason)

	value, reason, ok = r.Extract(
		testutil.Record("c2", "u2", entity.Pending, "smr_address", "my address is "+testutil.Address2), "smr_address", "rms1")
	require.False(t, ok)
	require.Equal(t, "my address is "+testutil.Address2, value)
	require.Equal(t, model.SkipInvalidPrefix, reason)

	_, reason, ok = r.Extract(
		testutil.Record("c3", "u3", entity.Pending, "other", testutil.Address3), "smr_address", "rms1")
	require.False(t, ok)
	require.Equal(t, model.SkipMissingField, reason)
}

func Test_PartitionByStatus(t *testing.T) {
	records := []model.CompletionRecord{
		testutil.Record("c1", "u1", entity.Success, "smr_address", "rms1a"),
		testutil.Record("c2", "u2", entity.Fail, "smr_address", "rms1b"),
		testutil.Record("c3", "u3", entity.Pending, "smr_address", "rms1c"),
		testutil.Record("c4", "u4", entity.Success, "smr_address", "rms1d"),
	}

	kept, excluded := PartitionByStatus(records, entity.Success)
	require.Equal(t, []string{"c1", "c4"}, []string{kept[0].ID, kept[1].ID})
	require.Len(t, kept, 2)
	require.Len(t, excluded, 2)
	require.Equal(t, "c2", excluded[0].ID)
	require.Equal(t, "c3", excluded[1].ID)

	kept, excluded = PartitionByStatus(nil, entity.Success)
	require.Empty(t, kept)
	require.Empty(t, excluded)
}
