package treasury

import (
	"testing"

	"nft-marketplace/internal/marketerrors"

	"github.com/stretchr/testify/require"
)

func TestTreasury_SetListingFee(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		caller  string
		fee     int64
		wantErr error
		wantFee int64
	}{
		{name: "owner_updates_fee", caller: "owner", fee: 50, wantFee: 50},
		{name: "owner_sets_zero_fee", caller: "owner", fee: 0, wantFee: 0},
		{name: "non_owner_rejected", caller: "mallory", fee: 1, wantErr: marketerrors.ErrUnauthorized, wantFee: 25},
		{name: "empty_caller_rejected", caller: "", fee: 1, wantErr: marketerrors.ErrUnauthorized, wantFee: 25},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tr := New("owner", 25)
			err := tr.SetListingFee(tc.caller, tc.fee)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.wantFee, tr.ListingFee())
		})
	}
}

func TestTreasury_Collect(t *testing.T) {
	t.Parallel()

	tr := New("owner", 25)
	require.Equal(t, int64(0), tr.Collected())

	tr.Collect(25)
	tr.Collect(25)
	require.Equal(t, int64(50), tr.Collected())
	require.Equal(t, "owner", tr.Owner())
}
