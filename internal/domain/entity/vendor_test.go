package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidatePlacement(t *testing.T) {
	locationID := uuid.New()

	homePlacement := Placement{
		HomeAddress: "12 Balogun Street",
		HomeState:   "Lagos",
		HomeLga:     "Lagos Island",
		HomeArea:    "Balogun",
	}

	tests := []struct {
		name       string
		vendorType VendorType
		placement  Placement
		wantErr    bool
	}{
		{name: "market vendor with location", vendorType: VendorTypeMarketBased, placement: Placement{LocationID: &locationID}, wantErr: false},
		{name: "market vendor without location", vendorType: VendorTypeMarketBased, placement: Placement{}, wantErr: true},
		{name: "mall vendor without location", vendorType: VendorTypeMallBased, placement: Placement{}, wantErr: true},
		{name: "home vendor with full address", vendorType: VendorTypeHomeBased, placement: homePlacement, wantErr: false},
		{name: "home vendor missing state", vendorType: VendorTypeHomeBased, placement: Placement{HomeAddress: "12 Balogun Street", HomeLga: "Lagos Island", HomeArea: "Balogun"}, wantErr: true},
		{name: "home vendor missing everything", vendorType: VendorTypeHomeBased, placement: Placement{}, wantErr: true},
		{name: "online-only vendor with nothing", vendorType: VendorTypeOnlineOnly, placement: Placement{}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlacement(tt.vendorType, tt.placement)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVendorStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, VendorStatusPending.CanTransitionTo(VendorStatusVerified))
	assert.True(t, VendorStatusPending.CanTransitionTo(VendorStatusRejected))
	assert.True(t, VendorStatusVerified.CanTransitionTo(VendorStatusSuspended))
	assert.True(t, VendorStatusSuspended.CanTransitionTo(VendorStatusVerified))

	assert.False(t, VendorStatusPending.CanTransitionTo(VendorStatusSuspended))
	assert.False(t, VendorStatusRejected.CanTransitionTo(VendorStatusVerified))
	assert.False(t, VendorStatusVerified.CanTransitionTo(VendorStatusPending))
}

func TestGoodsStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, GoodsStatusPending.CanTransitionTo(GoodsStatusApproved))
	assert.True(t, GoodsStatusFlagged.CanTransitionTo(GoodsStatusApproved))
	assert.True(t, GoodsStatusApproved.CanTransitionTo(GoodsStatusDropped))

	assert.False(t, GoodsStatusDropped.CanTransitionTo(GoodsStatusApproved))
	assert.False(t, GoodsStatusApproved.CanTransitionTo(GoodsStatusPending))
}

func TestVendorType_RequiresLocation(t *testing.T) {
	assert.True(t, VendorTypeMarketBased.RequiresLocation())
	assert.True(t, VendorTypeMallBased.RequiresLocation())
	assert.False(t, VendorTypeHomeBased.RequiresLocation())
	assert.False(t, VendorTypeOnlineOnly.RequiresLocation())
}
