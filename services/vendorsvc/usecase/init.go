package usecase

import (
	"github.com/kdarko/sikaflow/services/vendorsvc"
)

// VendorUC implements the vendor use case interface
type VendorUC struct {
	poolRepo vendor.PoolRepo
	presence vendor.PresenceRepo
	users    vendor.UserReader
	eventGW  vendor.EventPublisher
}

// NewVendorUC creates a new vendor use case
func NewVendorUC(
	poolRepo vendor.PoolRepo,
	presence vendor.PresenceRepo,
	users vendor.UserReader,
	eventGW vendor.EventPublisher,
) *VendorUC {
	return &VendorUC{
		poolRepo: poolRepo,
		presence: presence,
		users:    users,
		eventGW:  eventGW,
	}
}
