// Package filter decides which package changes are refresh-worthy signal and
// which are noise. Suppressed packages are kept out of the store refresh
// queue only; their changes are still recorded in change history.
package filter

// BillingType is the billing classification attached to a package.
type BillingType uint32

// Billing classifications, mirroring the remote catalog's enumeration.
const (
	BillingNoCost                       BillingType = 0
	BillingBillOnceOnly                 BillingType = 1
	BillingBillMonthly                  BillingType = 2
	BillingProofOfPrepurchaseActivation BillingType = 3
	BillingGuestPass                    BillingType = 4
	BillingHardwarePromo                BillingType = 5
	BillingGift                         BillingType = 6
	BillingAutoGrant                    BillingType = 7
	BillingOEMTicket                    BillingType = 8
	BillingRecurringOption              BillingType = 9
)

// ignoredBillingTypes are the classifications whose package changes are too
// noisy to fan out: grants, passes and promo packages churn constantly
// without carrying store-visible changes.
var ignoredBillingTypes = map[BillingType]struct{}{
	BillingProofOfPrepurchaseActivation: {},
	BillingGuestPass:                    {},
	BillingHardwarePromo:                {},
	BillingGift:                         {},
	BillingAutoGrant:                    {},
	BillingOEMTicket:                    {},
	BillingRecurringOption:              {},
}

// ignoredPackages are individual packages excluded regardless of billing
// type: 0 is the base package every account owns, 17906 churns with every
// hardware survey run.
var ignoredPackages = map[uint32]struct{}{
	0:     {},
	17906: {},
}

// ShouldSuppress reports whether a package change is excluded from the
// refresh fan-out.
func ShouldSuppress(packageID uint32, billingType BillingType) bool {
	if _, ok := ignoredPackages[packageID]; ok {
		return true
	}
	_, ok := ignoredBillingTypes[billingType]
	return ok
}
