package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldSuppress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		packageID  uint32
		billing    BillingType
		suppressed bool
	}{
		{
			name:       "regular purchase passes",
			packageID:  303386,
			billing:    BillingBillOnceOnly,
			suppressed: false,
		},
		{
			name:       "free package passes",
			packageID:  54029,
			billing:    BillingNoCost,
			suppressed: false,
		},
		{
			name:       "monthly billing passes",
			packageID:  100,
			billing:    BillingBillMonthly,
			suppressed: false,
		},
		{
			name:       "guest pass is suppressed",
			packageID:  12345,
			billing:    BillingGuestPass,
			suppressed: true,
		},
		{
			name:       "prepurchase activation is suppressed",
			packageID:  12345,
			billing:    BillingProofOfPrepurchaseActivation,
			suppressed: true,
		},
		{
			name:       "hardware promo is suppressed",
			packageID:  12345,
			billing:    BillingHardwarePromo,
			suppressed: true,
		},
		{
			name:       "gift is suppressed",
			packageID:  12345,
			billing:    BillingGift,
			suppressed: true,
		},
		{
			name:       "auto grant is suppressed",
			packageID:  12345,
			billing:    BillingAutoGrant,
			suppressed: true,
		},
		{
			name:       "OEM ticket is suppressed",
			packageID:  12345,
			billing:    BillingOEMTicket,
			suppressed: true,
		},
		{
			name:       "recurring option is suppressed",
			packageID:  12345,
			billing:    BillingRecurringOption,
			suppressed: true,
		},
		{
			name:       "package zero is suppressed regardless of billing",
			packageID:  0,
			billing:    BillingBillOnceOnly,
			suppressed: true,
		},
		{
			name:       "hardware survey package is suppressed regardless of billing",
			packageID:  17906,
			billing:    BillingNoCost,
			suppressed: true,
		},
		{
			name:       "unknown billing classification passes",
			packageID:  12345,
			billing:    BillingType(42),
			suppressed: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.suppressed, ShouldSuppress(tt.packageID, tt.billing))
		})
	}
}
