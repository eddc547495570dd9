package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name   string
		zone   domain.Zone
		period domain.Period
		weight string
		want   int64
	}{
		{
			name:   "base daily price with no zone",
			zone:   domain.ZoneUnset,
			period: domain.PeriodDaily,
			weight: "",
			want:   50,
		},
		{
			name:   "zone a daily",
			zone:   domain.ZoneA,
			period: domain.PeriodDaily,
			weight: "",
			want:   70,
		},
		{
			name:   "zone b daily",
			zone:   domain.ZoneB,
			period: domain.PeriodDaily,
			weight: "",
			want:   60,
		},
		{
			name:   "unset period priced as daily",
			zone:   domain.ZoneB,
			period: domain.PeriodUnset,
			weight: "",
			want:   60,
		},
		{
			name:   "heavy vehicle surcharge",
			zone:   domain.ZoneUnset,
			period: domain.PeriodDaily,
			weight: "14",
			want:   70,
		},
		{
			name:   "weight at the threshold adds nothing",
			zone:   domain.ZoneUnset,
			period: domain.PeriodDaily,
			weight: "10",
			want:   50,
		},
		{
			name:   "weight below the threshold adds nothing",
			zone:   domain.ZoneA,
			period: domain.PeriodDaily,
			weight: "7.5",
			want:   70,
		},
		{
			name:   "unparseable weight skips the surcharge",
			zone:   domain.ZoneA,
			period: domain.PeriodDaily,
			weight: "heavy",
			want:   70,
		},
		{
			name:   "monthly multiplies the subtotal",
			zone:   domain.ZoneA,
			period: domain.PeriodMonthly,
			weight: "15",
			want:   1900,
		},
		{
			name:   "semi-annual zone b",
			zone:   domain.ZoneB,
			period: domain.PeriodSemiAnnual,
			weight: "",
			want:   6000,
		},
		{
			name:   "annual zone unset",
			zone:   domain.ZoneUnset,
			period: domain.PeriodAnnual,
			weight: "",
			want:   9000,
		},
		{
			name:   "fractional surcharge rounds the final price",
			zone:   domain.ZoneUnset,
			period: domain.PeriodDaily,
			weight: "10.5",
			want:   53,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.zone, tt.period, tt.weight)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRecomputeOverwritesPrice(t *testing.T) {
	app := domain.DefaultApplication()
	app.Price = 99999
	app.Route.Zone = domain.ZoneA
	app.Route.Period = domain.PeriodMonthly
	app.Vehicle.MaxWeightTonnes = "15"

	Recompute(&app)

	require.Equal(t, int64(1900), app.Price)
}

func TestCalculateIsPure(t *testing.T) {
	first := Calculate(domain.ZoneA, domain.PeriodAnnual, "12")
	second := Calculate(domain.ZoneA, domain.PeriodAnnual, "12")
	require.Equal(t, first, second)
}
