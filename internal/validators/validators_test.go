package validators

import (
	"math"
	"testing"

	"github.com/cloud-ru/savings-calc-go/internal/calculations"
	"github.com/cloud-ru/savings-calc-go/internal/config"
)

func TestValidators(t *testing.T) {
	cfg, _ := config.LoadConfig()

	tests := []struct {
		name      string
		check     func(*config.Config) error
		wantError bool
	}{
		{
			name:      "valid initial amount",
			check:     func(cfg *config.Config) error { return CheckInitialAmount(cfg, 10000000.0) },
			wantError: false,
		},
		{
			name:      "zero initial amount is allowed",
			check:     func(cfg *config.Config) error { return CheckInitialAmount(cfg, 0.0) },
			wantError: false,
		},
		{
			name:      "negative initial amount",
			check:     func(cfg *config.Config) error { return CheckInitialAmount(cfg, -1000.0) },
			wantError: true,
		},
		{
			name:      "non-finite initial amount",
			check:     func(cfg *config.Config) error { return CheckInitialAmount(cfg, math.Inf(1)) },
			wantError: true,
		},
		{
			name:      "valid contribution",
			check:     func(cfg *config.Config) error { return CheckContribution(cfg, 1000000.0) },
			wantError: false,
		},
		{
			name:      "valid rate",
			check:     func(cfg *config.Config) error { return CheckRate(cfg, 12.0) },
			wantError: false,
		},
		{
			name:      "negative rate",
			check:     func(cfg *config.Config) error { return CheckRate(cfg, -1.0) },
			wantError: true,
		},
		{
			name:      "valid months",
			check:     func(cfg *config.Config) error { return CheckMonths(cfg, 24) },
			wantError: false,
		},
		{
			name:      "zero months",
			check:     func(cfg *config.Config) error { return CheckMonths(cfg, 0) },
			wantError: true,
		},
		{
			name:      "months above cap",
			check:     func(cfg *config.Config) error { return CheckMonths(cfg, cfg.MaxMonths+1) },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(cfg)
			if (err != nil) != tt.wantError {
				t.Errorf("validator error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestCheckAccrualInput(t *testing.T) {
	cfg, _ := config.LoadConfig()

	valid := calculations.AccrualInput{
		InitialAmount:       10000000,
		MonthlyContribution: 1000000,
		Period:              1,
		PeriodUnit:          calculations.PeriodYears,
		Rate:                12,
		RateUnit:            calculations.RateAnnual,
	}
	if err := CheckAccrualInput(cfg, valid); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}

	zeroPeriod := valid
	zeroPeriod.Period = 0
	if err := CheckAccrualInput(cfg, zeroPeriod); err == nil {
		t.Error("zero period should be rejected at the API boundary")
	}
}
