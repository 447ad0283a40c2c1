package calculations

import (
	"testing"
)

func TestCompareContribution(t *testing.T) {
	in := AccrualInput{
		InitialAmount:       10000000,
		MonthlyContribution: 1000000,
		Period:              1,
		PeriodUnit:          PeriodYears,
		Rate:                12,
		RateUnit:            RateAnnual,
	}

	result := CompareContribution(in)

	if result.WithContribution.Summary.FinalAmount <= result.LumpSumOnly.Summary.FinalAmount {
		t.Error("contributions should increase the final amount")
	}

	// Вариант без взносов - это та же стартовая сумма под ту же ставку
	if !almostEqual(result.LumpSumOnly.Summary.FinalAmount, 11200000) {
		t.Errorf("expected lump sum final 11200000, got %f", result.LumpSumOnly.Summary.FinalAmount)
	}
	if !almostEqual(result.LumpSumOnly.Summary.TotalPrincipal, 10000000) {
		t.Errorf("expected lump sum principal 10000000, got %f", result.LumpSumOnly.Summary.TotalPrincipal)
	}

	diff, ok := result.Comparison["difference"].(map[string]interface{})
	if !ok {
		t.Fatal("comparison has no difference block")
	}
	if diff["contributed"].(float64) != 11000000 {
		t.Errorf("expected contributed 11000000, got %v", diff["contributed"])
	}
	if diff["interest_diff"].(float64) <= 0 {
		t.Error("contributions should add interest at a positive rate")
	}
}

func TestAccrualGrowthMetrics(t *testing.T) {
	in := AccrualInput{
		InitialAmount:       10000000,
		MonthlyContribution: 1000000,
		Period:              1,
		PeriodUnit:          PeriodYears,
		Rate:                12,
		RateUnit:            RateAnnual,
	}

	result := AccrualSchedule(in)
	metrics := AccrualGrowthMetrics(in, result)

	if metrics.TotalInvested != 21000000 {
		t.Errorf("expected total invested 21000000, got %f", metrics.TotalInvested)
	}
	if metrics.CapitalGain != 1860000 {
		t.Errorf("expected capital gain 1860000, got %f", metrics.CapitalGain)
	}
	if metrics.Years != 1 {
		t.Errorf("expected 1 year, got %f", metrics.Years)
	}
	if metrics.ROIPercent <= 0 {
		t.Error("ROI should be positive")
	}
	if metrics.ProfitPercent <= 0 || metrics.ProfitPercent >= 100 {
		t.Errorf("profit percent out of range: %f", metrics.ProfitPercent)
	}
}

func TestAccrualGrowthMetricsZeroPeriod(t *testing.T) {
	in := AccrualInput{InitialAmount: 1000, Period: 0, PeriodUnit: PeriodYears}

	metrics := AccrualGrowthMetrics(in, AccrualSchedule(in))

	if metrics.Years != 0 {
		t.Errorf("expected 0 years, got %f", metrics.Years)
	}
	if metrics.AnnualizedReturnPercent != 0 {
		t.Errorf("expected zero annualized return, got %f", metrics.AnnualizedReturnPercent)
	}
}
