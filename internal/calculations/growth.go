package calculations

import (
	"math"

	"github.com/cloud-ru/savings-calc-go/pkg/utils"
)

// AccrualGrowthMetrics рассчитывает метрики доходности по результату накоплений
func AccrualGrowthMetrics(in AccrualInput, result *AccrualResult) GrowthMetrics {
	finalBalance := result.Summary.FinalAmount
	totalInvested := result.Summary.TotalPrincipal
	totalInterest := result.Summary.TotalInterest

	// ROI (Return on Investment) в процентах
	var roiPercent float64
	if totalInvested > 0 {
		roiPercent = utils.Round2(((finalBalance - totalInvested) / totalInvested) * 100)
	}

	// Средняя годовая доходность
	years := float64(in.TotalMonths()) / 12.0
	var annualizedReturn float64
	if years > 0 && totalInvested > 0 && finalBalance > 0 {
		annualizedReturn = utils.Round2((math.Pow(finalBalance/totalInvested, 1.0/years) - 1.0) * 100)
	}

	// Прирост капитала
	capitalGain := utils.Round2(finalBalance - totalInvested)

	// Процент от итоговой суммы, который составляет прибыль
	var profitPercent float64
	if finalBalance > 0 {
		profitPercent = utils.Round2((totalInterest / finalBalance) * 100)
	}

	return GrowthMetrics{
		ROIPercent:              roiPercent,
		AnnualizedReturnPercent: annualizedReturn,
		CapitalGain:             capitalGain,
		ProfitPercent:           profitPercent,
		TotalInvested:           utils.Round2(totalInvested),
		FinalValue:              utils.Round2(finalBalance),
		Years:                   utils.Round2(years),
	}
}
