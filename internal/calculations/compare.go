package calculations

import (
	"github.com/cloud-ru/savings-calc-go/pkg/utils"
)

// CompareContribution сравнивает накопления с ежемесячными взносами
// и накопления только стартовой суммы при тех же сроке и ставке
func CompareContribution(in AccrualInput) *ComparisonResult {
	withResult := AccrualSchedule(in)

	lumpIn := in
	lumpIn.MonthlyContribution = 0
	lumpResult := AccrualSchedule(lumpIn)

	withSummary := withResult.Summary
	lumpSummary := lumpResult.Summary

	finalDiff := utils.Round2(withSummary.FinalAmount - lumpSummary.FinalAmount)
	interestDiff := utils.Round2(withSummary.TotalInterest - lumpSummary.TotalInterest)
	contributed := utils.Round2(withSummary.TotalPrincipal - lumpSummary.TotalPrincipal)

	var recommendation string
	if interestDiff > 0 {
		recommendation = "Регулярные взносы приносят дополнительный процентный доход сверх самих взносов. Чем раньше в году сделан взнос, тем больше месяцев он работает."
	} else {
		recommendation = "При нулевой ставке регулярные взносы увеличивают только вложенную сумму, процентного дохода они не добавляют."
	}

	comparison := map[string]interface{}{
		"period_months": float64(in.TotalMonths()),
		"annual_rate":   in.AnnualRate(),
		"with_contribution": map[string]interface{}{
			"final_amount":    utils.Round2(withSummary.FinalAmount),
			"total_principal": utils.Round2(withSummary.TotalPrincipal),
			"total_interest":  utils.Round2(withSummary.TotalInterest),
		},
		"lump_sum_only": map[string]interface{}{
			"final_amount":    utils.Round2(lumpSummary.FinalAmount),
			"total_principal": utils.Round2(lumpSummary.TotalPrincipal),
			"total_interest":  utils.Round2(lumpSummary.TotalInterest),
		},
		"difference": map[string]interface{}{
			"final_amount_diff": finalDiff,
			"interest_diff":     interestDiff,
			"contributed":       contributed,
		},
		"recommendation": recommendation,
	}

	return &ComparisonResult{
		Comparison:       comparison,
		WithContribution: *withResult,
		LumpSumOnly:      *lumpResult,
	}
}
