package calculations

import (
	"github.com/cloud-ru/savings-calc-go/pkg/utils"
)

// TotalMonths возвращает срок накопления в месяцах.
// Неположительный срок дает 0 месяцев.
func (in AccrualInput) TotalMonths() int {
	if in.Period <= 0 {
		return 0
	}
	if in.PeriodUnit == PeriodMonths {
		return in.Period
	}
	return in.Period * 12
}

// AnnualRate возвращает эффективную годовую ставку как долю.
// Месячная ставка приводится к годовой умножением на 12.
func (in AccrualInput) AnnualRate() float64 {
	rate := sanitize(in.Rate)
	if in.RateUnit == RateMonthly {
		return rate * 12.0 / 100.0
	}
	return rate / 100.0
}

// AccrualSchedule рассчитывает погодовой график накоплений: стартовая сумма
// плюс ежемесячные взносы со второго месяца первого года под заданную ставку.
//
// Расчет тотален: функция никогда не возвращает ошибку. Нечисловые значения
// приводятся к нулю, неположительный срок дает пустую разбивку с итогом,
// равным стартовой сумме.
//
// Проценты на взносы внутри года считаются по простой схеме: взнос,
// сделанный за k месяцев до конца года, приносит k месячных ставок.
// Сумма по всем взносам сворачивается треугольным числом k(k+1)/2.
// Внутригодовая капитализация взносов намеренно не применяется, чтобы
// результат совпадал с исходным калькулятором.
func AccrualSchedule(in AccrualInput) *AccrualResult {
	initial := sanitize(in.InitialAmount)
	contrib := sanitize(in.MonthlyContribution)

	totalMonths := in.TotalMonths()
	annualRate := in.AnnualRate()
	monthlyRate := annualRate / 12.0

	totalYears := (totalMonths + 11) / 12

	breakdown := make([]YearRow, 0, totalYears)
	current := initial
	totalDeposits := 0

	for y := 1; y <= totalYears; y++ {
		monthsThisYear := totalMonths - (y-1)*12
		if monthsThisYear > 12 {
			monthsThisYear = 12
		}
		// Срок ровно на границе 12 месяцев: этот год уже полностью
		// учтен предыдущей строкой, пустую строку не выводим
		if monthsThisYear <= 0 {
			continue
		}

		deposits := monthsThisYear
		if y == 1 {
			// В первый месяц лежит только стартовая сумма, взносы
			// начинаются со второго месяца
			deposits = monthsThisYear - 1
		}
		if deposits < 0 {
			deposits = 0
		}

		starting := current
		depositTotal := contrib * float64(deposits)

		k := float64(deposits)
		interestOnDeposits := contrib * monthlyRate * (k * (k + 1) / 2.0)
		interestOnBalance := starting * annualRate * float64(monthsThisYear) / 12.0
		interest := interestOnBalance + interestOnDeposits

		current += depositTotal + interest
		totalDeposits += deposits

		breakdown = append(breakdown, YearRow{
			Year:        y,
			Principal:   starting + depositTotal,
			Interest:    interest,
			FinalAmount: current,
		})
	}

	totalPrincipal := initial + contrib*float64(totalDeposits)

	return &AccrualResult{
		Summary: AccrualSummary{
			FinalAmount:    current,
			TotalPrincipal: totalPrincipal,
			TotalInterest:  current - totalPrincipal,
		},
		Breakdown: breakdown,
	}
}

// sanitize приводит NaN и бесконечности к нулю
func sanitize(value float64) float64 {
	if !utils.IsFinite(value) {
		return 0.0
	}
	return value
}
