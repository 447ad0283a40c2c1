package forminput

import (
	"strconv"
	"strings"

	"github.com/cloud-ru/savings-calc-go/internal/calculations"
	"github.com/cloud-ru/savings-calc-go/pkg/utils"
)

// RawInput представляет сырые значения полей формы до нормализации.
// Все поля строковые: источником может быть JSON-запрос, флаги CLI
// или сценарный файл.
type RawInput struct {
	InitialAmount       string `json:"initial_amount" yaml:"initial_amount"`
	MonthlyContribution string `json:"monthly_contribution" yaml:"monthly_contribution"`
	Period              string `json:"period" yaml:"period"`
	PeriodUnit          string `json:"period_unit" yaml:"period_unit"`
	Rate                string `json:"rate" yaml:"rate"`
	RateUnit            string `json:"rate_unit" yaml:"rate_unit"`
}

// Normalize приводит сырые значения формы к параметрам расчета.
// Нормализация тотальна: нечитаемое или пустое числовое поле дает 0,
// каждое поле обрабатывается независимо от остальных.
func Normalize(raw RawInput) calculations.AccrualInput {
	return calculations.AccrualInput{
		InitialAmount:       ParseAmount(raw.InitialAmount),
		MonthlyContribution: ParseAmount(raw.MonthlyContribution),
		Period:              ParsePeriod(raw.Period),
		PeriodUnit:          ParsePeriodUnit(raw.PeriodUnit),
		Rate:                ParseAmount(raw.Rate),
		RateUnit:            ParseRateUnit(raw.RateUnit),
	}
}

// ParseAmount читает число из текста поля. Разделители групп разрядов
// и пробелы отбрасываются, нечитаемое значение дает 0.
func ParseAmount(s string) float64 {
	value, err := strconv.ParseFloat(cleanNumber(s), 64)
	if err != nil || !utils.IsFinite(value) {
		return 0.0
	}
	return value
}

// ParsePeriod читает целый срок из текста поля. Дробная часть
// отбрасывается, нечитаемое значение дает 0.
func ParsePeriod(s string) int {
	cleaned := cleanNumber(s)
	if value, err := strconv.Atoi(cleaned); err == nil {
		return value
	}
	// Форма могла прислать дробное число, берем целую часть
	if value, err := strconv.ParseFloat(cleaned, 64); err == nil && utils.IsFinite(value) {
		return int(value)
	}
	return 0
}

// ParsePeriodUnit читает единицу срока. Неизвестное значение дает годы -
// предвыбранный вариант формы.
func ParsePeriodUnit(s string) calculations.PeriodUnit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "months", "month":
		return calculations.PeriodMonths
	default:
		return calculations.PeriodYears
	}
}

// ParseRateUnit читает единицу ставки. Неизвестное значение дает
// годовую ставку - предвыбранный вариант формы.
func ParseRateUnit(s string) calculations.RateUnit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month":
		return calculations.RateMonthly
	default:
		return calculations.RateAnnual
	}
}

func cleanNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}
