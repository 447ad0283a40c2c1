package calculations

// PeriodUnit определяет, в каких единицах задан срок накопления
type PeriodUnit string

const (
	PeriodYears  PeriodUnit = "years"
	PeriodMonths PeriodUnit = "months"
)

// RateUnit определяет, в каких единицах задана процентная ставка
type RateUnit string

const (
	RateAnnual  RateUnit = "annual"
	RateMonthly RateUnit = "monthly"
)

// AccrualInput представляет нормализованные параметры расчета накоплений
type AccrualInput struct {
	InitialAmount       float64    `json:"initial_amount"`
	MonthlyContribution float64    `json:"monthly_contribution"`
	Period              int        `json:"period"`
	PeriodUnit          PeriodUnit `json:"period_unit"`
	Rate                float64    `json:"rate"`
	RateUnit            RateUnit   `json:"rate_unit"`
}

// YearRow представляет одну строку погодовой разбивки накоплений
type YearRow struct {
	Year        int     `json:"year"`
	Principal   float64 `json:"principal"`
	Interest    float64 `json:"interest"`
	FinalAmount float64 `json:"final_amount"`
}

// AccrualSummary представляет сводку по накоплениям за весь срок
type AccrualSummary struct {
	FinalAmount    float64 `json:"final_amount"`
	TotalPrincipal float64 `json:"total_principal"`
	TotalInterest  float64 `json:"total_interest"`
}

// AccrualResult представляет результат расчета накоплений
type AccrualResult struct {
	Summary   AccrualSummary `json:"summary"`
	Breakdown []YearRow      `json:"breakdown"`
}

// GrowthMetrics представляет метрики доходности накоплений
type GrowthMetrics struct {
	ROIPercent              float64 `json:"roi_percent"`
	AnnualizedReturnPercent float64 `json:"annualized_return_percent"`
	CapitalGain             float64 `json:"capital_gain"`
	ProfitPercent           float64 `json:"profit_percent,omitempty"`
	TotalInvested           float64 `json:"total_invested"`
	FinalValue              float64 `json:"final_value"`
	Years                   float64 `json:"years"`
}

// ComparisonResult представляет результат сравнения накоплений
// с ежемесячными взносами и без них
type ComparisonResult struct {
	Comparison       map[string]interface{} `json:"comparison"`
	WithContribution AccrualResult          `json:"with_contribution"`
	LumpSumOnly      AccrualResult          `json:"lump_sum_only"`
}
