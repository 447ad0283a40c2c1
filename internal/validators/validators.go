package validators

import (
	"fmt"

	"github.com/cloud-ru/savings-calc-go/internal/calculations"
	"github.com/cloud-ru/savings-calc-go/internal/config"
	"github.com/cloud-ru/savings-calc-go/pkg/utils"
)

// ValidateNumberRange проверяет, что число конечно и в допустимом диапазоне
func ValidateNumberRange(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %.0f", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%.0f)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckInitialAmount проверяет стартовую сумму
func CheckInitialAmount(cfg *config.Config, amount float64) error {
	return ValidateNumberRange("initial_amount", amount, 0.0, cfg.MaxInitialAmount)
}

// CheckContribution проверяет ежемесячный взнос
func CheckContribution(cfg *config.Config, contribution float64) error {
	return ValidateNumberRange("monthly_contribution", contribution, 0.0, cfg.MaxContribution)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidateNumberRange("rate", rate, 0.0, cfg.MaxRate)
}

// CheckMonths проверяет срок в месяцах
func CheckMonths(cfg *config.Config, months int) error {
	return ValidateIntRange("months", months, 1, cfg.MaxMonths)
}

// CheckAccrualInput проверяет нормализованные параметры расчета на границе
// API. Само ядро расчета тотально и границ не проверяет.
func CheckAccrualInput(cfg *config.Config, in calculations.AccrualInput) error {
	if err := CheckInitialAmount(cfg, in.InitialAmount); err != nil {
		return err
	}
	if err := CheckContribution(cfg, in.MonthlyContribution); err != nil {
		return err
	}
	if err := CheckRate(cfg, in.Rate); err != nil {
		return err
	}
	return CheckMonths(cfg, in.TotalMonths())
}
