package render

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money форматирует денежные суммы с группировкой разрядов по локали.
// Исходный калькулятор показывает целые суммы вида "10,000,000원".
type Money struct {
	printer *message.Printer
	symbol  string
}

// NewMoney создает форматтер для заданной локали и символа валюты.
// Нераспознанная локаль дает корейскую - локаль исходного калькулятора.
func NewMoney(locale, symbol string) *Money {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Korean
	}
	return &Money{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Format возвращает сумму с группировкой разрядов и символом валюты
func (m *Money) Format(amount float64) string {
	return m.Plain(amount) + m.symbol
}

// Plain возвращает сумму с группировкой разрядов без символа валюты
func (m *Money) Plain(amount float64) string {
	return m.printer.Sprintf("%d", int64(math.Round(amount)))
}

// Symbol возвращает символ валюты
func (m *Money) Symbol() string {
	return m.symbol
}
