package writers

import (
	"fmt"
	"io"
	"sort"

	"github.com/cloud-ru/savings-calc-go/internal/calculations"
	"github.com/cloud-ru/savings-calc-go/internal/render"
)

// Payload содержит все данные одного расчета для вывода
type Payload struct {
	Input   calculations.AccrualInput
	Result  *calculations.AccrualResult
	Metrics calculations.GrowthMetrics
	Money   *render.Money
}

// Реестр форматов вывода (формат → обработчик).
// Форматы регистрируются из init() файлов конкретных writer-ов.
var registry = map[string]func(w io.Writer, p Payload) error{}

// Register регистрирует обработчик формата (последний выигрывает)
func Register(format string, fn func(io.Writer, Payload) error) {
	registry[format] = fn
}

// Write выводит результат расчета в заданном формате
func Write(format string, w io.Writer, p Payload) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, p)
}

// Formats возвращает отсортированный список зарегистрированных форматов
func Formats() []string {
	formats := make([]string, 0, len(registry))
	for format := range registry {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
