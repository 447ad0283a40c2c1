package handler

import (
	"fmt"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/cloud-ru/savings-calc-go/internal/forminput"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// decodeRawInput читает тело запроса в сырые поля формы.
// Числовые поля принимаются и строками, и числами - в том виде,
// в каком их прислала форма; нормализация выполняется дальше.
func decodeRawInput(r *http.Request) (forminput.RawInput, error) {
	var params map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		return forminput.RawInput{}, fmt.Errorf("invalid request body: %w", err)
	}

	return forminput.RawInput{
		InitialAmount:       fieldString(params, "initial_amount"),
		MonthlyContribution: fieldString(params, "monthly_contribution"),
		Period:              fieldString(params, "period"),
		PeriodUnit:          fieldString(params, "period_unit"),
		Rate:                fieldString(params, "rate"),
		RateUnit:            fieldString(params, "rate_unit"),
	}, nil
}

func fieldString(params map[string]interface{}, key string) string {
	value, ok := params[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("ошибка записи JSON-ответа")
	}
}
