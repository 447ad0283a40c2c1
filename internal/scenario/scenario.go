package scenario

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cloud-ru/savings-calc-go/internal/forminput"
)

// Scenario представляет сценарный файл CLI: параметры формы
// плюс настройки вывода
type Scenario struct {
	Input  forminput.RawInput `yaml:"input"`
	Format string             `yaml:"format"`
	PDF    string             `yaml:"pdf"`
}

// Load читает и разбирает сценарный YAML-файл
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scenario file")
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrapf(err, "parsing scenario file %s", path)
	}

	if sc.Format == "" {
		sc.Format = "table"
	}
	return &sc, nil
}
