package currency

import (
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
)

// DefaultDecimalDigits é usado quando a moeda não é reconhecida
const DefaultDecimalDigits = 2

// Provider informa as casas decimais de moedas ISO 4217
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

// DecimalDigits retorna a escala padrão da moeda (ex: usd 2, jpy 0, kwd 3)
func (p *Provider) DecimalDigits(code string) int {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		logrus.WithField("currency_code", code).Debug("moeda desconhecida, usando casas decimais padrão")
		return DefaultDecimalDigits
	}

	scale, _ := currency.Standard.Rounding(unit)
	return scale
}
