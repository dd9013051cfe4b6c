package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMoney formata um valor monetário com duas casas decimais.
func FormatMoney(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// ParseMoneyCents converte uma string decimal ("123.45") em centavos
// inteiros. Somar em centavos evita deriva de arredondamento ao agregar
// valores já formatados por entidade.
func ParseMoneyCents(s string) int64 {
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return int64(math.Round(f * 100))
}

// FormatCents converte centavos inteiros de volta para a string decimal.
func FormatCents(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}

// MoneyToMinorUnits converte unidades monetárias para os centavos inteiros
// esperados pela API do Meta (arredondado para o inteiro mais próximo).
func MoneyToMinorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}

// MinorUnitsToMoney converte centavos (string da API) para unidades
// monetárias de exibição. Devolve nil quando o campo está ausente.
func MinorUnitsToMoney(raw string) *float64 {
	if raw == "" {
		return nil
	}

	cents, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}

	major := float64(cents) / 100
	return &major
}
