package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoneyCents(t *testing.T) {
	assert.Equal(t, int64(12345), ParseMoneyCents("123.45"))
	assert.Equal(t, int64(100), ParseMoneyCents("1"))
	assert.Equal(t, int64(0), ParseMoneyCents(""))
	assert.Equal(t, int64(0), ParseMoneyCents("abc"))
	// 10.10 + 0.20 somado em float daria 10.299999...; em centavos é exato
	assert.Equal(t, int64(1030), ParseMoneyCents("10.10")+ParseMoneyCents("0.20"))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "123.45", FormatCents(12345))
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "0.05", FormatCents(5))
}

func TestMoneyToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(2550), MoneyToMinorUnits(25.50))
	assert.Equal(t, int64(1000), MoneyToMinorUnits(9.999))
	assert.Equal(t, int64(0), MoneyToMinorUnits(0))
}

func TestMinorUnitsToMoney(t *testing.T) {
	value := MinorUnitsToMoney("2550")
	require.NotNil(t, value)
	assert.Equal(t, 25.50, *value)

	assert.Nil(t, MinorUnitsToMoney(""))
	assert.Nil(t, MinorUnitsToMoney("not-a-number"))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "4.80", FormatMoney(4.8))
	assert.Equal(t, "0.00", FormatMoney(0))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
