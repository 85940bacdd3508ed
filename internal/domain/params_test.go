package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsPeriod(t *testing.T) {
	p := Params{"period": 14, "half": 2.5, "zero": 0, "nan": math.NaN()}

	got, err := p.Period("period", 9)
	require.NoError(t, err)
	assert.Equal(t, 14, got)

	got, err = p.Period("missing", 9)
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	for _, key := range []string{"half", "zero", "nan"} {
		_, err := p.Period(key, 9)
		assert.True(t, errors.Is(err, ErrInvalidArgument), key)
	}
}

func TestParamsFloat(t *testing.T) {
	p := Params{"k": 1.5, "inf": math.Inf(1)}

	got, err := p.Float("k", 2)
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)

	got, err = p.Float("missing", 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	_, err = p.Float("inf", 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParamsOnly(t *testing.T) {
	assert.NoError(t, Params{"fast": 1}.Only("fast", "slow"))
	assert.NoError(t, Params(nil).Only("fast"))

	err := Params{"fast": 1, "typo": 2}.Only("fast", "slow")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "typo")
}

func TestSignalType(t *testing.T) {
	assert.Equal(t, "Buy", Buy.String())
	assert.Equal(t, "Sell", Sell.String())
	assert.Equal(t, "Unknown", SignalType(0).String())

	text, err := Sell.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Sell", string(text))

	_, err = SignalType(7).MarshalText()
	assert.Error(t, err)

	assert.True(t, Signal{Type: Buy}.IsBuy())
	assert.True(t, Signal{Type: Sell}.IsSell())
}
