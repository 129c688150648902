package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPrefix(t *testing.T) {
	engine, _ := newTestEngine(t)

	tests := []struct {
		name       string
		unit       string
		wantSymbol string
		wantBase   string
	}{
		{name: "kilo", unit: "kN", wantSymbol: "k", wantBase: "N"},
		{name: "mega", unit: "MPa", wantSymbol: "M", wantBase: "Pa"},
		{name: "giga", unit: "GPa", wantSymbol: "G", wantBase: "Pa"},
		{name: "milli", unit: "mm", wantSymbol: "m", wantBase: "m"},
		{name: "centi", unit: "cm", wantSymbol: "c", wantBase: "m"},
		{name: "two-letter symbol wins over one-letter", unit: "dam", wantSymbol: "da", wantBase: "m"},
		{name: "no empty remainder", unit: "m", wantSymbol: "", wantBase: "m"},
		{name: "case sensitive", unit: "KN", wantSymbol: "", wantBase: "KN"},
		{name: "celsius never split", unit: "°C", wantSymbol: "", wantBase: "°C"},
		{name: "kelvin never split", unit: "K", wantSymbol: "", wantBase: "K"},
		{name: "hertz never split", unit: "Hz", wantSymbol: "", wantBase: "Hz"},
		{name: "cyc per min never split", unit: "cyc/min", wantSymbol: "", wantBase: "cyc/min"},
		{name: "percent never split", unit: "percent", wantSymbol: "", wantBase: "percent"},
		{name: "unprefixed unit", unit: "ft", wantSymbol: "", wantBase: "ft"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			symbol, base := engine.SplitPrefix(tt.unit)
			assert.Equal(t, tt.wantSymbol, symbol)
			assert.Equal(t, tt.wantBase, base)
		})
	}
}

func TestPrefixFactor(t *testing.T) {
	engine, _ := newTestEngine(t)

	tests := []struct {
		name   string
		symbol string
		want   float64
	}{
		{name: "empty symbol", symbol: "", want: 1.0},
		{name: "kilo", symbol: "k", want: 1000},
		{name: "mega", symbol: "M", want: 1e6},
		{name: "micro", symbol: "µ", want: 1e-6},
		{name: "deca", symbol: "da", want: 10},
		{name: "unknown symbol fails open", symbol: "x", want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.PrefixFactor(tt.symbol))
		})
	}
}
