package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Money
		err  bool
	}{
		{"1500000", Rupiah(1_500_000), false},
		{"1500000.5", Money(150_000_050), false},
		{" 0.10 ", Money(10), false},
		{"-250", Rupiah(-250), false},
		{"0.001", 0, true},
		{"1.500.000", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseMoney(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_Format(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Rp 0", Money(0).Format())
	assert.Equal(t, "Rp 999", Rupiah(999).Format())
	assert.Equal(t, "Rp 1.000", Rupiah(1000).Format())
	assert.Equal(t, "Rp 1.500.000", Rupiah(1_500_000).Format())
	assert.Equal(t, "Rp 12.345,05", Money(1_234_505).Format())
	assert.Equal(t, "-Rp 750.000", Rupiah(-750_000).Format())
}

func TestMoney_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(struct {
		Amount Money `json:"amount"`
	}{Rupiah(2_000_000)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"2000000.00"}`, string(b))

	var in struct {
		A Money `json:"a"`
		B Money `json:"b"`
		C Money `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"1250000.25","b":300000,"c":null}`), &in))
	assert.Equal(t, Money(125_000_025), in.A)
	assert.Equal(t, Rupiah(300_000), in.B)
	assert.Equal(t, Money(0), in.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a":"1.999"}`), &in))
}
