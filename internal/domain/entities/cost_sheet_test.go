package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmount_JSON(t *testing.T) {
	rq := require.New(t)

	var row CostRow
	rq.NoError(json.Unmarshal([]byte(`{"total":"1.234,56","usdXKg":2.5,"gs":null,"usd":{"odd":true}}`), &row))

	rq.True(row.Total.Present())
	rq.Equal("1.234,56", row.Total.Text())

	n, ok := row.UsdXKg.Number()
	rq.True(ok)
	rq.Equal(2.5, n)

	rq.False(row.Gs.Present())
	rq.True(row.USD.Present())

	b, err := json.Marshal(CostRow{Total: NumberAmount(120)})
	rq.NoError(err)
	rq.JSONEq(`{"total":120}`, string(b))

	rq.False(TextAmount("").Present())
}

func TestCostSheetHeader_First(t *testing.T) {
	rq := require.New(t)

	h := CostSheetHeader{"peso_kg": NumberAmount(10), "pesoKg": TextAmount("")}
	a, key, ok := h.First(HeaderWeightKeys...)
	rq.True(ok)
	rq.Equal("peso_kg", key)
	n, _ := a.Number()
	rq.Equal(10.0, n)

	_, _, ok = h.First(HeaderRateKeys...)
	rq.False(ok)
}
