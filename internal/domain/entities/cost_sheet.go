package entities

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Amount is a monetary cell as it arrives from the cost sheet editor: either a
// JSON number or free text typed with local separators ("1.234,56").
// The zero value is an absent cell.
type Amount struct {
	text    string
	number  float64
	numeric bool
	set     bool
}

func NumberAmount(v float64) Amount { return Amount{number: v, numeric: true, set: true} }

func TextAmount(s string) Amount { return Amount{text: s, set: true} }

// Present reports whether the cell holds something other than null or "".
func (a Amount) Present() bool {
	return a.set && (a.numeric || a.text != "")
}

// Number returns the value when the cell was a JSON number.
func (a Amount) Number() (float64, bool) { return a.number, a.numeric }

// Text returns the raw text of a non-numeric cell.
func (a Amount) Text() string { return a.text }

func (a Amount) IsZero() bool { return !a.set }

func (a Amount) MarshalJSON() ([]byte, error) {
	switch {
	case !a.set:
		return []byte("null"), nil
	case a.numeric:
		return []byte(strconv.FormatFloat(a.number, 'f', -1, 64)), nil
	default:
		return json.Marshal(a.text)
	}
}

// UnmarshalJSON never fails on shape: numbers stay numeric, strings stay text,
// anything else is kept as its raw text so a single odd cell cannot reject a
// whole sheet.
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*a = Amount{}
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = TextAmount(s)
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		v, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			*a = TextAmount(string(b))
			return nil
		}
		*a = NumberAmount(v)
	default:
		*a = TextAmount(string(b))
	}
	return nil
}

// CostRow is a sale or cost line. Which cells matter depends on the section:
// per-kg/total rows use Total and UsdXKg, local currency rows use Gs,
// insurance rows use USD (falling back to Total).
type CostRow struct {
	Concept   string `json:"concepto,omitempty"`
	Total     Amount `json:"total,omitzero"`
	UsdXKg    Amount `json:"usdXKg,omitzero"`
	Gs        Amount `json:"gs,omitzero"`
	USD       Amount `json:"usd,omitzero"`
	LockPerKg bool   `json:"lockPerKg,omitempty"`
}

// CostSheetHeader holds the shared scalars of a sheet keyed by their editor
// names (pesoKg, gsRate, and the legacy profit override spellings).
type CostSheetHeader map[string]Amount

// Header key spellings, in lookup priority.
var (
	HeaderWeightKeys         = []string{"pesoKg", "peso_kg"}
	HeaderRateKeys           = []string{"gsRate", "gs_rate"}
	HeaderProfitOverrideKeys = []string{"profitUsd", "profit_usd", "profit", "margen_usd", "margen", "margin_usd"}
)

// First returns the first present cell among keys.
func (h CostSheetHeader) First(keys ...string) (Amount, string, bool) {
	for _, k := range keys {
		if a, ok := h[k]; ok && a.Present() {
			return a, k, true
		}
	}
	return Amount{}, "", false
}

// CostSheet is the sale/cost document attached to a deal.
type CostSheet struct {
	DealID       string          `json:"deal_id"`
	Header       CostSheetHeader `json:"header"`
	VentaRows    []CostRow       `json:"ventaRows"`
	LocCliRows   []CostRow       `json:"locCliRows"`
	SegVentaRows []CostRow       `json:"segVentaRows"`
	CompraRows   []CostRow       `json:"compraRows"`
	CostoRows    []CostRow       `json:"costoRows"`
	LocProvRows  []CostRow       `json:"locProvRows"`
	SegCostoRows []CostRow       `json:"segCostoRows"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
