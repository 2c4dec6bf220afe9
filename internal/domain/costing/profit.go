package costing

import "freight_crm/internal/domain/entities"

// Totals are the USD sale and cost sums of a sheet.
type Totals struct {
	SaleUSD float64 `json:"sale_usd"`
	CostUSD float64 `json:"cost_usd"`
}

func (t Totals) Profit() float64 { return t.SaleUSD - t.CostUSD }

// ComputeTotals converts every row to USD and sums each side.
//
// Sale  = venta (total, or usdXKg * weight) + locCli (gs / rate) + segVenta (usd, or total)
// Cost  = compra and costo (as venta) + locProv (as locCli) + segCosto (as segVenta)
func ComputeTotals(sheet *entities.CostSheet) Totals {
	if sheet == nil {
		return Totals{}
	}

	var weight, rate float64
	if a, _, ok := sheet.Header.First(entities.HeaderWeightKeys...); ok {
		weight = amountValue(a)
	}
	if a, _, ok := sheet.Header.First(entities.HeaderRateKeys...); ok {
		rate = amountValue(a)
	}

	var t Totals
	t.SaleUSD = sumRows(sheet.VentaRows, perKgOrTotal(weight)) +
		sumRows(sheet.LocCliRows, localCurrency(rate)) +
		sumRows(sheet.SegVentaRows, insurance)
	t.CostUSD = sumRows(sheet.CompraRows, perKgOrTotal(weight)) +
		sumRows(sheet.CostoRows, perKgOrTotal(weight)) +
		sumRows(sheet.LocProvRows, localCurrency(rate)) +
		sumRows(sheet.SegCostoRows, insurance)
	return t
}

// ComputeProfit returns the sheet's USD profit rounded to cents.
//
// A header override (see entities.HeaderProfitOverrideKeys) short-circuits the
// aggregation. ok is false for a nil sheet or when the result is not finite;
// callers then show no figure and must not overwrite the deal value.
func ComputeProfit(sheet *entities.CostSheet) (profit float64, ok bool) {
	if sheet == nil {
		return 0, false
	}

	for _, key := range entities.HeaderProfitOverrideKeys {
		a, exists := sheet.Header[key]
		if !exists || !a.Present() {
			continue
		}
		if v, parsed := overrideValue(a); parsed {
			return Round2(v), true
		}
	}

	p := ComputeTotals(sheet).Profit()
	if !finite(p) {
		return 0, false
	}
	return Round2(p), true
}

func sumRows(rows []entities.CostRow, value func(entities.CostRow) float64) float64 {
	var sum float64
	for _, r := range rows {
		sum += value(r)
	}
	return sum
}

func perKgOrTotal(weight float64) func(entities.CostRow) float64 {
	return func(r entities.CostRow) float64 {
		if r.Total.Present() && !r.LockPerKg {
			return amountValue(r.Total)
		}
		return amountValue(r.UsdXKg) * weight
	}
}

// localCurrency contributes 0 when there is no usable exchange rate.
func localCurrency(rate float64) func(entities.CostRow) float64 {
	return func(r entities.CostRow) float64 {
		if rate <= 0 || !finite(rate) {
			return 0
		}
		return amountValue(r.Gs) / rate
	}
}

func insurance(r entities.CostRow) float64 {
	if r.USD.Present() {
		return amountValue(r.USD)
	}
	return amountValue(r.Total)
}
