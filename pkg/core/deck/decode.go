package deck

import (
	"encoding/json"

	"deckgen/pkg/core/sanitize"
)

// decodeInto normalizes a raw generated object and coerces it onto a typed
// day struct. Decode errors are swallowed; the Flex types absorb mistyped
// leaves and anything else falls back to the struct's zero values, which the
// per-day defaults below then repair.
func decodeInto(m map[string]interface{}, dst interface{}) {
	normalized := sanitize.Normalize(m)
	raw, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	_ = json.Unmarshal(raw, dst)
}

// DecodeDay1 binds a generated object to the Day 1 shape, filling in the
// fixed price, the derived client count and a fallback market segment when
// the generator omits them.
func DecodeDay1(m map[string]interface{}) Day1Data {
	var d Day1Data
	decodeInto(m, &d)

	if d.PricePerClient.Float() <= 0 {
		d.PricePerClient = DefaultPricePerClient
	}
	if d.ClientsNeeded.Float() <= 0 {
		metrics := DeriveFunnel(d.RevenueGoal.Num(), d.PricePerClient.Float())
		d.ClientsNeeded = FlexNumber(metrics.ClientsNeeded)
	}
	if len(d.TargetMarketSegments) == 0 {
		d.TargetMarketSegments = []SegmentEntry{{
			Name:       "Total Market",
			Percentage: 100,
			Count:      d.TargetMarketSize,
			Detail:     d.TargetMarket,
		}}
	}
	for i := range d.TargetMarketSegments {
		if d.TargetMarketSegments[i].Color == "" {
			d.TargetMarketSegments[i].Color = Palette[i%len(Palette)]
		}
	}
	return d
}

// DecodeDay2 binds a generated object to the Day 2 shape.
func DecodeDay2(m map[string]interface{}) Day2Data {
	var d Day2Data
	decodeInto(m, &d)

	if d.OfferPrice == "" {
		d.OfferPrice = FlexString(FormatCurrency(DefaultPricePerClient))
	}
	return d
}

// DecodeDay3 binds a generated object to the Day 3 shape, backfilling the
// chart parameters from the revenue goal when the generator leaves them out.
func DecodeDay3(m map[string]interface{}) Day3Data {
	var d Day3Data
	decodeInto(m, &d)

	if d.PricePerClient.Float() <= 0 {
		d.PricePerClient = DefaultPricePerClient
	}
	if d.RevenueChart.WeeklyClients.Float() <= 0 {
		d.RevenueChart.WeeklyClients = 1
	}
	if d.RevenueChart.GoalWeeks.Float() <= 0 && d.RevenueGoal.Float() > 0 {
		perWeek := d.RevenueChart.WeeklyClients.Float() * d.PricePerClient.Float()
		series := BuildRevenueSeries(d.RevenueChart.WeeklyClients.Float(), d.PricePerClient.Float(), d.RevenueGoal.Float())
		if perWeek > 0 && len(series) > 2 {
			d.RevenueChart.GoalWeeks = FlexNumber(len(series) - 2)
		}
	}
	return d
}
