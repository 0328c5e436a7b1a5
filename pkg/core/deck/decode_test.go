package deck

import "testing"

func TestDecodeDay1MessyTypes(t *testing.T) {
	// The generator sometimes returns numbers as strings and vice versa.
	raw := map[string]interface{}{
		"clientName":       "Amy",
		"revenueGoal":      120000.0, // number instead of "$120,000"
		"revenueTimeframe": "in next 12 months",
		"motivatingForce":  "Freedom — for my family",
		"niche":            "marriage coaching",
		"targetMarketSize": "1,000,000",
		"targetMarketSegments": []interface{}{
			map[string]interface{}{
				"name":       "Struggling couples",
				"percentage": "80%", // string instead of number
				"count":      800000.0,
				"detail":     "Actively seeking help",
			},
		},
		"pricePerClient": "10,000",
		"clientsNeeded":  "12",
	}

	d := DecodeDay1(raw)

	if d.ClientName != "Amy" {
		t.Errorf("ClientName = %q", d.ClientName)
	}
	if d.RevenueGoal != "120,000" {
		t.Errorf("RevenueGoal = %q, want 120,000", d.RevenueGoal)
	}
	// Em dash normalized at decode time.
	if d.MotivatingForce != "Freedom - for my family" {
		t.Errorf("MotivatingForce = %q", d.MotivatingForce)
	}
	if d.PricePerClient.Float() != 10000 {
		t.Errorf("PricePerClient = %v", d.PricePerClient)
	}
	if d.ClientsNeeded.Float() != 12 {
		t.Errorf("ClientsNeeded = %v", d.ClientsNeeded)
	}

	seg := d.TargetMarketSegments[0]
	if seg.Percentage.Float() != 80 {
		t.Errorf("Percentage = %v, want 80", seg.Percentage)
	}
	if seg.Count != "800,000" {
		t.Errorf("Count = %q, want 800,000", seg.Count)
	}
	if seg.Color != Palette[0] {
		t.Errorf("Color = %q, want %q", seg.Color, Palette[0])
	}
}

func TestDecodeDay1Defaults(t *testing.T) {
	raw := map[string]interface{}{
		"clientName":   "Amy",
		"revenueGoal":  "$250,000",
		"targetMarket": "Couples in crisis",
	}

	d := DecodeDay1(raw)

	if d.PricePerClient.Float() != DefaultPricePerClient {
		t.Errorf("PricePerClient = %v, want %v", d.PricePerClient, DefaultPricePerClient)
	}
	// 250,000 / 10,000 = 25
	if d.ClientsNeeded.Float() != 25 {
		t.Errorf("ClientsNeeded = %v, want 25", d.ClientsNeeded)
	}
	if len(d.TargetMarketSegments) != 1 {
		t.Fatalf("expected fallback segment, got %d", len(d.TargetMarketSegments))
	}
	seg := d.TargetMarketSegments[0]
	if seg.Name != "Total Market" || seg.Percentage.Float() != 100 {
		t.Errorf("fallback segment = %+v", seg)
	}
	if seg.Detail != "Couples in crisis" {
		t.Errorf("fallback detail = %q", seg.Detail)
	}
}

func TestDecodeDay1SegmentColorCycle(t *testing.T) {
	segs := make([]interface{}, 5)
	for i := range segs {
		segs[i] = map[string]interface{}{"name": "S", "percentage": 20.0}
	}
	d := DecodeDay1(map[string]interface{}{"targetMarketSegments": segs})

	if d.TargetMarketSegments[3].Color != Palette[3] {
		t.Errorf("fourth color = %q", d.TargetMarketSegments[3].Color)
	}
	// Fifth segment wraps back to the first palette entry.
	if d.TargetMarketSegments[4].Color != Palette[0] {
		t.Errorf("fifth color = %q, want %q", d.TargetMarketSegments[4].Color, Palette[0])
	}
}

func TestDecodeDay2(t *testing.T) {
	raw := map[string]interface{}{
		"clientName": "Amy",
		"mediaChannels": []interface{}{
			map[string]interface{}{
				"label":   "Read Newsletters",
				"percent": 85.0,
				"stat":    2400000.0, // number instead of string
			},
		},
		"offerStructure": map[string]interface{}{
			"plan": map[string]interface{}{
				"headline": "90-Day Roadmap",
				"bullets":  []interface{}{"Weekly calls", "Custom plan"},
			},
		},
	}

	d := DecodeDay2(raw)

	if d.MediaChannels[0].Stat != "2,400,000" {
		t.Errorf("Stat = %q, want 2,400,000", d.MediaChannels[0].Stat)
	}
	if d.OfferStructure.Plan.Headline != "90-Day Roadmap" {
		t.Errorf("Headline = %q", d.OfferStructure.Plan.Headline)
	}
	// Missing offer price falls back to the program price.
	if d.OfferPrice != "$10K" {
		t.Errorf("OfferPrice = %q, want $10K", d.OfferPrice)
	}
}

func TestDecodeDay3Backfill(t *testing.T) {
	raw := map[string]interface{}{
		"clientName":  "Amy",
		"revenueGoal": 500000.0,
	}

	d := DecodeDay3(raw)

	if d.PricePerClient.Float() != DefaultPricePerClient {
		t.Errorf("PricePerClient = %v", d.PricePerClient)
	}
	if d.RevenueChart.WeeklyClients.Float() != 1 {
		t.Errorf("WeeklyClients = %v, want 1", d.RevenueChart.WeeklyClients)
	}
	// 500,000 at 10,000/week = 50 weeks to goal.
	if d.RevenueChart.GoalWeeks.Float() != 50 {
		t.Errorf("GoalWeeks = %v, want 50", d.RevenueChart.GoalWeeks)
	}
}

func TestDecodeDay3KeepsExplicitChart(t *testing.T) {
	raw := map[string]interface{}{
		"revenueGoal":    500000.0,
		"pricePerClient": 10000.0,
		"revenueChart": map[string]interface{}{
			"weeklyClients": 2.0,
			"goalWeeks":     25.0,
		},
	}

	d := DecodeDay3(raw)
	if d.RevenueChart.WeeklyClients.Float() != 2 || d.RevenueChart.GoalWeeks.Float() != 25 {
		t.Errorf("chart = %+v, want explicit values kept", d.RevenueChart)
	}
}
