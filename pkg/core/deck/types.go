// Package deck holds the slide data contract: the per-day shapes the
// generator fills, the coercing decoder that makes them safe to render, and
// the derivation math behind every on-screen number. All operations are
// total; partial or garbage generator output degrades to safe defaults, it
// never panics a slide.
package deck

// DefaultPricePerClient is the program's fixed offer price.
const DefaultPricePerClient = 10000

// Palette mirrors the presentation layer's segment color tokens, assigned
// round-robin when the generator omits colors.
var Palette = []string{
	"hsl(160,30%,35%)",
	"hsl(145,50%,45%)",
	"hsl(45,95%,52%)",
	"hsl(25,100%,55%)",
}

// SegmentEntry is one named share of a market population.
type SegmentEntry struct {
	Name       string     `json:"name"`
	Percentage FlexNumber `json:"percentage"`
	Count      FlexString `json:"count"`
	Detail     string     `json:"detail"`
	Color      string     `json:"color,omitempty"`
}

// FunnelRow carries the display strings for one funnel timeframe.
type FunnelRow struct {
	Leads         FlexString `json:"leads"`
	Conversations FlexString `json:"conversations"`
	Clients       FlexString `json:"clients"`
	Revenue       FlexString `json:"revenue"`
}

type FunnelData struct {
	Year  FunnelRow `json:"year"`
	Month FunnelRow `json:"month"`
}

// Day1Data: revenue goal, motivation and target market breakdown.
type Day1Data struct {
	ClientName           string         `json:"clientName"`
	RevenueGoal          FlexString     `json:"revenueGoal"`
	RevenueTimeframe     string         `json:"revenueTimeframe"`
	MotivatingForce      string         `json:"motivatingForce"`
	Niche                string         `json:"niche"`
	TargetMarket         string         `json:"targetMarket"`
	TargetMarketSize     FlexString     `json:"targetMarketSize"`
	TargetMarketSegments []SegmentEntry `json:"targetMarketSegments"`
	PricePerClient       FlexNumber     `json:"pricePerClient"`
	ClientsNeeded        FlexNumber     `json:"clientsNeeded"`
	FunnelData           FunnelData     `json:"funnelData"`
	BottomCallout        string         `json:"bottomCallout"`
}

// MediaChannel is one audience channel with reach stats.
type MediaChannel struct {
	Label    string     `json:"label"`
	Sublabel string     `json:"sublabel"`
	Percent  FlexNumber `json:"percent"`
	Stat     FlexString `json:"stat"`
	Detail   string     `json:"detail"`
}

type OfferComponent struct {
	Headline string   `json:"headline"`
	Bullets  []string `json:"bullets"`
}

type OfferStructure struct {
	Plan     OfferComponent `json:"plan"`
	Training OfferComponent `json:"training"`
	Access   OfferComponent `json:"access"`
}

type CaseStudy struct {
	PartnerName  string     `json:"partnerName"`
	PartnerRole  string     `json:"partnerRole"`
	AudienceSize FlexString `json:"audienceSize"`
	Result       string     `json:"result"`
	Quote        string     `json:"quote"`
}

type TrainingStep struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type TrainingPreview struct {
	Steps []TrainingStep `json:"steps"`
}

// Day2Data: audience channels, offer structure and case study.
type Day2Data struct {
	ClientName      string          `json:"clientName"`
	Niche           string          `json:"niche"`
	TargetAudience  string          `json:"targetAudience"`
	MediaChannels   []MediaChannel  `json:"mediaChannels"`
	OfferStructure  OfferStructure  `json:"offerStructure"`
	OfferPrice      FlexString      `json:"offerPrice"`
	OfferDuration   string          `json:"offerDuration"`
	OfferFooter     string          `json:"offerFooter"`
	CaseStudy       CaseStudy       `json:"caseStudy"`
	TrainingPreview TrainingPreview `json:"trainingPreview"`
	FooterCallout   string          `json:"footerCallout"`
}

// RevenueChartParams parameterizes the cumulative revenue projection.
type RevenueChartParams struct {
	WeeklyClients FlexNumber `json:"weeklyClients"`
	GoalWeeks     FlexNumber `json:"goalWeeks"`
}

type PartnerStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type IdealPartner struct {
	Name         string        `json:"name"`
	Role         string        `json:"role"`
	AudienceSize FlexString    `json:"audienceSize"`
	AudienceType string        `json:"audienceType"`
	Platform     string        `json:"platform"`
	MatchReasons []string      `json:"matchReasons"`
	OverlapScore FlexNumber    `json:"overlapScore"`
	Stats        []PartnerStat `json:"stats"`
}

type Bonus struct {
	Title       string     `json:"title"`
	Worth       FlexString `json:"worth"`
	Description string     `json:"description"`
}

// Day3Data: revenue projection, ideal partner and bonuses.
type Day3Data struct {
	ClientName         string             `json:"clientName"`
	Niche              string             `json:"niche"`
	RevenueGoal        FlexNumber         `json:"revenueGoal"`
	PricePerClient     FlexNumber         `json:"pricePerClient"`
	ClientsPerThousand FlexNumber         `json:"clientsPerThousand"`
	RevenueChart       RevenueChartParams `json:"revenueChart"`
	IdealPartner       IdealPartner       `json:"idealPartner"`
	ChartFooter        string             `json:"chartFooter"`
	Bonuses            []Bonus            `json:"bonuses"`
}

// DayMeta drives the presentation layer's slide navigation.
type DayMeta struct {
	Day         int    `json:"day"`
	Label       string `json:"label"`
	Description string `json:"description"`
	SlideRange  string `json:"slideRange"`
	SlideCount  int    `json:"slideCount"`
}

var dayMeta = []DayMeta{
	{Day: 1, Label: "Day 1", Description: "Revenue goals, motivations & target market", SlideRange: "Slides 1-3", SlideCount: 3},
	{Day: 2, Label: "Day 2", Description: "Audience channels, offer structure & case study", SlideRange: "Slides 4-7", SlideCount: 4},
	{Day: 3, Label: "Day 3", Description: "Revenue projections, partnerships & bonuses", SlideRange: "Slides 8-10", SlideCount: 3},
}

// Days returns the fixed per-day deck metadata.
func Days() []DayMeta {
	out := make([]DayMeta, len(dayMeta))
	copy(out, dayMeta)
	return out
}

// SlideCount returns how many slides a day's deck renders, 0 for unknown days.
func SlideCount(day int) int {
	for _, m := range dayMeta {
		if m.Day == day {
			return m.SlideCount
		}
	}
	return 0
}
