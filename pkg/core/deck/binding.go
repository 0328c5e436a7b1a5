package deck

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatThousands renders a number with comma thousands separators.
// 1200000 -> "1,200,000". Fractions are dropped; slide counts are integers.
func FormatThousands(n float64) string {
	neg := n < 0
	v := int64(math.Round(math.Abs(n)))
	s := strconv.FormatInt(v, 10)
	if len(s) > 3 {
		var b strings.Builder
		rem := len(s) % 3
		if rem > 0 {
			b.WriteString(s[:rem])
		}
		for i := rem; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatCompact abbreviates large counts for tight slide layouts.
//
//	12,000,000 -> "12M"
//	12,500,000 -> "12.5M"
//	540,000    -> "540K"
//	850        -> "850"
//
// Strings that do not parse as numbers pass through unchanged.
func FormatCompact(v interface{}) string {
	var (
		n        float64
		original string
		isNum    bool
	)

	switch val := v.(type) {
	case float64:
		n, isNum = val, true
	case int:
		n, isNum = float64(val), true
	case FlexNumber:
		n, isNum = val.Float(), true
	case FlexString:
		original = string(val)
		if f := val.Num(); f != 0 || strings.TrimSpace(original) == "0" {
			n, isNum = f, true
		}
	case string:
		original = val
		if f := parseLooseNumber(val); f != 0 || strings.TrimSpace(val) == "0" {
			n, isNum = f, true
		}
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}

	if !isNum {
		return original
	}

	switch {
	case math.Abs(n) >= 1e6:
		if math.Mod(n, 1e6) == 0 {
			return fmt.Sprintf("%.0fM", n/1e6)
		}
		return fmt.Sprintf("%.1fM", n/1e6)
	case math.Abs(n) >= 1e3:
		return fmt.Sprintf("%.0fK", n/1e3)
	default:
		if original != "" {
			return original
		}
		return FormatThousands(n)
	}
}

// FormatCurrency renders a dollar amount in compact form: $1.2M, $120K, $850.
func FormatCurrency(n float64) string {
	switch {
	case math.Abs(n) >= 1e6:
		if math.Mod(n, 1e6) == 0 {
			return fmt.Sprintf("$%.0fM", n/1e6)
		}
		return fmt.Sprintf("$%.1fM", n/1e6)
	case math.Abs(n) >= 1e3:
		return fmt.Sprintf("$%.0fK", n/1e3)
	default:
		return fmt.Sprintf("$%.0f", n)
	}
}

// FunnelMetrics are the acquisition numbers implied by a revenue goal at a
// fixed price point. The funnel assumes 100 leads and 10 conversations per
// closed client.
type FunnelMetrics struct {
	ClientsNeeded         float64
	LeadsPerYear          float64
	ConversationsPerYear  float64
	LeadsPerMonth         float64
	ConversationsPerMonth float64
	ClientsPerMonth       float64
	RevenuePerMonth       float64
}

// DeriveFunnel computes the full funnel from an annual revenue goal and a
// per-client price. A non-positive goal or price yields the zero struct.
func DeriveFunnel(goal, price float64) FunnelMetrics {
	if goal <= 0 || price <= 0 {
		return FunnelMetrics{}
	}
	clients := math.Ceil(goal / price)
	return FunnelMetrics{
		ClientsNeeded:         clients,
		LeadsPerYear:          clients * 100,
		ConversationsPerYear:  clients * 10,
		LeadsPerMonth:         math.Round(clients * 100 / 12),
		ConversationsPerMonth: math.Round(clients * 10 / 12),
		ClientsPerMonth:       math.Round(clients / 12),
		RevenuePerMonth:       math.Round(goal / 12),
	}
}

// DeriveSegmentShare resolves each segment's absolute count. An explicit
// positive count on the segment wins; otherwise the count is the segment's
// percentage of the total market.
func DeriveSegmentShare(segments []SegmentEntry, totalCount float64) []float64 {
	out := make([]float64, len(segments))
	for i, seg := range segments {
		if c := seg.Count.Num(); c > 0 {
			out[i] = c
			continue
		}
		out[i] = math.Round(seg.Percentage.Float() / 100 * totalCount)
	}
	return out
}

// SelectAll selects the aggregate market view rather than a single segment.
const SelectAll = -1

// ActiveView is the market slice currently highlighted on a slide.
type ActiveView struct {
	Name   string
	Count  string
	Detail string
	All    bool
}

// SelectActiveSegment resolves a segment selection to displayable values.
// SelectAll or any out-of-range index returns the aggregate view.
func SelectActiveSegment(segments []SegmentEntry, totalCount string, selection int) ActiveView {
	if selection < 0 || selection >= len(segments) {
		return ActiveView{Name: "Total Market", Count: totalCount, All: true}
	}
	seg := segments[selection]
	count := string(seg.Count)
	if count == "" {
		shares := DeriveSegmentShare(segments, parseLooseNumber(totalCount))
		count = FormatThousands(shares[selection])
	}
	return ActiveView{Name: seg.Name, Count: count, Detail: seg.Detail}
}

// RevenuePoint is one step of the cumulative revenue projection.
type RevenuePoint struct {
	Week    int     `json:"week"`
	Revenue float64 `json:"revenue"`
	Label   string  `json:"label"`
}

// BuildRevenueSeries projects cumulative revenue week by week until the goal
// is passed, with two weeks of headroom capped at 115% of the goal. The
// series is at least 6 points long. When it grows past 12 points the labels
// switch to monthly so the axis stays readable. Non-positive inputs yield a
// flat zero series.
func BuildRevenueSeries(weeklyClients, pricePerClient, goal float64) []RevenuePoint {
	perWeek := weeklyClients * pricePerClient
	if perWeek <= 0 || goal <= 0 {
		points := make([]RevenuePoint, 6)
		for i := range points {
			points[i] = RevenuePoint{Week: i + 1, Label: fmt.Sprintf("W%d", i+1)}
		}
		return points
	}

	weeksToGoal := int(math.Ceil(goal / perWeek))
	total := weeksToGoal + 2
	if total < 6 {
		total = 6
	}
	headroom := goal * 1.15
	monthly := total > 12

	points := make([]RevenuePoint, total)
	for i := range points {
		week := i + 1
		rev := math.Min(float64(week)*perWeek, headroom)
		label := fmt.Sprintf("W%d", week)
		if monthly {
			label = ""
			if week%4 == 0 {
				label = fmt.Sprintf("M%d", week/4)
			}
		}
		points[i] = RevenuePoint{Week: week, Revenue: rev, Label: label}
	}
	return points
}

// CountryShare is one country's slice of the addressable market.
type CountryShare struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Count   float64 `json:"count"`
	Percent float64 `json:"percent"`
}

var countryNames = map[string]string{
	"us": "United States",
	"uk": "United Kingdom",
	"ca": "Canada",
	"au": "Australia",
}

// CountryBreakdown converts a loose country->count map into the fixed
// US/UK/CA/AU display order with percentages. The total comes from a "total"
// key when present, otherwise from summing the listed countries.
func CountryBreakdown(countryData map[string]string) []CountryShare {
	order := []string{"us", "uk", "ca", "au"}

	total := parseLooseNumber(countryData["total"])
	if total <= 0 {
		for _, code := range order {
			total += parseLooseNumber(countryData[code])
		}
	}

	out := make([]CountryShare, 0, len(order))
	for _, code := range order {
		raw, ok := countryData[code]
		if !ok {
			continue
		}
		count := parseLooseNumber(raw)
		share := CountryShare{Code: code, Name: countryNames[code], Count: count}
		if total > 0 {
			share.Percent = math.Round(count / total * 1000) / 10
		}
		out = append(out, share)
	}
	return out
}

// RemainderShare is the percentage of the market not covered by the listed
// segments, clamped at zero when the segments oversubscribe.
func RemainderShare(segments []SegmentEntry) float64 {
	var sum float64
	for _, seg := range segments {
		sum += seg.Percentage.Float()
	}
	return math.Max(0, 100-sum)
}
