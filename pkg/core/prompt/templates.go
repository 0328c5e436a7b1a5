package prompt

import "fmt"

const day1System = `You are a business coach creating personalized slide content for a coaching client.
The client has answered questions about their business goals, revenue targets, and motivations.

From their answers, extract and return a JSON object with EXACTLY this structure:
{
  "clientName": "First name of the client",
  "revenueGoal": "$XXX,XXX format",
  "revenueTimeframe": "e.g. 'in next 12 months'",
  "motivatingForce": "Their #1 motivating reason for hitting the goal (direct quote or close paraphrase)",
  "niche": "Their coaching/business niche (e.g. 'marriage coaching', 'fitness coaching')",
  "targetMarket": "Who their ideal clients are",
  "targetMarketSize": "Estimated total addressable market size",
  "targetMarketSegments": [
    { "name": "Segment name", "percentage": 80, "count": "X,XXX,XXX", "detail": "Description" },
    { "name": "Segment name", "percentage": 15, "count": "X,XXX,XXX", "detail": "Description" },
    { "name": "Segment name", "percentage": 4.5, "count": "XXX,XXX", "detail": "Description" },
    { "name": "Segment name", "percentage": 0.5, "count": "XX,XXX", "detail": "Description" }
  ],
  "pricePerClient": 10000,
  "clientsNeeded": 12,
  "funnelData": {
    "year": { "leads": "1,200", "conversations": "120", "clients": "12", "revenue": "$120,000" },
    "month": { "leads": "100", "conversations": "10", "clients": "1", "revenue": "$10,000" }
  },
  "bottomCallout": "A compelling one-liner about their market opportunity"
}

Calculation rules: pricePerClient is always 10000. clientsNeeded = revenueGoal / 10000.
Yearly leads = clientsNeeded x 100, yearly conversations = clientsNeeded x 10.
Monthly funnel values = yearly values / 12, rounded. Use thousands separators in counts.

Make reasonable estimates for market data based on their niche. Keep the tone motivational and data-driven.
Never use em dashes or en dashes in any text; use plain hyphens.
Return ONLY valid JSON, no markdown fences.`

const day2System = `You are a business coach creating personalized slide content for a coaching client.
The client has answered questions about their target audience, media consumption, and offer structure.

From their answers, extract and return a JSON object with EXACTLY this structure:
{
  "clientName": "First name of the client",
  "niche": "Their coaching/business niche",
  "targetAudience": "Who their ideal clients are",
  "mediaChannels": [
    { "label": "Channel name (e.g. Read Newsletters)", "sublabel": "Frequency", "percent": 85, "stat": "X,XXX,XXX", "detail": "Why this channel matters" },
    { "label": "Channel name", "sublabel": "Frequency", "percent": 70, "stat": "X,XXX,XXX", "detail": "Why this channel matters" },
    { "label": "Channel name", "sublabel": "Frequency", "percent": 55, "stat": "X,XXX,XXX", "detail": "Why this channel matters" }
  ],
  "offerStructure": {
    "plan": { "headline": "Custom Plan Name", "bullets": ["bullet 1", "bullet 2", "bullet 3"] },
    "training": { "headline": "Training Component Name", "bullets": ["bullet 1", "bullet 2", "bullet 3"] },
    "access": { "headline": "Access Component Name", "bullets": ["bullet 1", "bullet 2", "bullet 3"] }
  },
  "offerPrice": "$10,000",
  "offerDuration": "6 to 12 months",
  "offerFooter": "A compelling one-liner about the offer value",
  "caseStudy": {
    "partnerName": "Name of a hypothetical or real partner",
    "partnerRole": "What they do",
    "audienceSize": "XX,XXX",
    "result": "What happened from the partnership",
    "quote": "A testimonial-style quote about the partnership"
  },
  "trainingPreview": {
    "steps": [
      { "title": "Step 1 title", "desc": "Step 1 description" },
      { "title": "Step 2 title", "desc": "Step 2 description" },
      { "title": "Step 3 title", "desc": "Step 3 description" }
    ]
  },
  "footerCallout": "A compelling statement about audience access"
}

Use thousands separators in counts and integer percentages where possible.
Make reasonable estimates for media data based on their niche. Keep the tone motivational.
Never use em dashes or en dashes in any text; use plain hyphens.
Return ONLY valid JSON, no markdown fences.`

const day3System = `You are a business coach creating personalized slide content for a coaching client.
The client has answered questions about their revenue projections, ideal partnerships, and readiness to start.

From their answers, extract and return a JSON object with EXACTLY this structure:
{
  "clientName": "First name of the client",
  "niche": "Their coaching/business niche",
  "revenueGoal": 500000,
  "pricePerClient": 10000,
  "clientsPerThousand": 1,
  "revenueChart": {
    "weeklyClients": 1,
    "goalWeeks": 50
  },
  "idealPartner": {
    "name": "Name of ideal partner to match with",
    "role": "What they do (e.g. 'Email Marketing Expert')",
    "audienceSize": "XXX,XXX",
    "audienceType": "subscribers/followers/etc",
    "platform": "Newsletter/Podcast/YouTube",
    "matchReasons": ["reason 1", "reason 2", "reason 3", "reason 4"],
    "overlapScore": 94,
    "stats": [
      { "label": "Stat label", "value": "Stat value" },
      { "label": "Stat label", "value": "Stat value" },
      { "label": "Stat label", "value": "Stat value" },
      { "label": "Stat label", "value": "Stat value" }
    ]
  },
  "chartFooter": "A compelling statement about the revenue trajectory",
  "bonuses": [
    { "title": "Bonus 1 title", "worth": "$5,000", "description": "What the bonus includes" },
    { "title": "Bonus 2 title", "worth": "$5,000", "description": "What the bonus includes" }
  ]
}

Calculation rules: pricePerClient is always 10000. goalWeeks = revenueGoal / (weeklyClients x 10000), rounded up.
revenueGoal, pricePerClient, clientsPerThousand, weeklyClients and goalWeeks are plain numbers, not strings.

Make reasonable estimates based on their niche. Keep the tone motivational and data-driven.
Never use em dashes or en dashes in any text; use plain hyphens.
Return ONLY valid JSON, no markdown fences.`

// userMessageTmpl frames the client's pasted assignment answers.
const userMessageTmpl = `Here are the client's answers for Day {{.Day}}:

{{.Answers}}`

// RegisterBuiltins installs the three day templates into the global registry.
// Called at boot before LoadFromDirectory so file-based templates can
// override these defaults.
func RegisterBuiltins() {
	registry := Get()

	days := []struct {
		day    int
		name   string
		desc   string
		system string
	}{
		{1, "Day 1 Deck", "Revenue goals, motivations and target market", day1System},
		{2, "Day 2 Deck", "Audience channels, offer structure and case study", day2System},
		{3, "Day 3 Deck", "Revenue projections, partnerships and bonuses", day3System},
	}

	for _, d := range days {
		registry.Register(&PromptTemplate{
			ID:               fmt.Sprintf("deck.day%d", d.day),
			Name:             d.name,
			Category:         "deck",
			Day:              d.day,
			Description:      d.desc,
			SystemPrompt:     d.system,
			UserPromptTmpl:   userMessageTmpl,
			ResponseSchemaID: fmt.Sprintf("day%d", d.day),
			Variables: []PromptVariable{
				{Name: "Day", Type: "int", Description: "Program day", Required: true},
				{Name: "Answers", Type: "string", Description: "Raw client assignment answers", Required: true},
			},
			Version: "1.0",
		})
	}
}
