package ai

import "strings"

type keywordRule struct {
	intent   Intent
	keywords []string
}

// keywordRules lists rules in priority order; the first rule with a matching
// substring wins.
var keywordRules = map[Lang][]keywordRule{
	LangEN: {
		{IntentSchedule, []string{"appointment", "book", "schedule", "calendar", "availability"}},
		{IntentPricing, []string{"price", "pricing", "cost"}},
		{IntentEscalate, []string{"human", "agent", "representative"}},
		{IntentIntegrations, []string{"integration", "google", "outlook", "slack", "zapier", "twilio"}},
	},
	LangFR: {
		{IntentSchedule, []string{"rendez-vous", "rdv", "planifier", "calendrier", "disponibil"}},
		{IntentPricing, []string{"prix", "tarif", "coût"}},
		{IntentEscalate, []string{"humain", "agent", "représentant"}},
		{IntentIntegrations, []string{"intégration", "google", "outlook", "slack", "zapier", "twilio"}},
	},
}

// Priority returns the order in which intents are tested.
func Priority() []Intent {
	rules := keywordRules[LangEN]
	out := make([]Intent, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.intent)
	}
	return out
}

// Classify maps a message to an intent by case-insensitive substring match.
// Unknown languages use the English keywords.
func Classify(text string, lang Lang) Intent {
	rules, ok := keywordRules[lang]
	if !ok {
		rules = keywordRules[LangEN]
	}

	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.intent
			}
		}
	}
	return IntentGeneral
}
