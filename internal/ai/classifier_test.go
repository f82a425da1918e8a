package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang Lang
		want Intent
	}{
		{"en schedule", "Can I book a demo?", LangEN, IntentSchedule},
		{"en schedule wins over pricing", "book an appointment, what's the price?", LangEN, IntentSchedule},
		{"en upper case", "BOOK an APPOINTMENT", LangEN, IntentSchedule},
		{"en pricing", "How much does it cost?", LangEN, IntentPricing},
		{"en pricing wins over escalate", "what pricing would a human quote me", LangEN, IntentPricing},
		{"en escalate", "I want a representative", LangEN, IntentEscalate},
		{"en escalate wins over integrations", "can an agent help with slack", LangEN, IntentEscalate},
		{"en integrations", "Do you support Zapier?", LangEN, IntentIntegrations},
		{"en general", "tell me a joke", LangEN, IntentGeneral},
		{"en empty", "", LangEN, IntentGeneral},
		{"fr schedule", "Je voudrais un RDV", LangFR, IntentSchedule},
		{"fr schedule prefix", "Quelles sont vos disponibilités?", LangFR, IntentSchedule},
		{"fr pricing accent", "Quel est le COÛT?", LangFR, IntentPricing},
		{"fr escalate", "Je veux parler à un humain", LangFR, IntentEscalate},
		{"fr integrations", "Avez-vous une intégration Outlook?", LangFR, IntentIntegrations},
		{"fr general", "bonjour", LangFR, IntentGeneral},
		{"fr ignores english keywords", "book an appointment", LangFR, IntentGeneral},
		{"en ignores french keywords", "un rendez-vous svp", LangEN, IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text, tt.lang))
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("book an appointment", LangEN), Classify("BOOK an APPOINTMENT", LangEN))
}

func TestClassifyDeterministic(t *testing.T) {
	inputs := []string{"", "price", "Slack + human", "réserver", "calendar cost agent zapier"}
	for _, lang := range []Lang{LangEN, LangFR} {
		for _, in := range inputs {
			first := Classify(in, lang)
			for i := 0; i < 50; i++ {
				assert.Equal(t, first, Classify(in, lang))
			}
		}
	}
}

func TestClassifyUnknownLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, IntentPricing, Classify("price?", Lang("de")))
}

func TestPriority(t *testing.T) {
	assert.Equal(t, []Intent{IntentSchedule, IntentPricing, IntentEscalate, IntentIntegrations}, Priority())
	for _, lang := range []Lang{LangEN, LangFR} {
		rules := keywordRules[lang]
		for i, intent := range Priority() {
			assert.Equal(t, intent, rules[i].intent, "lang %s", lang)
		}
	}
}
