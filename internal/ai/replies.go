package ai

var replies = map[Lang]map[Intent]Reply{
	LangEN: {
		IntentSchedule: {
			Text:        "I can schedule an appointment for you. What date and time works best?",
			Suggestions: []string{"Tomorrow 2:00 PM", "Friday morning", "Next week"},
		},
		IntentPricing: {
			Text:        "Our plans start at Starter and scale with your call volume. Would you like me to send pricing?",
			Suggestions: []string{"Send pricing", "Talk to an agent", "Compare plans"},
		},
		IntentEscalate: {
			Text:        "I can connect you with our team. Would you prefer a callback or email?",
			Suggestions: []string{"Request callback", "Email", "Schedule a call"},
		},
		IntentIntegrations: {
			Text:        "Cliqo integrates with Google Calendar, Outlook, Slack, Zapier, Twilio, and more. Any specific integration in mind?",
			Suggestions: []string{"Google Calendar", "Slack", "Zapier"},
		},
		IntentGeneral: {
			Text:        "I can help with scheduling, call routing, and integrations. Tell me what you’d like to do.",
			Suggestions: []string{"Book appointment", "See pricing", "Talk to a human"},
		},
	},
	LangFR: {
		IntentSchedule: {
			Text:        "Je peux planifier un rendez‑vous pour vous. Quelle date et heure préférez‑vous?",
			Suggestions: []string{"Demain 14:00", "Vendredi matin", "Semaine prochaine"},
		},
		IntentPricing: {
			Text:        "Nos forfaits commencent à partir du plan Démarrage et s’adaptent à votre volume d’appels. Voulez‑vous que je vous envoie la grille tarifaire?",
			Suggestions: []string{"Envoyer les tarifs", "Parler à un agent", "Comparer les plans"},
		},
		IntentEscalate: {
			Text:        "Je peux vous mettre en relation avec un membre de l’équipe. Préférez‑vous être rappelé ou discuter par courriel?",
			Suggestions: []string{"Être rappelé", "Courriel", "Planifier un appel"},
		},
		IntentIntegrations: {
			Text:        "Cliqo s’intègre à Google Calendar, Outlook, Slack, Zapier, Twilio et plus encore. Souhaitez‑vous une intégration spécifique?",
			Suggestions: []string{"Google Calendar", "Slack", "Zapier"},
		},
		IntentGeneral: {
			Text:        "Je peux aider avec la planification, le routage d’appels, et les intégrations. Dites‑moi ce que vous souhaitez faire.",
			Suggestions: []string{"Planifier un rendez‑vous", "Voir les tarifs", "Parler à un humain"},
		},
	},
}

// Generate looks up the canned reply for an intent. The returned suggestions
// are a fresh copy, so callers may modify them.
func Generate(intent Intent, lang Lang) Reply {
	byIntent, ok := replies[lang]
	if !ok {
		byIntent = replies[LangEN]
	}
	r, ok := byIntent[intent]
	if !ok {
		r = byIntent[IntentGeneral]
	}
	return Reply{
		Text:        r.Text,
		Suggestions: append([]string(nil), r.Suggestions...),
	}
}
