package ai

// Lang is a supported conversation language.
type Lang string

const (
	LangEN Lang = "en"
	LangFR Lang = "fr"
)

// Valid reports whether l is one of the supported languages.
func (l Lang) Valid() bool {
	return l == LangEN || l == LangFR
}

// Intent is the presumed purpose of a user message.
type Intent string

const (
	IntentSchedule     Intent = "schedule"
	IntentPricing      Intent = "pricing"
	IntentEscalate     Intent = "escalate"
	IntentIntegrations Intent = "integrations"
	IntentGeneral      Intent = "general"
)

// Reply is a canned assistant answer with follow-up suggestions.
type Reply struct {
	Text        string
	Suggestions []string
}

// Responder turns a user message into an intent and a reply. It knows nothing
// about sessions or storage.
type Responder interface {
	Respond(text string, lang Lang) (Intent, Reply)
}
