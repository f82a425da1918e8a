package ai

// Scripted is the keyword-driven Responder used by the demo.
type Scripted struct{}

func NewScripted() *Scripted {
	return &Scripted{}
}

func (Scripted) Respond(text string, lang Lang) (Intent, Reply) {
	intent := Classify(text, lang)
	return intent, Generate(intent, lang)
}
