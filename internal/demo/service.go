package demo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nalin-pixel/cliqo-receptionist/internal/ai"
	"github.com/nalin-pixel/cliqo-receptionist/internal/observability/metrics"
	"github.com/nalin-pixel/cliqo-receptionist/pkg/logging"
)

var greetings = map[ai.Lang]string{
	ai.LangEN: "Hi! This is Cliqo, your AI receptionist. How can I help you today?",
	ai.LangFR: "Bonjour! Ici Cliqo, votre réceptionniste virtuelle. Comment puis‑je vous aider aujourd’hui?",
}

var escalationReplies = map[ai.Lang]string{
	ai.LangEN: "Thanks. A team member will reach out shortly.",
	ai.LangFR: "Merci. Un membre de notre équipe vous contactera sous peu.",
}

const (
	bookingReplyEN = "Great — I’ve booked that time for you on %s. You’ll receive a confirmation shortly."
	bookingReplyFR = "Parfait — j’ai réservé ce créneau pour vous le %s. Une confirmation vous sera envoyée."

	defaultLeadCompany = "Demo"
	startLeadMessage   = "Started demo"
)

type service struct {
	recorder  *Recorder
	responder ai.Responder
	metrics   *metrics.DemoMetrics
	logger    *logging.Logger
}

func NewService(recorder *Recorder, responder ai.Responder, m *metrics.DemoMetrics, logger *logging.Logger) Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &service{
		recorder:  recorder,
		responder: responder,
		metrics:   m,
		logger:    logger,
	}
}

// NewSessionID returns 12 hex characters of randomness. Uniqueness is
// best-effort; nothing checks for an existing session.
func NewSessionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func langOrDefault(l ai.Lang) ai.Lang {
	if l == "" {
		return ai.LangEN
	}
	return l
}

func (s *service) Start(ctx context.Context, req StartRequest) (StartResponse, error) {
	if err := check(req); err != nil {
		s.metrics.ObserveRejected("start")
		return StartResponse{}, err
	}
	lang := langOrDefault(req.Lang)
	sessionID := NewSessionID()
	greeting := greetings[lang]

	company := defaultLeadCompany
	if req.Company != nil && *req.Company != "" {
		company = *req.Company
	}
	message := startLeadMessage
	name := req.Name

	s.recorder.Record(ctx, sessionID, Lead{
		Name:    req.Name,
		Email:   sessionID + "@demo.local",
		Company: &company,
		Message: &message,
		Lang:    lang,
		Source:  SourceDemo,
	})
	s.recorder.Record(ctx, sessionID, Session{
		SessionID: sessionID,
		Name:      &name,
		Company:   req.Company,
		Lang:      lang,
	})
	s.recorder.Record(ctx, sessionID, TranscriptMessage{
		SessionID: sessionID,
		Role:      RoleAssistant,
		Text:      greeting,
		Lang:      lang,
	})
	s.recorder.Record(ctx, sessionID, Event{
		SessionID: sessionID,
		Type:      EventSessionStart,
		Data:      map[string]any{"lang": string(lang)},
	})

	s.logger.Info("demo: session started", "session_id", sessionID, "lang", lang)
	return StartResponse{SessionID: sessionID, Greeting: greeting}, nil
}

func (s *service) Message(ctx context.Context, req MessageRequest) (MessageResponse, error) {
	if err := check(req); err != nil {
		s.metrics.ObserveRejected("message")
		return MessageResponse{}, err
	}
	lang := langOrDefault(req.Lang)

	intent, reply := s.responder.Respond(req.Text, lang)
	s.metrics.ObserveIntent(string(intent), string(lang))

	s.recorder.Record(ctx, req.SessionID, TranscriptMessage{
		SessionID: req.SessionID,
		Role:      RoleUser,
		Text:      req.Text,
		Lang:      lang,
	})
	s.recorder.Record(ctx, req.SessionID, TranscriptMessage{
		SessionID: req.SessionID,
		Role:      RoleAssistant,
		Text:      reply.Text,
		Lang:      lang,
	})
	s.recorder.Record(ctx, req.SessionID, Event{
		SessionID: req.SessionID,
		Type:      EventMessage,
		Data:      map[string]any{"intent": string(intent)},
	})

	s.logger.Debug("demo: message handled", "session_id", req.SessionID, "intent", intent)
	return MessageResponse{Reply: reply.Text, Suggestions: reply.Suggestions}, nil
}

func (s *service) LogEvent(ctx context.Context, req EventRequest) (OKResponse, error) {
	if err := check(req); err != nil {
		s.metrics.ObserveRejected("event")
		return OKResponse{}, err
	}

	s.recorder.Record(ctx, req.SessionID, Event{
		SessionID: req.SessionID,
		Type:      *req.Type,
		Data:      req.Data,
	})
	return OKResponse{OK: true}, nil
}

func (s *service) Book(ctx context.Context, req BookRequest) (ReplyResponse, error) {
	if err := check(req); err != nil {
		s.metrics.ObserveRejected("book")
		return ReplyResponse{}, err
	}
	slot, err := ParseSlot(req.SlotISO)
	if err != nil {
		s.metrics.ObserveRejected("book")
		s.logger.Info("demo: booking rejected", "session_id", req.SessionID, "slot_iso", req.SlotISO)
		return ReplyResponse{}, err
	}
	lang := langOrDefault(req.Lang)
	channel := req.Channel
	if channel == "" {
		channel = ChannelWeb
	}

	format := bookingReplyEN
	if lang == ai.LangFR {
		format = bookingReplyFR
	}
	reply := fmt.Sprintf(format, FormatSlot(slot, lang))

	s.recorder.Record(ctx, req.SessionID, Appointment{
		SessionID: req.SessionID,
		SlotISO:   req.SlotISO,
		Name:      req.Name,
		Company:   req.Company,
		Lang:      lang,
		Channel:   channel,
	})
	s.recorder.Record(ctx, req.SessionID, TranscriptMessage{
		SessionID: req.SessionID,
		Role:      RoleAssistant,
		Text:      reply,
		Lang:      lang,
	})
	s.recorder.Record(ctx, req.SessionID, Event{
		SessionID: req.SessionID,
		Type:      EventBookingCreated,
		Data:      map[string]any{"slot_iso": req.SlotISO},
	})

	s.metrics.ObserveBooking(string(lang))
	s.logger.Info("demo: booking created", "session_id", req.SessionID, "slot_iso", req.SlotISO)
	return ReplyResponse{OK: true, Reply: reply}, nil
}

func (s *service) Escalate(ctx context.Context, req EscalateRequest) (ReplyResponse, error) {
	if err := check(req); err != nil {
		s.metrics.ObserveRejected("escalate")
		return ReplyResponse{}, err
	}
	lang := langOrDefault(req.Lang)
	reply := escalationReplies[lang]

	var value any
	if req.Value != nil {
		value = *req.Value
	}

	s.recorder.Record(ctx, req.SessionID, Event{
		SessionID: req.SessionID,
		Type:      EventEscalation,
		Data:      map[string]any{"channel": string(req.Channel), "value": value},
	})
	s.recorder.Record(ctx, req.SessionID, TranscriptMessage{
		SessionID: req.SessionID,
		Role:      RoleAssistant,
		Text:      reply,
		Lang:      lang,
	})

	s.logger.Info("demo: escalation requested", "session_id", req.SessionID, "channel", req.Channel)
	return ReplyResponse{OK: true, Reply: reply}, nil
}

func (s *service) CaptureLead(ctx context.Context, req LeadRequest) (OKResponse, error) {
	if err := check(req); err != nil {
		s.metrics.ObserveRejected("lead")
		return OKResponse{}, err
	}

	s.recorder.Record(ctx, "", Lead{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
		Lang:    langOrDefault(req.Lang),
		Source:  SourceCTA,
	})
	return OKResponse{OK: true}, nil
}
