package demo

import (
	"context"

	"github.com/nalin-pixel/cliqo-receptionist/internal/ai"
)

const (
	CollectionLeads        = "demolead"
	CollectionTranscripts  = "demotranscript"
	CollectionSessions     = "demosession"
	CollectionEvents       = "demoevent"
	CollectionAppointments = "demoappointment"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Source string

const (
	SourceDemo Source = "demo"
	SourceCTA  Source = "cta"
)

// AppointmentChannel is where a booking was made.
type AppointmentChannel string

const (
	ChannelWeb   AppointmentChannel = "web"
	ChannelChat  AppointmentChannel = "chat"
	ChannelPhone AppointmentChannel = "phone"
)

// EscalationChannel is how the visitor wants to be contacted.
type EscalationChannel string

const (
	EscalateCallback EscalationChannel = "callback"
	EscalateEmail    EscalationChannel = "email"
)

// Event types written by the handlers. Clients may log any other type.
const (
	EventSessionStart   = "session_start"
	EventMessage        = "message"
	EventBookingCreated = "booking_created"
	EventEscalation     = "escalation"
)

// Record is one document destined for a collection. Records are never
// updated once written.
type Record interface {
	Collection() string
}

type Lead struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Company *string `json:"company"`
	Message *string `json:"message"`
	Lang    ai.Lang `json:"lang" validate:"oneof=en fr"`
	Source  Source  `json:"source" validate:"oneof=demo cta"`
}

type TranscriptMessage struct {
	SessionID string  `json:"session_id" validate:"min=8"`
	Role      Role    `json:"role" validate:"oneof=user assistant"`
	Text      string  `json:"text" validate:"required"`
	Lang      ai.Lang `json:"lang" validate:"oneof=en fr"`
}

type Session struct {
	SessionID  string  `json:"session_id" validate:"min=8"`
	Name       *string `json:"name"`
	Company    *string `json:"company"`
	Lang       ai.Lang `json:"lang" validate:"oneof=en fr"`
	LastIntent *string `json:"last_intent"`
}

// Event is a free-form analytics record; Data has no schema.
type Event struct {
	SessionID string         `json:"session_id" validate:"min=8"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
}

type Appointment struct {
	SessionID string             `json:"session_id" validate:"min=8"`
	SlotISO   string             `json:"slot_iso" validate:"required"`
	Name      *string            `json:"name"`
	Company   *string            `json:"company"`
	Lang      ai.Lang            `json:"lang" validate:"oneof=en fr"`
	Channel   AppointmentChannel `json:"channel" validate:"oneof=web chat phone"`
}

func (Lead) Collection() string              { return CollectionLeads }
func (TranscriptMessage) Collection() string { return CollectionTranscripts }
func (Session) Collection() string           { return CollectionSessions }
func (Event) Collection() string             { return CollectionEvents }
func (Appointment) Collection() string       { return CollectionAppointments }

// Store is the persistence gateway.
type Store interface {
	Insert(ctx context.Context, collection string, v any) (string, error)
}

type StartRequest struct {
	Name    string  `json:"name" validate:"required"`
	Company *string `json:"company"`
	Lang    ai.Lang `json:"lang" validate:"omitempty,oneof=en fr"`
}

type StartResponse struct {
	SessionID string `json:"session_id"`
	Greeting  string `json:"greeting"`
}

type MessageRequest struct {
	SessionID string  `json:"session_id" validate:"min=8"`
	Text      string  `json:"text" validate:"required"`
	Lang      ai.Lang `json:"lang" validate:"omitempty,oneof=en fr"`
}

type MessageResponse struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions"`
}

type EventRequest struct {
	SessionID string         `json:"session_id" validate:"min=8"`
	Type      *string        `json:"type" validate:"required"`
	Data      map[string]any `json:"data"`
}

type BookRequest struct {
	SessionID string             `json:"session_id" validate:"min=8"`
	SlotISO   string             `json:"slot_iso"`
	Lang      ai.Lang            `json:"lang" validate:"omitempty,oneof=en fr"`
	Name      *string            `json:"name"`
	Company   *string            `json:"company"`
	Channel   AppointmentChannel `json:"channel" validate:"omitempty,oneof=web chat phone"`
}

type EscalateRequest struct {
	SessionID string            `json:"session_id" validate:"min=8"`
	Channel   EscalationChannel `json:"channel" validate:"required,oneof=callback email"`
	Value     *string           `json:"value"`
	Lang      ai.Lang           `json:"lang" validate:"omitempty,oneof=en fr"`
}

type LeadRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Company *string `json:"company"`
	Message *string `json:"message"`
	Lang    ai.Lang `json:"lang" validate:"omitempty,oneof=en fr"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type ReplyResponse struct {
	OK    bool   `json:"ok"`
	Reply string `json:"reply"`
}

// Service runs the demo operations. Only ErrInvalidInput ever comes back;
// persistence problems stay inside.
type Service interface {
	Start(ctx context.Context, req StartRequest) (StartResponse, error)
	Message(ctx context.Context, req MessageRequest) (MessageResponse, error)
	LogEvent(ctx context.Context, req EventRequest) (OKResponse, error)
	Book(ctx context.Context, req BookRequest) (ReplyResponse, error)
	Escalate(ctx context.Context, req EscalateRequest) (ReplyResponse, error)
	CaptureLead(ctx context.Context, req LeadRequest) (OKResponse, error)
}
