package v1

import (
	"context"

	"github.com/google/uuid"
)

// RunTrigger identifies what caused a script run
type RunTrigger string

const (
	RunTriggerManual   RunTrigger = "manual"   // Started by an operator
	RunTriggerSchedule RunTrigger = "schedule" // Started by the host scheduler
	RunTriggerHTTP     RunTrigger = "http"     // Started by an incoming request
	RunTriggerEvent    RunTrigger = "event"    // Started by a storefront event
)

// IsValid checks if the run trigger is a valid value
func (t RunTrigger) IsValid() bool {
	switch t {
	case RunTriggerManual, RunTriggerSchedule, RunTriggerHTTP, RunTriggerEvent:
		return true
	}
	return false
}

// String returns the string representation of the run trigger
func (t RunTrigger) String() string {
	return string(t)
}

// AllRunTriggers returns all valid run triggers
func AllRunTriggers() []RunTrigger {
	return []RunTrigger{
		RunTriggerManual,
		RunTriggerSchedule,
		RunTriggerHTTP,
		RunTriggerEvent,
	}
}

// ScriptContext is handed to a script's Run entry point. It carries the
// request/response pair when the run was triggered over HTTP, the run
// parameters configured on the host, and the Host root object.
type ScriptContext interface {
	// Host returns the root of the host object model.
	Host() Host

	// RunID returns the unique id of this script run.
	RunID() uuid.UUID

	// TriggeredBy returns what caused this run.
	TriggeredBy() RunTrigger

	// Request returns the inbound request, or nil when the run was not
	// triggered over HTTP.
	Request() Request

	// Response returns the outbound response, or nil when the run was not
	// triggered over HTTP.
	Response() Response

	// Parameter returns the named run parameter configured on the host.
	Parameter(name string) (string, bool)

	// ParameterNames returns the names of all configured run parameters.
	ParameterNames() []string
}

// Request is the inbound HTTP request of an http-triggered run.
type Request interface {
	Method() string
	URL() string
	RemoteAddr() string
	Query(name string) (string, bool)
	Form(name string) (string, bool)
	Header(name string) (string, bool)
	Cookie(name string) (string, bool)
	Body(ctx context.Context) ([]byte, error)
}

// Response is the outbound HTTP response of an http-triggered run.
type Response interface {
	SetStatus(code int)
	SetHeader(name, value string)
	SetContentType(contentType string)
	Write(ctx context.Context, body []byte) error
	Redirect(ctx context.Context, url string) error
}

// Host is the root of the object model the scripting host exposes.
type Host interface {
	Customers() Customers
	Products() Products
	Orders() Orders
	Storage() FileDirectory
	Pdf() Pdf
	Messages() Messages
	Budgets() Budgets
	Tools() Tools
	Logger() Logger
	Parse() Parse
	ExternalAPI() ExternalAPI
	Database() Database
	CustomData() CustomData
}
