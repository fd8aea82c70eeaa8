package alerts

import (
	"fmt"
	"net/http"
)

// Header names for the alert side channel. Clients read these to show UI
// notifications; the server never parses them back.
const (
	AlertHeader    = "X-EventoApp-Alert"
	ErrorHeader    = "X-EventoApp-Error"
	ErrorKeyHeader = "X-EventoApp-Error-Key"
	ParamsHeader   = "X-EventoApp-Params"
)

// Alert is a structured UI notification rendered into response headers.
// Success alerts carry a translation key plus the entity id; failure alerts
// carry an error key plus a human-readable message.
type Alert struct {
	Domain  string
	Key     string
	Message string
	ID      string
}

// EntityCreated announces that a new entity with the given id was persisted.
func EntityCreated(domain, id string) Alert {
	return Alert{Domain: domain, Key: "created", ID: id}
}

// EntityUpdated announces that the entity with the given id was overwritten.
func EntityUpdated(domain, id string) Alert {
	return Alert{Domain: domain, Key: "updated", ID: id}
}

// EntityDeleted announces that the entity with the given id was removed.
func EntityDeleted(domain, id string) Alert {
	return Alert{Domain: domain, Key: "deleted", ID: id}
}

// Failure carries a validation error back to the client.
func Failure(domain, key, message string) Alert {
	return Alert{Domain: domain, Key: key, Message: message}
}

// Apply formats the alert into h. Failures set the error headers with the
// domain as parameter; successes set the alert key with the id as parameter.
func (a Alert) Apply(h http.Header) {
	if a.Message != "" {
		h.Set(ErrorHeader, a.Message)
		h.Set(ErrorKeyHeader, fmt.Sprintf("error.%s", a.Key))
		h.Set(ParamsHeader, a.Domain)
		return
	}
	h.Set(AlertHeader, fmt.Sprintf("eventoApp.%s.%s", a.Domain, a.Key))
	h.Set(ParamsHeader, a.ID)
}
