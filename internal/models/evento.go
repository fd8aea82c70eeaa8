package models

import (
	"errors"
	"time"
)

// ErrEventoNotFound is returned by lookups when no row matches the id.
// Absence is a normal outcome, not a failure.
var ErrEventoNotFound = errors.New("evento not found")

// Evento is the request/response payload for the /api/eventos resource.
// A nil ID marks the entity as new; the store assigns one on first save.
type Evento struct {
	ID          *int64     `json:"id,omitempty"`
	Nombre      *string    `json:"nombre,omitempty"`
	Descripcion *string    `json:"descripcion,omitempty"`
	Fecha       *time.Time `json:"fecha,omitempty"`
}
