package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mycompany/evento-service/internal/models"
)

// EventoStore is the durable persistence layer for eventos.
type EventoStore struct {
	pool *pgxpool.Pool
}

// NewEventoStore creates a connection pool and fails fast if DB is unreachable.
func NewEventoStore(dbURL string) (*EventoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &EventoStore{pool: pool}, nil
}

// Ping is used by the readiness endpoint to validate DB connectivity.
func (s *EventoStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (s *EventoStore) Close() {
	s.pool.Close()
}

// SaveEvento persists e. Without an id it inserts and returns the entity with
// the server-assigned id; with an id it upserts by primary key, so a PUT works
// whether or not the row already exists.
func (s *EventoStore) SaveEvento(ctx context.Context, e models.Evento) (models.Evento, error) {
	if e.ID == nil {
		var id int64
		err := s.pool.QueryRow(ctx, `
			INSERT INTO evento (nombre, descripcion, fecha)
			VALUES ($1, $2, $3)
			RETURNING id
		`, e.Nombre, e.Descripcion, e.Fecha).Scan(&id)
		if err != nil {
			return models.Evento{}, err
		}
		e.ID = &id
		return e, nil
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO evento (id, nombre, descripcion, fecha)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET nombre = EXCLUDED.nombre,
		    descripcion = EXCLUDED.descripcion,
		    fecha = EXCLUDED.fecha
	`, *e.ID, e.Nombre, e.Descripcion, e.Fecha)
	if err != nil {
		return models.Evento{}, err
	}

	// Keep the id sequence ahead of explicitly supplied ids so a later
	// insert without an id cannot collide.
	_, err = s.pool.Exec(ctx, `
		SELECT setval(pg_get_serial_sequence('evento', 'id'),
		              (SELECT GREATEST(MAX(id), 1) FROM evento))
	`)
	if err != nil {
		return models.Evento{}, err
	}

	return e, nil
}

// FindAllEventos returns every stored evento ordered by id.
func (s *EventoStore) FindAllEventos(ctx context.Context) ([]models.Evento, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, nombre, descripcion, fecha
		FROM evento
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var eventos []models.Evento
	for rows.Next() {
		var e models.Evento
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Descripcion, &e.Fecha); err != nil {
			return nil, err
		}
		eventos = append(eventos, e)
	}
	return eventos, rows.Err()
}

// FindEvento returns the evento with the given id, or ErrEventoNotFound.
func (s *EventoStore) FindEvento(ctx context.Context, id int64) (models.Evento, error) {
	var e models.Evento
	err := s.pool.QueryRow(ctx, `
		SELECT id, nombre, descripcion, fecha
		FROM evento
		WHERE id = $1
	`, id).Scan(&e.ID, &e.Nombre, &e.Descripcion, &e.Fecha)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.Evento{}, models.ErrEventoNotFound
	}
	if err != nil {
		return models.Evento{}, err
	}
	return e, nil
}

// DeleteEvento removes the evento with the given id. Deleting a missing id is
// not an error.
func (s *EventoStore) DeleteEvento(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM evento WHERE id = $1`, id)
	return err
}
