package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mycompany/evento-service/internal/alerts"
	"github.com/mycompany/evento-service/internal/models"
)

// EventoRepository is the persistence capability set the handlers depend on.
// SaveEvento assigns an id when the entity has none, otherwise upserts by id.
type EventoRepository interface {
	SaveEvento(ctx context.Context, e models.Evento) (models.Evento, error)
	FindAllEventos(ctx context.Context) ([]models.Evento, error)
	FindEvento(ctx context.Context, id int64) (models.Evento, error)
	DeleteEvento(ctx context.Context, id int64) error
}

// RegisterEventoRoutes registers the evento CRUD endpoints.
//
// POST   /eventos      create; 400 when the payload already carries an id
// PUT    /eventos      upsert; falls back to create when the id is absent
// GET    /eventos      list all
// GET    /eventos/:id  fetch one; 404 when absent
// DELETE /eventos/:id  delete; always 200
func RegisterEventoRoutes(r gin.IRoutes, repo EventoRepository, log zerolog.Logger) {
	r.POST("/eventos", func(c *gin.Context) {
		var e models.Evento
		if err := c.ShouldBindJSON(&e); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}
		createEvento(c, repo, log, e)
	})

	r.PUT("/eventos", func(c *gin.Context) {
		var e models.Evento
		if err := c.ShouldBindJSON(&e); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		// A PUT without an id keeps POST semantics, including its validation.
		if e.ID == nil {
			createEvento(c, repo, log, e)
			return
		}

		log.Debug().Int64("id", *e.ID).Msg("REST request to update Evento")

		saved, err := repo.SaveEvento(c.Request.Context(), e)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db save failed"})
			return
		}

		alerts.EntityUpdated("evento", strconv.FormatInt(*e.ID, 10)).Apply(c.Writer.Header())
		c.JSON(http.StatusOK, saved)
	})

	r.GET("/eventos", func(c *gin.Context) {
		log.Debug().Msg("REST request to get all Eventos")

		eventos, err := repo.FindAllEventos(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}
		if eventos == nil {
			eventos = []models.Evento{}
		}
		c.JSON(http.StatusOK, eventos)
	})

	r.GET("/eventos/:id", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		log.Debug().Int64("id", id).Msg("REST request to get Evento")

		e, err := repo.FindEvento(c.Request.Context(), id)
		if errors.Is(err, models.ErrEventoNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}
		c.JSON(http.StatusOK, e)
	})

	r.DELETE("/eventos/:id", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		log.Debug().Int64("id", id).Msg("REST request to delete Evento")

		// Deleting a missing id is indistinguishable from a successful delete.
		if err := repo.DeleteEvento(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db delete failed"})
			return
		}

		alerts.EntityDeleted("evento", strconv.FormatInt(id, 10)).Apply(c.Writer.Header())
		c.Status(http.StatusOK)
	})
}

// createEvento persists a new entity. Shared by POST and the id-less PUT path
// so both report identical statuses and headers.
func createEvento(c *gin.Context, repo EventoRepository, log zerolog.Logger, e models.Evento) {
	log.Debug().Interface("evento", e).Msg("REST request to save Evento")

	if e.ID != nil {
		alerts.Failure("evento", "idexists", "A new evento cannot already have an ID").Apply(c.Writer.Header())
		c.Status(http.StatusBadRequest)
		return
	}

	saved, err := repo.SaveEvento(c.Request.Context(), e)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db save failed"})
		return
	}

	id := strconv.FormatInt(*saved.ID, 10)
	c.Header("Location", fmt.Sprintf("/api/eventos/%s", id))
	alerts.EntityCreated("evento", id).Apply(c.Writer.Header())
	c.JSON(http.StatusCreated, saved)
}
