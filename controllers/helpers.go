package controllers

import (
	"boutique-admin/models"
	"boutique-admin/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError maps service errors to a status code and a generic body.
// Validation failures are the only ones whose detail reaches the client.
func respondError(c *gin.Context, err error, notFoundMsg, internalMsg string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: verr.Error()})
	case errors.Is(err, services.ErrConflict):
		log.Info().Err(err).Str("path", c.FullPath()).Msg("resource still referenced")
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Resource is still referenced by existing orders"})
	case errors.Is(err, services.ErrNotFound):
		log.Info().Err(err).Str("path", c.FullPath()).Msg("resource not found")
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: notFoundMsg})
	default:
		log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.FullPath()).Msg(internalMsg)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: internalMsg})
	}
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := services.ParseID("id", c.Param("id"))
	if err != nil {
		respondError(c, err, "", "")
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context, err error) {
	log.Debug().Err(err).Str("path", c.FullPath()).Msg("invalid request body")
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
}
