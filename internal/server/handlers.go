package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/cover-letter/internal/backend"
	"github.com/spigell/cover-letter/internal/letter"
	"github.com/spigell/cover-letter/internal/logger"
)

const healthMessage = "Cover Letter Generator API is running"

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) generate(c *gin.Context) {
	log := requestLogger(c, s.logger)

	var in letter.FormInput
	if err := c.ShouldBindJSON(&in); err != nil {
		log.Debug("rejecting malformed request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	res, err := s.generator.Resolve(c.Request.Context(), in)
	if err != nil {
		var verr *letter.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: verr.Message})
			return
		}

		// The orchestrator only fails validation; other generators may fail otherwise.
		_ = c.Error(err)
		log.Error("cover letter generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	in = in.Normalize()
	log.Info("cover letter served",
		append(logger.FormFields(in.CompanyName, in.RoleName),
			zap.String(logger.FieldSource, string(res.Source)))...,
	)

	c.JSON(http.StatusOK, backend.GenerateResponse{
		Success:     true,
		CoverLetter: res.Letter,
		CompanyName: in.CompanyName,
		RoleName:    in.RoleOrDefault(letter.DefaultRole),
	})
}

func (s *Server) health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, backend.HealthStatus{
		Status:  "healthy",
		Message: healthMessage,
	})
}
