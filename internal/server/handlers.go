package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kiddoo/internal/analysis"
)

func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	mode, err := analysis.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()

	key := s.cache.key(req.Message, mode, req.History)
	if result, ok := s.cache.get(key); ok {
		s.metrics.RecordCacheHit(ctx)
		c.JSON(http.StatusOK, result.View())
		return
	}
	s.metrics.RecordCacheMiss(ctx)

	result, err := s.service.Analyze(ctx, req.Message, mode, req.History)
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		s.logger.ErrorContext(ctx, "analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "analysis failed"})
		return
	}

	// Critical results are never cached so every repeat triggers a
	// fresh SOS dispatch.
	if !result.AutonomousAction.SOSTriggered {
		s.cache.put(key, result)
	}

	c.JSON(http.StatusOK, result.View())
}

func (s *Server) handleSOSTrigger(c *gin.Context) {
	var req SOSRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
	}

	contacts := req.EmergencyContacts
	if len(contacts) == 0 {
		contacts = s.service.Contacts()
	}

	ctx := c.Request.Context()
	action := s.service.Dispatcher().Dispatch(ctx, contacts)
	for _, delivery := range action.ContactsNotified {
		s.metrics.RecordSOSDispatch(ctx, string(delivery.Status))
	}

	s.logger.InfoContext(ctx, "manual sos trigger",
		"contacts", len(contacts),
		"notified", len(action.ContactsNotified),
	)
	c.JSON(http.StatusOK, action)
}
