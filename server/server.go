package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/existflow/tasklist/internal/logger"
	"github.com/existflow/tasklist/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server exposes one in-memory task list session over HTTP
type Server struct {
	session *Session
	echo    *echo.Echo
}

// New creates a server with an empty session
func New(env store.Env) *Server {
	s := &Server{session: NewSession(env)}
	s.setupEcho()
	return s
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(requestLogger)
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Health check
	e.GET("/health", s.handleHealth)

	api := e.Group("/api/v1")
	api.GET("/state", s.handleState)
	api.PUT("/input", s.handleSetInput)

	api.POST("/tasks", s.handleAddTask)
	api.POST("/tasks/:id/toggle", s.handleToggle)
	api.POST("/tasks/:id/delete", s.handleRequestDelete)
	api.POST("/tasks/:id/edit", s.handleOpenEdit)

	api.POST("/delete/confirm", s.apply(store.ConfirmDelete{}))
	api.POST("/delete/cancel", s.apply(store.CancelDelete{}))

	api.POST("/complete-all", s.apply(store.CompleteAll{}))
	api.POST("/undo", s.apply(store.UndoCompleteAll{}))

	api.POST("/delete-all", s.apply(store.RequestDeleteAll{}))
	api.POST("/delete-all/confirm", s.apply(store.ConfirmDeleteAll{}))
	api.POST("/delete-all/cancel", s.apply(store.CancelDeleteAll{}))

	api.PUT("/edit", s.handleUpdateDraft)
	api.POST("/edit/commit", s.apply(store.CommitEdit{}))
	api.POST("/edit/close", s.apply(store.CloseEdit{}))

	s.echo = e
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start serves on addr until Shutdown is called
func (s *Server) Start(addr string) error {
	logger.Info("Session server listening", logger.F("addr", addr))
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Session returns the session served by s
func (s *Server) Session() *Session {
	return s.session
}

func (s *Server) respond(c echo.Context, a store.Action) error {
	return c.JSON(http.StatusOK, NewStateView(s.session.Apply(a)))
}

// apply builds a handler for an action that needs no request data
func (s *Server) apply(a store.Action) echo.HandlerFunc {
	return func(c echo.Context) error {
		return s.respond(c, a)
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(c echo.Context) error {
	return c.JSON(http.StatusOK, NewStateView(s.session.State()))
}

func (s *Server) handleSetInput(c echo.Context) error {
	var req TextRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	text := ""
	if req.Text != nil {
		text = *req.Text
	}
	return s.respond(c, store.SetInput{Text: text})
}

// handleAddTask adds the given text, or the current draft when text is omitted
func (s *Server) handleAddTask(c echo.Context) error {
	var req TextRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	state := s.session.ApplyWith(func(cur store.State) store.Action {
		if req.Text != nil {
			return store.AddTask{Text: *req.Text}
		}
		return store.AddTask{Text: cur.Input()}
	})
	return c.JSON(http.StatusOK, NewStateView(state))
}

func (s *Server) handleToggle(c echo.Context) error {
	return s.respond(c, store.ToggleComplete{ID: c.Param("id")})
}

func (s *Server) handleRequestDelete(c echo.Context) error {
	return s.respond(c, store.RequestDelete{ID: c.Param("id")})
}

// handleOpenEdit opens the edit dialog. The draft defaults to the task's
// current text.
func (s *Server) handleOpenEdit(c echo.Context) error {
	var req TextRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	id := c.Param("id")
	state := s.session.ApplyWith(func(cur store.State) store.Action {
		if req.Text != nil {
			return store.OpenEdit{ID: id, Text: *req.Text}
		}
		task, _ := cur.Task(id)
		return store.OpenEdit{ID: id, Text: task.Text}
	})
	return c.JSON(http.StatusOK, NewStateView(state))
}

func (s *Server) handleUpdateDraft(c echo.Context) error {
	var req DraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return s.respond(c, store.UpdateEditDraft{Text: req.Draft})
}
