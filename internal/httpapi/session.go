package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kwen-qodo/screenshot-to-code/internal/session"
	"github.com/kwen-qodo/screenshot-to-code/internal/utils"
)

const (
	sessionHeader     = "X-Session-ID"
	sessionCookieName = "session_id"
	sessionContextKey = "httpapi.session_id"
)

// sessionMiddleware ensures every /api request runs under a live session.
// The id comes from the X-Session-ID header or the session cookie; when
// neither resolves to a live session a fresh one is created. The effective id
// is echoed back on both header and cookie so the front-end can persist it.
func (s *Server) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id := c.Request().Header.Get(sessionHeader)
		if id == "" {
			if cookie, err := c.Cookie(sessionCookieName); err == nil {
				id = cookie.Value
			}
		}

		if id != "" {
			if _, err := s.sessions.Get(ctx, id); err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					return err
				}
				id = "" // expired or cleared; start over
			}
		}

		if id == "" {
			created, err := s.sessions.Create(ctx)
			if err != nil {
				return err
			}
			id = created.ID
		}

		c.Set(sessionContextKey, id)
		c.Response().Header().Set(sessionHeader, id)
		c.SetCookie(&http.Cookie{
			Name:     sessionCookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		return next(c)
	}
}

// sessionID returns the session id resolved by sessionMiddleware.
func sessionID(c echo.Context) string {
	id, _ := c.Get(sessionContextKey).(string)
	return id
}

func (s *Server) handleSessionInfo(c echo.Context) error {
	sess, err := s.sessions.Get(c.Request().Context(), sessionID(c))
	if err != nil {
		return toSessionHTTPError(err)
	}
	return c.JSON(http.StatusOK, sess)
}

// trackActionRequest accepts metadata either as a JSON object or as a string
// holding (possibly sloppy) JSON emitted by the front-end.
type trackActionRequest struct {
	Action   string          `json:"action"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

func (s *Server) handleSessionTrack(c echo.Context) error {
	var body trackActionRequest
	if err := decodeRequestBody(c, &body); err != nil {
		return err
	}
	if body.Action == "" {
		return requestError{Status: http.StatusBadRequest, Message: "action is required"}
	}

	metadata, err := decodeMetadata(body.Metadata)
	if err != nil {
		return requestError{Status: http.StatusBadRequest, Message: err.Error()}
	}

	action := session.Action{
		Type:      body.Action,
		Timestamp: time.Now().UTC(),
		Metadata:  metadata,
	}
	if err := s.sessions.Track(c.Request().Context(), sessionID(c), action); err != nil {
		return toSessionHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "tracked"})
}

// decodeMetadata tolerates both an inline JSON object and a string-wrapped
// one; string payloads go through JSON repair before being rejected.
func decodeMetadata(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var object map[string]any
	if err := json.Unmarshal(raw, &object); err == nil {
		return object, nil
	}

	var wrapped string
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, errors.New("metadata must be an object or a JSON string")
	}
	object, err := utils.ParseStringAs[map[string]any](wrapped)
	if err != nil {
		return nil, errors.New("metadata string is not valid JSON")
	}
	return object, nil
}

func (s *Server) handleSessionActions(c echo.Context) error {
	actions, err := s.sessions.Actions(c.Request().Context(), sessionID(c))
	if err != nil {
		return toSessionHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"actions": actions})
}

func (s *Server) handleSessionClear(c echo.Context) error {
	if err := s.sessions.Clear(c.Request().Context(), sessionID(c)); err != nil && !errors.Is(err, session.ErrNotFound) {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "cleared"})
}

func toSessionHTTPError(err error) error {
	if errors.Is(err, session.ErrNotFound) {
		return requestError{Status: http.StatusNotFound, Message: "session not found"}
	}
	return err
}
