package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxActor extracts the principal injected by the auth middleware. Role must
// be non-empty; its presence proves the middleware ran on this route. ActorID
// is optional (anonymous public callers have none).
func ctxActor(c echo.Context) (role, actorID string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	actorID, _ = c.Get("actor_id").(string)
	return role, actorID, nil
}
