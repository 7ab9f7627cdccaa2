package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both register and login.
type authCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err, "request_id", requestID(c))
		}
		errorResponse(c, http.StatusBadRequest, kindValidation, err.Error())
		return false
	}
	return true
}

// @Summary      Register a new account
// @Description  Creates the user and returns a bearer token right away.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]string  "token"
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.SignUp(input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("register_failed", "username", input.Username, "err", err)
		}
		h.respondServiceError(c, err, "register_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// @Summary      Log in
// @Description  Exchanges credentials for a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]string  "token"
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("login_failed", "username", input.Username, "err", err)
		}
		h.respondServiceError(c, err, "login_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
