package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studyspaces/classroom-reservation/internal/config"
	"github.com/studyspaces/classroom-reservation/internal/middleware"
	"github.com/studyspaces/classroom-reservation/internal/model"
	"github.com/studyspaces/classroom-reservation/internal/policy"
	"github.com/studyspaces/classroom-reservation/internal/repository"
	"github.com/studyspaces/classroom-reservation/internal/session"
	"github.com/studyspaces/classroom-reservation/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Sessions *session.Manager
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, s *session.Manager) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Sessions: s}
}

// ----- DTOs -----

type signUpReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"` // student | assigner
}
type signInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
type resetReq struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	User   model.User `json:"user"`
	Access tokenPart  `json:"access"`
}

// parseRole maps the submitted role onto one of the two defined
// values, defaulting to student.
func parseRole(s string) model.Role {
	if model.Role(strings.ToLower(strings.TrimSpace(s))) == model.RoleAssigner {
		return model.RoleAssigner
	}
	return model.RoleStudent
}

// validationJSON renders a ValidationError the way the client shows it
// inline: the message plus the offending field when one is known.
func validationJSON(c echo.Context, err error) error {
	var ve *policy.ValidationError
	if errors.As(err, &ve) {
		body := echo.Map{"error": ve.Message}
		if ve.Field != "" {
			body["field"] = ve.Field
		}
		return c.JSON(http.StatusBadRequest, body)
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
}

// SignUp creates an account, starts its session and returns an access
// token immediately.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	role := parseRole(req.Role)
	if err := policy.ValidateSignUp(req.Name, req.Email, req.Password, req.ConfirmPassword, role); err != nil {
		return validationJSON(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	studentID := ""
	if role == model.RoleStudent {
		studentID = utils.NewStudentID()
	}
	acct, err := h.Users.Create(ctx, strings.TrimSpace(req.Name), req.Email, req.Password, role, studentID, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	user := acct.User()
	h.Sessions.Start(user)
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.Email, string(user.Role), h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusCreated, authResp{
		User:   user,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// SignIn verifies credentials against the selected role and returns a
// fresh access token.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	role := parseRole(req.Role)
	if err := policy.ValidateSignIn(req.Email, req.Password, role); err != nil {
		return validationJSON(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	// Signing into the wrong side of the app is indistinguishable from
	// bad credentials on purpose.
	if acct.Role != role || !utils.VerifyPassword(acct.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	user := acct.User()
	h.Sessions.Start(user)
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.Email, string(user.Role), h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		User:   user,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// ForgotPassword validates the request and answers neutrally whether
// or not the account exists.  Actual reset mail delivery is out of
// scope for the pilot.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req resetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := policy.ValidatePasswordReset(req.Email, parseRole(req.Role)); err != nil {
		return validationJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "If an account with that email exists, a reset link has been sent.",
	})
}

// Logout ends the server-side session.  The access token itself stays
// valid until expiry, but without a session it reaches nothing.
func (h *AuthHandler) Logout(c echo.Context) error {
	subject, _ := c.Get(middleware.CtxSubject).(string)
	if subject != "" {
		h.Sessions.End(subject)
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the identity of the current session.
func (h *AuthHandler) Me(c echo.Context) error {
	s := currentSession(c, h.Sessions)
	if s == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
	}
	return c.JSON(http.StatusOK, s.Identity())
}

// UpdateProfile merges a partial edit into the session identity and
// persists the result.  Email and role cannot be changed.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	s := currentSession(c, h.Sessions)
	if s == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
	}
	var upd model.ProfileUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	user := s.UpdateProfile(upd)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Users.UpdateProfile(ctx, user.Email, user.Name, user.ProfilePic, user.StudentID); err != nil {
		// The session already holds the new values; persistence catches
		// up on the next successful write.
		log.Printf("profile: persist failed for %s: %v", user.Email, err)
	}
	return c.JSON(http.StatusOK, user)
}
