package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gameroom/backoffice/internal/adapters/http/handlers"
	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/dto"
	"github.com/gameroom/backoffice/internal/core/service"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
)

type SessionController struct {
	sessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

type SessionResponse struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"fecha"`
	Customer         string    `json:"cliente"`
	AttendedBy       string    `json:"atendio"`
	MinutesPaid      int       `json:"tiempoPagado"`
	MinutesPending   int       `json:"tiempoPendiente"`
	StartTime        string    `json:"horaInicio,omitempty"`
	EndTime          string    `json:"horaFinal,omitempty"`
	Station          string    `json:"lugarDeJuego"`
	StationType      string    `json:"tipoEstacion"`
	GamesPlayed      []string  `json:"juegosJugados,omitempty"`
	ExtraControllers int       `json:"controlAdicional"`
	Subtotal         float64   `json:"subtotal"`
	ControllerFee    float64   `json:"montoControles"`
	Total            float64   `json:"total"`
	PaymentStatus    string    `json:"estadoPago"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type SessionsPageResponse struct {
	Sessions   []SessionResponse `json:"sesiones"`
	Pagination Pagination        `json:"pagination"`
}

func NewSessionResponse(session *domain.PlaySession) SessionResponse {
	return SessionResponse{
		ID:               string(session.ID),
		Date:             session.Date,
		Customer:         session.Customer,
		AttendedBy:       session.AttendedBy,
		MinutesPaid:      session.MinutesPaid,
		MinutesPending:   session.MinutesPending,
		StartTime:        session.StartTime,
		EndTime:          session.EndTime,
		Station:          session.Station,
		StationType:      string(session.StationType),
		GamesPlayed:      session.GamesPlayed,
		ExtraControllers: session.ExtraControllers,
		Subtotal:         session.Subtotal.ToFloat(),
		ControllerFee:    session.ControllerFee.ToFloat(),
		Total:            session.Total.ToFloat(),
		PaymentStatus:    string(session.PaymentStatus),
		CreatedAt:        session.CreatedAt,
		UpdatedAt:        session.UpdatedAt,
	}
}

// CreateSession godoc
// @Summary     Record a play session
// @Description Creates a billed station session; fees are computed server-side
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateSessionRequest true "Session data"
// @Success     201     {object} SessionResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/sesiones [post]
// @Security    BearerAuth
func (sessionController *SessionController) CreateSession(c *gin.Context) {
	var request dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	session, err := sessionController.sessionService.CreateSession(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewSessionResponse(session))
}

// GetSessions godoc
// @Summary     List play sessions
// @Tags        sessions
// @Produce     json
// @Param       page  query    int false "Page number (1-based)"
// @Param       limit query    int false "Page size"
// @Success     200   {object} SessionsPageResponse
// @Failure     500   {object} handlers.ErrorResponse
// @Router      /api/v1/sesiones [get]
// @Security    BearerAuth
func (sessionController *SessionController) GetSessions(c *gin.Context) {
	page, limit := pageParams(c, 20)

	sessions, total, err := sessionController.sessionService.GetPage(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	responses := make([]SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = NewSessionResponse(session)
	}

	c.JSON(http.StatusOK, SessionsPageResponse{
		Sessions:   responses,
		Pagination: newPagination(total, page, limit),
	})
}

// GetSessionByID godoc
// @Summary     Get play session by ID
// @Tags        sessions
// @Produce     json
// @Param       id  path     string true "Session ID"
// @Success     200 {object} SessionResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/sesiones/{id} [get]
// @Security    BearerAuth
func (sessionController *SessionController) GetSessionByID(c *gin.Context) {
	sessionID := c.Param("id")
	if !domain.ValidateID(sessionID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("ID de sesión inválido"))
		return
	}

	session, err := sessionController.sessionService.GetByID(c.Request.Context(), domain.ID(sessionID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSessionResponse(session))
}

// UpdateSession godoc
// @Summary     Update a play session
// @Description Partially updates a session; fees are recomputed server-side
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       id      path     string                   true "Session ID"
// @Param       request body     dto.UpdateSessionRequest true "Fields to change"
// @Success     200     {object} SessionResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/sesiones/{id} [put]
// @Security    BearerAuth
func (sessionController *SessionController) UpdateSession(c *gin.Context) {
	sessionID := c.Param("id")
	if !domain.ValidateID(sessionID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("ID de sesión inválido"))
		return
	}

	var request dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	session, err := sessionController.sessionService.UpdateSession(c.Request.Context(), domain.ID(sessionID), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSessionResponse(session))
}

// DeleteSession godoc
// @Summary     Delete a play session
// @Tags        sessions
// @Produce     json
// @Param       id  path     string true "Session ID"
// @Success     200 {object} MessageResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/sesiones/{id} [delete]
// @Security    BearerAuth
func (sessionController *SessionController) DeleteSession(c *gin.Context) {
	sessionID := c.Param("id")
	if !domain.ValidateID(sessionID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("ID de sesión inválido"))
		return
	}

	if err := sessionController.sessionService.DeleteSession(c.Request.Context(), domain.ID(sessionID)); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Sesión eliminada exitosamente"})
}
