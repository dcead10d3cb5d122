package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gameroom/backoffice/internal/adapters/http/handlers"
	"github.com/gameroom/backoffice/internal/adapters/http/middleware"
	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/dto"
	"github.com/gameroom/backoffice/internal/core/service"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}

func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    string(user.ID),
		Name:  user.Name,
		Email: user.Email,
	}
}

// Register godoc
// @Summary     Register a user
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body     dto.RegisterRequest true "User data"
// @Success     201     {object} UserResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/auth/register [post]
func (authController *AuthController) Register(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	user, err := authController.authService.Register(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewUserResponse(user))
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body     dto.LoginRequest true "Credentials"
// @Success     200     {object} LoginResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/auth/login [post]
func (authController *AuthController) Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	token, user, err := authController.authService.Login(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  NewUserResponse(user),
	})
}

// Me godoc
// @Summary     Current user
// @Tags        auth
// @Produce     json
// @Success     200 {object} UserResponse
// @Failure     401 {object} handlers.ErrorResponse
// @Router      /api/v1/auth/me [get]
// @Security    BearerAuth
func (authController *AuthController) Me(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, handlers.ErrorResponse{Error: "Usuario no autenticado. Debes iniciar sesión."})
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		ID:    string(identity.UserID),
		Name:  identity.Name,
		Email: identity.Email,
	})
}
