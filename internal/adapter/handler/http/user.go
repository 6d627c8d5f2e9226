package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sokonihq/sokoni/internal/core/domain"
	"github.com/sokonihq/sokoni/internal/core/port"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.Service
}

func NewUserHandler(service port.Service, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type registerRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func (uh *UserHandler) RegisterUser(ctx *gin.Context) {
	req := registerRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	role := domain.RoleCustomer
	switch req.Role {
	case "", string(domain.RoleCustomer):
	case string(domain.RoleSeller):
		role = domain.RoleSeller
	default:
		// admin accounts are provisioned out of band
		uh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	user := &domain.User{
		Login:    req.Login,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     role,
	}

	if _, err := uh.service.RegisterUser(ctx, user); err != nil {
		uh.handleError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, req.Login, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	ctx.Header(authHeaderKey, authType+" "+token)
	uh.handleSuccessWithStatus(ctx, nil, http.StatusCreated)
}

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	req := loginRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, req.Login, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	ctx.Header(authHeaderKey, authType+" "+token)
	uh.handleSuccess(ctx, gin.H{"token": token})
}
