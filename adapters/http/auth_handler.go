package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/khoahotran/devfolio/internal/application/usecase/auth"
	"github.com/khoahotran/devfolio/pkg/apperror"
)

type AuthHandler struct {
	signUpUseCase *authUC.SignUpUseCase
	loginUseCase  *authUC.LoginUseCase
}

func NewAuthHandler(signUpUC *authUC.SignUpUseCase, loginUC *authUC.LoginUseCase) *AuthHandler {
	return &AuthHandler{
		signUpUseCase: signUpUC,
		loginUseCase:  loginUC,
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := authUC.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	}

	output, err := h.signUpUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"owner_id": output.OwnerID, "access_token": output.AccessToken})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := authUC.LoginInput{Email: req.Email, Password: req.Password}

	output, err := h.loginUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": output.AccessToken})
}
