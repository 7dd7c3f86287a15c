package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/khoahotran/devfolio/internal/application/usecase/portfolio"
	"github.com/khoahotran/devfolio/pkg/apperror"
)

type PortfolioHandler struct {
	viewPortfolioUseCase *portfolioUC.ViewPortfolioUseCase
	contactOwnerUseCase  *portfolioUC.ContactOwnerUseCase
}

func NewPortfolioHandler(viewUC *portfolioUC.ViewPortfolioUseCase, contactUC *portfolioUC.ContactOwnerUseCase) *PortfolioHandler {
	return &PortfolioHandler{
		viewPortfolioUseCase: viewUC,
		contactOwnerUseCase:  contactUC,
	}
}

func (h *PortfolioHandler) ViewPortfolio(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.Error(apperror.NewInvalidInput("username is required", nil))
		return
	}

	output, err := h.viewPortfolioUseCase.Execute(c.Request.Context(), portfolioUC.ViewPortfolioInput{Username: username})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.View)
}

func (h *PortfolioHandler) ContactOwner(c *gin.Context) {
	username := c.Param("username")
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := portfolioUC.ContactOwnerInput{
		Username:    username,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Message:     req.Message,
	}

	if err := h.contactOwnerUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
