package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	categoryUC "github.com/khoahotran/devfolio/internal/application/usecase/category"
	"github.com/khoahotran/devfolio/pkg/apperror"
)

type CategoryHandler struct {
	createCategoryUseCase *categoryUC.CreateCategoryUseCase
	updateCategoryUseCase *categoryUC.UpdateCategoryUseCase
	deleteCategoryUseCase *categoryUC.DeleteCategoryUseCase
	listCategoriesUseCase *categoryUC.ListCategoriesUseCase
}

func NewCategoryHandler(
	createUC *categoryUC.CreateCategoryUseCase,
	updateUC *categoryUC.UpdateCategoryUseCase,
	deleteUC *categoryUC.DeleteCategoryUseCase,
	listUC *categoryUC.ListCategoriesUseCase,
) *CategoryHandler {
	return &CategoryHandler{
		createCategoryUseCase: createUC,
		updateCategoryUseCase: updateUC,
		deleteCategoryUseCase: deleteUC,
		listCategoriesUseCase: listUC,
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := categoryUC.CreateCategoryInput{OwnerID: ownerID, Name: req.Name}
	output, err := h.createCategoryUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToCategoryDTO(output.Category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid category ID", err))
		return
	}
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := categoryUC.UpdateCategoryInput{CategoryID: categoryID, OwnerID: ownerID, Name: req.Name}
	if err := h.updateCategoryUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCategory deletes the category and every project inside it. Clients
// confirm with the user first; this endpoint executes unconditionally.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid category ID", err))
		return
	}

	input := categoryUC.DeleteCategoryInput{CategoryID: categoryID, OwnerID: ownerID}
	output, err := h.deleteCategoryUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects_deleted": output.ProjectsDeleted})
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.listCategoriesUseCase.Execute(c.Request.Context(), categoryUC.ListCategoriesInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]CategoryDTO, len(output.Categories))
	for i, cat := range output.Categories {
		dtos[i] = ToCategoryDTO(cat)
	}
	c.JSON(http.StatusOK, dtos)
}
