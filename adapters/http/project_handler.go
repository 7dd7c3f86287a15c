package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectUC "github.com/khoahotran/devfolio/internal/application/usecase/project"
	"github.com/khoahotran/devfolio/pkg/apperror"
)

type ProjectHandler struct {
	createProjectUseCase *projectUC.CreateProjectUseCase
	updateProjectUseCase *projectUC.UpdateProjectUseCase
	deleteProjectUseCase *projectUC.DeleteProjectUseCase
	listProjectsUseCase  *projectUC.ListProjectsUseCase
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUseCase: createUC,
		updateProjectUseCase: updateUC,
		deleteProjectUseCase: deleteUC,
		listProjectsUseCase:  listUC,
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := projectUC.CreateProjectInput{
		OwnerID:       ownerID,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		RecruiterName: req.RecruiterName,
		Description:   req.Description,
		Contribution:  req.Contribution,
		ToolsRaw:      req.Tools,
		Link:          req.Link,
	}

	output, err := h.createProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToProjectDTO(output.Project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := projectUC.UpdateProjectInput{
		ProjectID:     projectID,
		OwnerID:       ownerID,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		RecruiterName: req.RecruiterName,
		Description:   req.Description,
		Contribution:  req.Contribution,
		Tools:         req.Tools.List,
		ToolsRaw:      req.Tools.Raw,
		Link:          req.Link,
	}

	output, err := h.updateProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(output.Project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	input := projectUC.DeleteProjectInput{ProjectID: projectID, OwnerID: ownerID}
	if err := h.deleteProjectUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), projectUC.ListProjectsInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ProjectDTO, len(output.Projects))
	for i, p := range output.Projects {
		dtos[i] = ToProjectDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}
