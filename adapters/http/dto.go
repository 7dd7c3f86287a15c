package http

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/devfolio/internal/domain/category"
	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/internal/domain/project"
)

// Auth DTOs

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Profile DTOs

type ProfileDTO struct {
	OwnerID    string                   `json:"owner_id"`
	Username   string                   `json:"username"`
	Title      string                   `json:"title"`
	Bio        string                   `json:"bio"`
	PictureURL string                   `json:"picture_url"`
	Picture    profile.PictureTransform `json:"picture"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		OwnerID:    p.OwnerID.String(),
		Username:   p.Username,
		Title:      p.Title,
		Bio:        p.Bio,
		PictureURL: p.PictureURL,
		Picture:    p.Picture,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
}

// Category DTOs

type CategoryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToCategoryDTO(c *category.Category) CategoryDTO {
	return CategoryDTO{
		ID:        c.ID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// Project DTOs

// ToolsField accepts the tools either as a comma-separated string (the form
// input) or as an already-split list (a round-trip edit of a stored project).
type ToolsField struct {
	List []string
	Raw  *string
}

func (t *ToolsField) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		t.Raw = &raw
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		t.List = list
		return nil
	}
	return fmt.Errorf("tools must be a string or an array of strings")
}

func (t ToolsField) MarshalJSON() ([]byte, error) {
	if t.Raw != nil {
		return json.Marshal(*t.Raw)
	}
	return json.Marshal(t.List)
}

type CreateProjectRequest struct {
	Title         string     `json:"title" binding:"required"`
	CategoryID    *uuid.UUID `json:"category_id"`
	RecruiterName string     `json:"recruiter_name"`
	Description   string     `json:"description"`
	Contribution  string     `json:"contribution"`
	Tools         string     `json:"tools"`
	Link          string     `json:"link"`
}

type UpdateProjectRequest struct {
	Title         string     `json:"title" binding:"required"`
	CategoryID    *uuid.UUID `json:"category_id"`
	RecruiterName string     `json:"recruiter_name"`
	Description   string     `json:"description"`
	Contribution  string     `json:"contribution"`
	Tools         ToolsField `json:"tools"`
	Link          string     `json:"link"`
}

type ProjectDTO struct {
	ID            string     `json:"id"`
	CategoryID    *uuid.UUID `json:"category_id"`
	Title         string     `json:"title"`
	RecruiterName string     `json:"recruiter_name"`
	Description   string     `json:"description"`
	Contribution  string     `json:"contribution"`
	Tools         []string   `json:"tools"`
	Link          string     `json:"link"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:            p.ID.String(),
		CategoryID:    p.CategoryID,
		Title:         p.Title,
		RecruiterName: p.RecruiterName,
		Description:   p.Description,
		Contribution:  p.Contribution,
		Tools:         p.Tools,
		Link:          p.Link,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// Contact DTOs

type ContactRequest struct {
	SenderName  string `json:"sender_name" binding:"required"`
	SenderEmail string `json:"sender_email" binding:"required,email"`
	Message     string `json:"message" binding:"required"`
}
