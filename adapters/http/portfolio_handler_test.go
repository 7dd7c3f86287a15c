package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/khoahotran/devfolio/adapters/event"
	portfolioUC "github.com/khoahotran/devfolio/internal/application/usecase/portfolio"
	"github.com/khoahotran/devfolio/internal/domain/category"
	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/internal/domain/project"
	"github.com/khoahotran/devfolio/internal/domain/user"
	"github.com/khoahotran/devfolio/pkg/apperror"
	"github.com/khoahotran/devfolio/pkg/logger"
)

type stubProfileRepo struct {
	ownerID    uuid.UUID
	resolveErr error
}

func (r *stubProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	return &profile.Profile{
		OwnerID:  ownerID,
		Username: "khoa",
		Title:    "Backend Engineer",
		Bio:      "hello",
		Picture:  profile.DefaultPictureTransform(),
	}, nil
}

func (r *stubProfileRepo) ResolveUsername(ctx context.Context, username string) (uuid.UUID, error) {
	if r.resolveErr != nil {
		return uuid.Nil, r.resolveErr
	}
	return r.ownerID, nil
}

func (r *stubProfileRepo) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (r *stubProfileRepo) CreateWithLookup(ctx context.Context, p *profile.Profile) error { return nil }
func (r *stubProfileRepo) Update(ctx context.Context, p *profile.Profile) error           { return nil }

type stubCategoryRepo struct{}

func (r *stubCategoryRepo) Save(ctx context.Context, c *category.Category) error { return nil }
func (r *stubCategoryRepo) Rename(ctx context.Context, id, ownerID uuid.UUID, name string) error {
	return nil
}

func (r *stubCategoryRepo) DeleteCascade(ctx context.Context, id, ownerID uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *stubCategoryRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*category.Category, error) {
	return nil, nil
}

type stubProjectRepo struct{}

func (r *stubProjectRepo) Save(ctx context.Context, p *project.Project) error      { return nil }
func (r *stubProjectRepo) Update(ctx context.Context, p *project.Project) error    { return nil }
func (r *stubProjectRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error { return nil }
func (r *stubProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	return nil, nil
}

type stubUserRepo struct {
	owner *user.User
}

func (r *stubUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (r *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.owner, nil
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.owner, nil
}

type stubPublisher struct {
	mails      []event.MailRequestPayload
	enqueueErr error
}

func (p *stubPublisher) PublishPortfolioEvent(ctx context.Context, payload event.PortfolioEventPayload) error {
	return nil
}

func (p *stubPublisher) EnqueueMail(ctx context.Context, payload event.MailRequestPayload) error {
	if p.enqueueErr != nil {
		return p.enqueueErr
	}
	p.mails = append(p.mails, payload)
	return nil
}

func newPortfolioRouter(pRepo *stubProfileRepo, publisher *stubPublisher) *gin.Engine {
	nop := logger.NewNop()
	// Single attempt keeps handler tests from sleeping through retry delays.
	viewUC := portfolioUC.NewViewPortfolioUseCase(
		pRepo, &stubCategoryRepo{}, &stubProjectRepo{}, nil,
		portfolioUC.RetryPolicy{Attempts: 1}, nop,
	)
	owner := &user.User{ID: pRepo.ownerID, Email: "owner@example.com"}
	contactUC := portfolioUC.NewContactOwnerUseCase(pRepo, &stubUserRepo{owner: owner}, publisher)
	handler := NewPortfolioHandler(viewUC, contactUC)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(nop))
	router.GET("/api/portfolio/:username", handler.ViewPortfolio)
	router.POST("/api/portfolio/:username/contact", handler.ContactOwner)
	return router
}

func TestViewPortfolioEndpoint_OK(t *testing.T) {
	router := newPortfolioRouter(&stubProfileRepo{ownerID: uuid.New()}, &stubPublisher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/khoa", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "khoa", body["username"])
}

func TestViewPortfolioEndpoint_NotFound(t *testing.T) {
	pRepo := &stubProfileRepo{resolveErr: apperror.NewNotFound("profile", "ghost")}
	router := newPortfolioRouter(pRepo, &stubPublisher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/ghost", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestViewPortfolioEndpoint_TransientFailureMapsTo503(t *testing.T) {
	pRepo := &stubProfileRepo{resolveErr: errors.New("connection refused")}
	router := newPortfolioRouter(pRepo, &stubPublisher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/khoa", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "check your connection")
}

func TestContactEndpoint_Queued(t *testing.T) {
	publisher := &stubPublisher{}
	router := newPortfolioRouter(&stubProfileRepo{ownerID: uuid.New()}, publisher)

	payload := `{"sender_name":"Jamie","sender_email":"jamie@example.com","message":"hi"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/khoa/contact", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Len(t, publisher.mails, 1)
	assert.Equal(t, "owner@example.com", publisher.mails[0].RecipientEmail)
}

func TestContactEndpoint_EmptyMessageRejected(t *testing.T) {
	router := newPortfolioRouter(&stubProfileRepo{ownerID: uuid.New()}, &stubPublisher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/khoa/contact", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
