package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/devfolio/internal/application/service"
	"github.com/khoahotran/devfolio/internal/domain/category"
	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/internal/domain/project"
	"github.com/khoahotran/devfolio/pkg/apperror"
	"github.com/khoahotran/devfolio/pkg/logger"
	"github.com/khoahotran/devfolio/pkg/markup"
)

// RetryPolicy bounds the retries for the username lookup and profile fetch.
// Attempts counts the first try; Delay separates consecutive tries.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

var DefaultRetryPolicy = RetryPolicy{Attempts: 3, Delay: 2 * time.Second}

type CategoryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ProjectView struct {
	ID               uuid.UUID  `json:"id"`
	CategoryID       *uuid.UUID `json:"category_id"`
	Title            string     `json:"title"`
	RecruiterName    string     `json:"recruiter_name"`
	DescriptionHTML  string     `json:"description_html"`
	ContributionHTML string     `json:"contribution_html"`
	Tools            []string   `json:"tools"`
	Link             string     `json:"link"`
}

// PortfolioView is the public, read-only rendering of one user's portfolio.
// Bio and project text fields arrive pre-rendered through pkg/markup.
type PortfolioView struct {
	Username   string                   `json:"username"`
	Title      string                   `json:"title"`
	BioHTML    string                   `json:"bio_html"`
	PictureURL string                   `json:"picture_url"`
	Picture    profile.PictureTransform `json:"picture"`
	Categories []CategoryView           `json:"categories"`
	Projects   []ProjectView            `json:"projects"`
	// InitialCategoryID is the category a client should expand first: the
	// first one in returned order. A display default, nothing more.
	InitialCategoryID *uuid.UUID `json:"initial_category_id"`
	// The supplementary fetches degrade independently. When one fails the
	// view still ships with the flag set so clients can show a placeholder.
	ProjectsUnavailable   bool `json:"projects_unavailable"`
	CategoriesUnavailable bool `json:"categories_unavailable"`
}

type ViewPortfolioUseCase struct {
	profileRepo  profile.Repository
	categoryRepo category.Repository
	projectRepo  project.Repository
	cache        service.ViewCache
	policy       RetryPolicy
	sleep        func(time.Duration)
	logger       logger.Logger
}

func NewViewPortfolioUseCase(
	pRepo profile.Repository,
	cRepo category.Repository,
	prRepo project.Repository,
	cache service.ViewCache,
	policy RetryPolicy,
	log logger.Logger,
) *ViewPortfolioUseCase {
	if policy.Attempts < 1 {
		policy = DefaultRetryPolicy
	}
	return &ViewPortfolioUseCase{
		profileRepo:  pRepo,
		categoryRepo: cRepo,
		projectRepo:  prRepo,
		cache:        cache,
		policy:       policy,
		sleep:        time.Sleep,
		logger:       log,
	}
}

type ViewPortfolioInput struct {
	Username string
}

type ViewPortfolioOutput struct {
	View *PortfolioView
}

var tracer = otel.Tracer("portfolio_usecase")

// Execute loads a public portfolio: resolve the username, fetch the profile,
// then fetch projects and categories concurrently. The lookup and profile
// stages are retried on transient failure; the supplementary fetches are not,
// they just degrade the view.
func (uc *ViewPortfolioUseCase) Execute(ctx context.Context, input ViewPortfolioInput) (*ViewPortfolioOutput, error) {
	ctx, span := tracer.Start(ctx, "ViewPortfolio")
	defer span.End()

	if cached, ok := uc.cachedView(ctx, input.Username); ok {
		return &ViewPortfolioOutput{View: cached}, nil
	}

	var ownerID uuid.UUID
	err := uc.withRetry(ctx, func() error {
		var err error
		ownerID, err = uc.profileRepo.ResolveUsername(ctx, input.Username)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var p *profile.Profile
	err = uc.withRetry(ctx, func() error {
		var err error
		p, err = uc.profileRepo.GetByOwnerID(ctx, ownerID)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	view := &PortfolioView{
		Username:   p.Username,
		Title:      p.Title,
		BioHTML:    markup.Render(p.Bio),
		PictureURL: p.PictureURL,
		Picture:    p.Picture,
	}

	var (
		wg         sync.WaitGroup
		projects   []*project.Project
		categories []*category.Category
		projErr    error
		catErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		projects, projErr = uc.projectRepo.ListByOwner(ctx, ownerID)
	}()
	go func() {
		defer wg.Done()
		categories, catErr = uc.categoryRepo.ListByOwner(ctx, ownerID)
	}()
	wg.Wait()

	if projErr != nil {
		uc.logger.Warn("Projects fetch failed, serving degraded view",
			zap.String("username", input.Username), zap.Error(projErr))
		view.ProjectsUnavailable = true
	} else {
		view.Projects = make([]ProjectView, len(projects))
		for i, pr := range projects {
			view.Projects[i] = ProjectView{
				ID:               pr.ID,
				CategoryID:       pr.CategoryID,
				Title:            pr.Title,
				RecruiterName:    pr.RecruiterName,
				DescriptionHTML:  markup.Render(pr.Description),
				ContributionHTML: markup.Render(pr.Contribution),
				Tools:            pr.Tools,
				Link:             pr.Link,
			}
		}
	}

	if catErr != nil {
		uc.logger.Warn("Categories fetch failed, serving degraded view",
			zap.String("username", input.Username), zap.Error(catErr))
		view.CategoriesUnavailable = true
	} else {
		view.Categories = make([]CategoryView, len(categories))
		for i, c := range categories {
			view.Categories[i] = CategoryView{ID: c.ID, Name: c.Name}
		}
		if len(categories) > 0 {
			first := categories[0].ID
			view.InitialCategoryID = &first
		}
	}

	// Degraded views are not worth caching; a later request may do better.
	if !view.ProjectsUnavailable && !view.CategoriesUnavailable {
		uc.storeView(ctx, input.Username, view)
	}

	return &ViewPortfolioOutput{View: view}, nil
}

// withRetry runs op up to policy.Attempts times with policy.Delay between
// tries. A definitive not-found is returned immediately: retrying cannot make
// a missing user appear. Exhausting the budget yields a transient error,
// deliberately distinct from not-found.
func (uc *ViewPortfolioUseCase) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= uc.policy.Attempts; attempt++ {
		err = op()
		if err == nil || errors.Is(err, apperror.ErrNotFound) {
			return err
		}
		if ctx.Err() != nil {
			return apperror.NewUnavailable("portfolio fetch cancelled", ctx.Err())
		}
		if attempt < uc.policy.Attempts {
			uc.logger.Warn("Portfolio fetch attempt failed, retrying",
				zap.Int("attempt", attempt), zap.Error(err))
			uc.sleep(uc.policy.Delay)
		}
	}
	return apperror.NewUnavailable("portfolio fetch failed after retries", err)
}

func (uc *ViewPortfolioUseCase) cachedView(ctx context.Context, username string) (*PortfolioView, bool) {
	if uc.cache == nil {
		return nil, false
	}
	payload, ok, err := uc.cache.GetView(ctx, username)
	if err != nil {
		uc.logger.Warn("View cache read failed", zap.String("username", username), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	view := &PortfolioView{}
	if err := json.Unmarshal(payload, view); err != nil {
		uc.logger.Warn("View cache payload corrupt", zap.String("username", username), zap.Error(err))
		return nil, false
	}
	return view, true
}

func (uc *ViewPortfolioUseCase) storeView(ctx context.Context, username string, view *PortfolioView) {
	if uc.cache == nil {
		return
	}
	payload, err := json.Marshal(view)
	if err != nil {
		uc.logger.Warn("View marshal for cache failed", zap.String("username", username), zap.Error(err))
		return
	}
	if err := uc.cache.SetView(ctx, username, payload); err != nil {
		uc.logger.Warn("View cache write failed", zap.String("username", username), zap.Error(err))
	}
}
