package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"craftfolio/internal/forms"
	"craftfolio/internal/logger"
	"craftfolio/internal/mailer"
	"craftfolio/internal/models"
	"craftfolio/internal/repositories"
	"craftfolio/internal/validator"
)

const (
	cacheKeyFeatured = "home_featured"
	cacheKeyGallery  = "portfolio_all"

	// featuredLimit caps the homepage listing.
	featuredLimit = 3
)

// SiteHandler serves the public pages: homepage, gallery, item detail and
// the feedback form.
type SiteHandler struct {
	db        *gorm.DB
	portfolio repositories.PortfolioRepository
	feedback  repositories.FeedbackRepository
	valid     *validator.Validator
	cache     *gocache.Cache
	mail      *mailer.Mailer
}

func NewSiteHandler(
	db *gorm.DB,
	portfolio repositories.PortfolioRepository,
	feedback repositories.FeedbackRepository,
	valid *validator.Validator,
	c *gocache.Cache,
	mail *mailer.Mailer,
) *SiteHandler {
	return &SiteHandler{
		db:        db,
		portfolio: portfolio,
		feedback:  feedback,
		valid:     valid,
		cache:     c,
		mail:      mail,
	}
}

func (h *SiteHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/portfolio", h.Portfolio)
	r.GET("/portfolio/:id", h.PortfolioItem)
	r.GET("/feedback", h.FeedbackForm)
	r.POST("/feedback", h.SubmitFeedback)
}

func (h *SiteHandler) Home(c *gin.Context) {
	featured, err := h.cachedItems(cacheKeyFeatured, func() ([]models.PortfolioItem, error) {
		return h.portfolio.FindFeatured(h.db, featuredLimit)
	})
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "index.html", gin.H{"Featured": featured})
}

func (h *SiteHandler) Portfolio(c *gin.Context) {
	items, err := h.cachedItems(cacheKeyGallery, func() ([]models.PortfolioItem, error) {
		return h.portfolio.FindAll(h.db)
	})
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "portfolio.html", gin.H{"Items": items})
}

func (h *SiteHandler) PortfolioItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		NotFound(c)
		return
	}

	item, err := h.portfolio.FindByID(h.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPortfolioItemNotFound) {
			NotFound(c)
			return
		}
		serverError(c, err)
		return
	}

	render(c, http.StatusOK, "portfolio_item.html", gin.H{"Item": item})
}

func (h *SiteHandler) FeedbackForm(c *gin.Context) {
	render(c, http.StatusOK, "feedback.html", gin.H{"Form": &forms.FeedbackForm{}})
}

func (h *SiteHandler) SubmitFeedback(c *gin.Context) {
	form := forms.NewFeedbackForm(c.Request)
	if errs := form.Validate(h.valid); errs != nil {
		render(c, http.StatusOK, "feedback.html", gin.H{"Form": form, "Errors": errs})
		return
	}

	fb := &models.Feedback{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
		Rating:  form.Rating,
	}
	if err := h.feedback.Create(h.db, fb); err != nil {
		serverError(c, err)
		return
	}

	if h.mail != nil {
		if err := h.mail.NotifyFeedback(fb); err != nil {
			// The visitor never sees notification failures.
			logger.WithError(err).Warn("feedback notification not sent", "feedback_id", fb.ID)
		}
	}

	addFlash(c, "success", "Thank you for your feedback!")
	c.Redirect(http.StatusSeeOther, "/")
}

// cachedItems serves public listings from the short-lived cache, filling
// it on a miss. Admin mutations flush the cache so listings never go
// stale.
func (h *SiteHandler) cachedItems(key string, fetch func() ([]models.PortfolioItem, error)) ([]models.PortfolioItem, error) {
	if h.cache != nil {
		if v, found := h.cache.Get(key); found {
			return v.([]models.PortfolioItem), nil
		}
	}

	items, err := fetch()
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		h.cache.Set(key, items, gocache.DefaultExpiration)
	}
	return items, nil
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
