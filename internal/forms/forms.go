// Package forms declares the two validated input shapes and their explicit
// mapping from HTTP requests and records. Validation failures come back as
// "field" -> "message" maps for inline re-rendering.
package forms

import (
	"net/http"
	"strconv"
	"strings"

	"craftfolio/internal/models"
	"craftfolio/internal/validator"
)

type PortfolioForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Category    string `form:"category" validate:"portfolio-category"`
	IsFeatured  bool   `form:"is_featured"`
}

// NewPortfolioForm reads the submitted values. An unspecified category
// falls back to the first selection-list option.
func NewPortfolioForm(r *http.Request) *PortfolioForm {
	form := &PortfolioForm{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Category:    r.PostFormValue("category"),
		IsFeatured:  r.PostFormValue("is_featured") != "",
	}
	if form.Category == "" {
		form.Category = models.DefaultCategory()
	}
	return form
}

// PortfolioFormFromItem maps a stored record to form defaults for the edit
// view.
func PortfolioFormFromItem(item *models.PortfolioItem) *PortfolioForm {
	return &PortfolioForm{
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		IsFeatured:  item.IsFeatured,
	}
}

// Validate returns field errors, or nil when the form is acceptable.
func (f *PortfolioForm) Validate(v *validator.Validator) map[string]string {
	return fieldErrors(v.Validate(f))
}

type FeedbackForm struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"omitempty,email"`
	Message string `form:"message" validate:"required"`
	Rating  *int   `form:"rating"`

	ratingErr string
}

// NewFeedbackForm reads the submitted values. A blank rating stays nil; a
// non-integer rating is recorded as a field error. No range is enforced.
func NewFeedbackForm(r *http.Request) *FeedbackForm {
	form := &FeedbackForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}

	if raw := strings.TrimSpace(r.PostFormValue("rating")); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			form.ratingErr = "Must be a whole number"
		} else {
			form.Rating = &rating
		}
	}

	return form
}

// Validate returns field errors, or nil when the form is acceptable.
func (f *FeedbackForm) Validate(v *validator.Validator) map[string]string {
	errs := fieldErrors(v.Validate(f))
	if f.ratingErr != "" {
		if errs == nil {
			errs = make(map[string]string)
		}
		errs["rating"] = f.ratingErr
	}
	return errs
}

func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	if verr, ok := err.(*validator.ValidationError); ok {
		return verr.Errors
	}
	return map[string]string{"": err.Error()}
}
