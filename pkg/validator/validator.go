package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rqc23shu/safevalley-map/internal/domain"
)

// MapBounds is the geographic rectangle covered by the static map image.
// Submissions outside it are rejected.
type MapBounds struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

func (b MapBounds) Contains(loc domain.Location) bool {
	return loc.Lat >= b.MinLat && loc.Lat <= b.MaxLat &&
		loc.Lng >= b.MinLng && loc.Lng <= b.MaxLng
}

// Validator gates entry into the report store. Failures are collected,
// not short-circuited: the caller gets every violated rule at once.
type Validator struct {
	validate *validator.Validate
	bounds   MapBounds
}

func New(bounds MapBounds) *Validator {
	v := validator.New()
	RegisterCustomValidations(v)
	return &Validator{validate: v, bounds: bounds}
}

// ValidateSubmit checks a new report payload. Description length is
// measured after trimming, matching what Sanitize will persist.
func (v *Validator) ValidateSubmit(req domain.SubmitReportRequest) []string {
	req.Description = strings.TrimSpace(req.Description)

	violations := v.collect(v.validate.Struct(req))
	if !v.bounds.Contains(req.Location) {
		violations = append(violations, "Invalid location data")
	}
	return violations
}

func (v *Validator) ValidateEdit(req domain.EditReportRequest) []string {
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		req.Description = &trimmed
	}
	return v.collect(v.validate.Struct(req))
}

func (v *Validator) collect(err error) []string {
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid payload"}
	}
	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, message(fe))
	}
	return violations
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "Type":
		return "Please select a valid hazard type"
	case "Description":
		if fe.Tag() == "max" {
			return "Description must be less than 500 characters"
		}
		return "Description must be at least 10 characters long"
	case "RadiusM":
		return "Radius must be between 1 and 500 meters"
	case "DurationDays":
		return "Duration must be between 1 and 30 days"
	case "Location":
		return "Invalid location data"
	case "PhotoURL":
		return "Photo URL must be a valid URL"
	}
	return "Invalid value for " + fe.Field()
}

var sanitizer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Sanitize escapes the five HTML metacharacters. It is applied exactly
// once per submission, at this boundary; stored text is already escaped
// and must never be passed through again.
func Sanitize(input string) string {
	return sanitizer.Replace(strings.TrimSpace(input))
}
