package dto

// CreateCrewRequest creates a crew member. Rank is free text — unknown ranks
// are accepted and simply sort last in reports.
type CreateCrewRequest struct {
	Name     string `json:"name"     validate:"required,min=1"`
	Rank     string `json:"rank"     validate:"required,min=1"`
	Currency string `json:"currency" validate:"omitempty,oneof=EUR USD"`
}

type UpdateCrewRequest struct {
	Name     string `json:"name"     validate:"required,min=1"`
	Rank     string `json:"rank"     validate:"required,min=1"`
	Currency string `json:"currency" validate:"omitempty,oneof=EUR USD"`
	IsActive *bool  `json:"isActive" validate:"omitempty"`
}

// SetCrewActiveRequest toggles payroll/distribution eligibility (sign on/off).
type SetCrewActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// CrewFilter is bound from the query string of GET /v1/crew.
type CrewFilter struct {
	// "true" (default) = active only, "all" = everyone
	Include string `form:"include,default=true"`
}
