package handler

import "time"

// --- Request / Response types ---

type createAppRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	URL         string `json:"url"         validate:"required,url"`
}

// updateAppRequest carries optional fields; absent fields leave the stored
// value untouched.
type updateAppRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"         validate:"omitempty,url"`
}

// appResponse is the full admin view, URL included.
type appResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// appListingResponse is the discovery view. There is no URL field, mirroring
// domain.AppListing, so the launch address cannot appear in the payload.
type appListingResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
