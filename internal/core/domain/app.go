package domain

import "time"

// Application is a catalog entry for an internal application users can be
// granted access to. URL is the launch address and is only disclosed to
// administrators; clients browse the catalog through AppListing.
type Application struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AppListing is the discovery view of an Application with the URL withheld.
// A separate type, not a cleared field, so the URL cannot slip through.
type AppListing struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Listing returns the discovery view of the application.
func (a *Application) Listing() *AppListing {
	return &AppListing{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
