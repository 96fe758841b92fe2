package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fancyapps/users-service/internal/core/domain"
	"github.com/fancyapps/users-service/internal/core/ports"
)

// AppHandler handles HTTP requests for the applications catalog.
type AppHandler struct {
	service ports.AppService
}

func NewAppHandler(service ports.AppService) *AppHandler {
	return &AppHandler{service: service}
}

func toAppResponse(app *domain.Application) appResponse {
	return appResponse{
		ID:          app.ID,
		Name:        app.Name,
		Description: app.Description,
		URL:         app.URL,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
}

func toAppListingResponse(listing *domain.AppListing) appListingResponse {
	return appListingResponse{
		ID:          listing.ID,
		Name:        listing.Name,
		Description: listing.Description,
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}
}

// Create adds an application to the catalog.
//
// @Summary      Create an application
// @Tags         apps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppRequest  true  "Application details"
// @Success      201   {object}  appResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /apps [post]
func (h *AppHandler) Create(c echo.Context) error {
	var req createAppRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Create(c.Request().Context(), ports.CreateAppInput{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAppResponse(app))
}

// List returns the full catalog, URLs included.
//
// @Summary      List applications
// @Tags         apps
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   appResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /apps [get]
func (h *AppHandler) List(c echo.Context) error {
	apps, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]appResponse, 0, len(apps))
	for i := range apps {
		resp = append(resp, toAppResponse(&apps[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns a single application by id.
//
// @Summary      Get an application
// @Tags         apps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  appResponse
// @Failure      404  {object}  map[string]string
// @Router       /apps/{id} [get]
func (h *AppHandler) Get(c echo.Context) error {
	app, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppResponse(app))
}

// Update patches an application.
//
// @Summary      Update an application
// @Tags         apps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Application id"
// @Param        body  body      updateAppRequest  true  "Fields to update"
// @Success      200   {object}  appResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /apps/{id} [patch]
func (h *AppHandler) Update(c echo.Context) error {
	var req updateAppRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateAppInput{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAppResponse(app))
}

// Delete removes an application from the catalog.
//
// @Summary      Delete an application
// @Tags         apps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  appResponse
// @Failure      404  {object}  map[string]string
// @Router       /apps/{id} [delete]
func (h *AppHandler) Delete(c echo.Context) error {
	app, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppResponse(app))
}

// Discover lists the catalog without launch URLs. Open to clients.
//
// @Summary      Discover applications
// @Tags         apps
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   appListingResponse
// @Failure      401  {object}  map[string]string
// @Router       /apps/discover [get]
func (h *AppHandler) Discover(c echo.Context) error {
	listings, err := h.service.DiscoverAll(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]appListingResponse, 0, len(listings))
	for i := range listings {
		resp = append(resp, toAppListingResponse(&listings[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// DiscoverOne returns a single catalog entry without its launch URL.
//
// @Summary      Discover one application
// @Tags         apps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  appListingResponse
// @Failure      404  {object}  map[string]string
// @Router       /apps/discover/{id} [get]
func (h *AppHandler) DiscoverOne(c echo.Context) error {
	listing, err := h.service.DiscoverOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppListingResponse(listing))
}
