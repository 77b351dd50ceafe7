package api

import (
	"context"
	"net/http"

	"github.com/lofr-in/storefront/internal/models"
)

type announcementsResponse struct {
	Announcements []models.Announcement `json:"announcements"`
}

type announcementResponse struct {
	Announcement *models.Announcement `json:"announcement"`
}

// ListAnnouncements returns all storefront banner announcements.
func (c *Client) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	var res announcementsResponse
	if err := c.do(ctx, http.MethodGet, "/announcements", nil, &res); err != nil {
		return nil, err
	}
	return res.Announcements, nil
}

// GetAnnouncement fetches one announcement by ID (admin).
func (c *Client) GetAnnouncement(ctx context.Context, id string) (*models.Announcement, error) {
	var res announcementResponse
	if err := c.do(ctx, http.MethodGet, "/announcements/"+id, nil, &res); err != nil {
		return nil, err
	}
	return res.Announcement, nil
}

// AddAnnouncement creates an announcement (admin).
func (c *Client) AddAnnouncement(ctx context.Context, a models.Announcement) error {
	return c.do(ctx, http.MethodPost, "/announcements/add", a, nil)
}

// UpdateAnnouncement replaces an announcement (admin).
func (c *Client) UpdateAnnouncement(ctx context.Context, id string, a models.Announcement) error {
	return c.do(ctx, http.MethodPut, "/announcements/"+id, a, nil)
}

// DeleteAnnouncement removes an announcement (admin).
func (c *Client) DeleteAnnouncement(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/announcements/"+id, nil, nil)
}

type carouselResponse struct {
	Carousels []models.CarouselSlide `json:"carousels"`
}

// ListCarousel returns the homepage carousel slides.
func (c *Client) ListCarousel(ctx context.Context) ([]models.CarouselSlide, error) {
	var res carouselResponse
	if err := c.do(ctx, http.MethodGet, "/carousel", nil, &res); err != nil {
		return nil, err
	}
	return res.Carousels, nil
}

// AddCarouselSlide creates a homepage carousel slide (admin).
func (c *Client) AddCarouselSlide(ctx context.Context, slide models.CarouselSlide) error {
	return c.do(ctx, http.MethodPost, "/carousel", slide, nil)
}

// DeleteCarouselSlide removes a carousel slide (admin).
func (c *Client) DeleteCarouselSlide(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/carousel/"+id, nil, nil)
}

// SalesReport is the admin sales dashboard payload.
type SalesReport struct {
	Orders []models.Order `json:"orders"`
}

type salesResponse struct {
	Success bool        `json:"success"`
	Data    SalesReport `json:"data"`
}

// GetSalesReport fetches completed orders for the sales dashboard (admin).
func (c *Client) GetSalesReport(ctx context.Context) (*SalesReport, error) {
	var res salesResponse
	if err := c.do(ctx, http.MethodGet, "/sales", nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}
