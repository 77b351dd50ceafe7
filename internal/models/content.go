package models

// Announcement is a storefront banner message managed from the admin
// dashboard.
type Announcement struct {
	ID       string `json:"_id"`
	Text     string `json:"text"`
	IsActive bool   `json:"is_active"`
}

// CarouselSlide is one homepage carousel image.
type CarouselSlide struct {
	ID    string `json:"_id"`
	Title string `json:"title,omitempty"`
	Image string `json:"image"`
	Link  string `json:"link,omitempty"`
}
