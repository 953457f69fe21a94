package domain

// Review is a static testimonial. ProductName is free text and is not
// resolved against the catalog.
type Review struct {
	ID          int64  `json:"id"`
	Author      string `json:"author"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	ImageURL    string `json:"image_url"`
	ProductName string `json:"product"`
}
