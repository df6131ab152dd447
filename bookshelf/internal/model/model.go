package model

type Author struct {
	Name string `json:"name"`
}

type Category struct {
	Name string `json:"name"`
}

type Book struct {
	ID            string    `json:"_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	IsPublished   bool      `json:"isPublished"`
	IsArabic      bool      `json:"isArabic"`
	Author        Author    `json:"author"`
	Category      Category  `json:"category"`
	BookType      string    `json:"bookType"`
	Tags          []string  `json:"tags"`
	CoverPhotoURI string    `json:"coverPhotoUri"`
	FileURI       string    `json:"fileUri"`
	CreatedAt     Timestamp `json:"createdAt"`
	UpdatedAt     Timestamp `json:"updatedAt"`
}

// ListBooks is the GET /books envelope.
type ListBooks struct {
	Data []Book `json:"data"`
}
