package entity

const (
	MediaImage = "image"
	MediaVideo = "video"
)

type Post struct {
	ID        string          `json:"id"`
	MediaType string          `json:"mediaType"`
	Media     string          `json:"src"`
	Caption   string          `json:"caption"`
	CreatedAt int64           `json:"ts"`
	Likes     int             `json:"likes"`
	LikedBy   map[string]bool `json:"likedBy"`
	Comments  []*Comment      `json:"comments"`
}

type Comment struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"ts"`
}
