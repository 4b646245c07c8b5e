package model

// Post.Date is a calendar date string (YYYY-MM-DD); listing order sorts on
// it lexically, which matches chronological order for this format.
type Post struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Resume  string `json:"resume"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

// PostSummary is the listing projection: everything but the body.
type PostSummary struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Resume string `json:"resume"`
	Image  string `json:"image,omitempty"`
	Author string `json:"author"`
	Date   string `json:"date"`
}
