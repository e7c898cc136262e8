package pages

// PostData contains the two projected values rendered on a post page.
type PostData struct {
	Title string
	Body  string
}

// ErrorPageData holds information for rendering an error view.
type ErrorPageData struct {
	StatusLabel string
	Message     string
}
