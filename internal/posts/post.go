package posts

// Post is the deserialized shape of a remote post resource. Only the two
// fields projected into the rendered page are modelled; anything else in the
// response is ignored, and absent fields decode to empty strings.
type Post struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
