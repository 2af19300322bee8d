package model

// SiteContent is the singleton "about" block shown on the landing page.
type SiteContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DefaultSiteContent returns the hard-coded fallback used when the stored
// record is absent or a field is missing. Each field is merged independently.
func DefaultSiteContent() SiteContent {
	return SiteContent{
		Title: "Обо мне",
		Body:  "Помогаю бизнесу расти за счёт платного трафика и сильных посадочных страниц.",
	}
}
