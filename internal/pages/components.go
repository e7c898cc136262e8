package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PostDocument renders a full post page: a vertically spaced container with
// a heading carrying the post title and a paragraph carrying the body. Both
// values are written as escaped text nodes; empty values render as empty
// elements.
func PostDocument(data PostData) templ.Component {
	return layout(data.Title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := io.WriteString(w, `<div class="stack"><h1>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(data.Title)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</h1><p>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(data.Body)); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</p></div>`)
		return err
	}))
}

// ErrorPage renders the generic error view shown when a page cannot be
// produced.
func ErrorPage(data ErrorPageData) templ.Component {
	return layout(data.StatusLabel, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := io.WriteString(w, `<div class="stack"><h1>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(data.StatusLabel)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</h1><p>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(data.Message)); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</p></div>`)
		return err
	}))
}

func layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := io.WriteString(w, `<!doctype html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(title)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</title></head><body>`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
