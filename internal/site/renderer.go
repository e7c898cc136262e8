package site

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"postsite/app/internal/pages"
	"postsite/app/internal/posts"
)

// Renderer produces the rendered document for a single post identifier:
// one fetch against the post source, then a projection of the title and
// body fields into the page markup. Invocations are independent and share
// no mutable state, so a single Renderer is safe for concurrent use.
type Renderer struct {
	client *posts.Client
	logger *logrus.Logger
}

// NewRenderer wires a Renderer with its post source client.
func NewRenderer(client *posts.Client, logger *logrus.Logger) (*Renderer, error) {
	if client == nil {
		return nil, eris.New("post client is required")
	}

	return &Renderer{
		client: client,
		logger: logger,
	}, nil
}

// Render fetches the post for id and returns the rendered document bytes.
// Fetch and render failures propagate to the caller unchanged in meaning;
// no retry or fallback content is produced here.
func (r *Renderer) Render(ctx context.Context, id string) ([]byte, error) {
	post, err := r.client.Fetch(ctx, id)
	if err != nil {
		return nil, eris.Wrapf(err, "loading post %s", id)
	}

	document, err := pages.Render(ctx, pages.PostDocument(pages.PostData{
		Title: post.Title,
		Body:  post.Body,
	}))
	if err != nil {
		return nil, eris.Wrapf(err, "rendering post %s", id)
	}

	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{
			"id":    id,
			"bytes": len(document),
		}).Debug("rendered post page")
	}

	return document, nil
}
