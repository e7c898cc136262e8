package http

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"os"

	"github.com/danielgtaylor/huma/v2"
	"github.com/getsentry/sentry-go"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"postsite/app/internal/pages"
)

const (
	htmlContentType      = "text/html; charset=utf-8"
	errorFallbackMessage = "We couldn't render this page right now."
)

type htmlResponse struct {
	Status      int
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type postInput struct {
	ID string `path:"id"`
}

type healthResponse struct {
	Status int
	Body   struct {
		Status string `json:"status"`
		Source string `json:"source"`
	}
}

func (s *Server) registerPostRoute() {
	huma.Get(s.api, "/posts/{id}", s.postHandler, htmlOperation(
		"Fetch post page",
		stdhttp.StatusBadGateway,
	))
}

func (s *Server) registerHealthRoute() {
	huma.Get(s.api, "/healthz", s.healthHandler, func(op *huma.Operation) {
		op.Summary = "Health check"
	})
}

func (s *Server) postHandler(ctx context.Context, input *postInput) (*htmlResponse, error) {
	// Pre-rendered documents win; everything else goes through the
	// fallback render path.
	if s.exporter != nil {
		if document, err := os.ReadFile(s.exporter.DocumentPath(input.ID)); err == nil {
			return newHTMLResponse(stdhttp.StatusOK, document), nil
		}
	}

	document, err := s.renderer.Render(ctx, input.ID)
	if err != nil {
		s.recordError(ctx, err, "rendering post on demand", logrus.Fields{"id": input.ID})
		return s.renderErrorResponse(ctx, stdhttp.StatusBadGateway, errorFallbackMessage)
	}

	return newHTMLResponse(stdhttp.StatusOK, document), nil
}

func (s *Server) healthHandler(ctx context.Context, _ *struct{}) (*healthResponse, error) {
	resp := &healthResponse{Status: stdhttp.StatusOK}
	resp.Body.Status = "ok"
	resp.Body.Source = s.sourceURL
	return resp, nil
}

func (s *Server) renderErrorResponse(ctx context.Context, status int, message string) (*htmlResponse, error) {
	body, err := pages.Render(ctx, pages.ErrorPage(pages.ErrorPageData{
		StatusLabel: fmt.Sprintf("%d %s", status, stdhttp.StatusText(status)),
		Message:     message,
	}))
	if err != nil {
		return nil, eris.Wrap(err, "rendering error page")
	}

	return newHTMLResponse(status, body), nil
}

func (s *Server) recordError(ctx context.Context, err error, message string, fields logrus.Fields) {
	if s.logger != nil {
		entry := s.logger.WithError(err)
		if fields != nil {
			entry = entry.WithFields(fields)
		}
		if requestID := RequestIDFromContext(ctx); requestID != "" {
			entry = entry.WithField("request_id", requestID)
		}
		entry.Error(message)
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
	}
}

func newHTMLResponse(status int, body []byte) *htmlResponse {
	return &htmlResponse{
		Status:      status,
		ContentType: htmlContentType,
		Body:        body,
	}
}

func htmlOperation(summary string, errorStatuses ...int) func(op *huma.Operation) {
	return func(op *huma.Operation) {
		op.Summary = summary
		op.Errors = append(op.Errors, errorStatuses...)
	}
}
