package mock

import (
	"context"

	"github.com/docubot/docubot"
)

var _ docubot.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of docubot.DocumentService.
type DocumentService struct {
	CreateDocumentFn          func(ctx context.Context, doc *docubot.Document) error
	FindDocumentByIDFn        func(ctx context.Context, id string) (*docubot.Document, error)
	FindDocumentsBySourceFn   func(ctx context.Context, sourceURL string) ([]*docubot.Document, error)
	DeleteDocumentsBySourceFn func(ctx context.Context, sourceURL string) (int, error)
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *docubot.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docubot.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocumentsBySource(ctx context.Context, sourceURL string) ([]*docubot.Document, error) {
	return s.FindDocumentsBySourceFn(ctx, sourceURL)
}

func (s *DocumentService) DeleteDocumentsBySource(ctx context.Context, sourceURL string) (int, error) {
	return s.DeleteDocumentsBySourceFn(ctx, sourceURL)
}
