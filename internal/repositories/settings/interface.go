package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rewardsbot/internal/repositories/settings Repository

import (
	"context"
)

// Repository defines the interface for named configuration documents
type Repository interface {
	// GetDocument decodes the named document into Target
	GetDocument(ctx context.Context, input *GetDocumentInput) (*GetDocumentOutput, error)

	// SaveDocument replaces the named document
	SaveDocument(ctx context.Context, input *SaveDocumentInput) error

	// DeleteDocument removes the named document
	DeleteDocument(ctx context.Context, input *DeleteDocumentInput) error
}
