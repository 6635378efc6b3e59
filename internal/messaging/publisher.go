package messaging

import (
	"context"

	"github.com/proofcapsule/pc-anchor/internal/domain"
)

// Publisher publishes capsule lifecycle events for downstream consumers.
// Publication is best-effort: the pipeline never fails a request because an
// event could not be delivered.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a capsule event
	PublishEvent(ctx context.Context, event *domain.CapsuleEvent) error
	// Close closes the underlying connection
	Close()
}
