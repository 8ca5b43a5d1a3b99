package ingestion

import (
	"context"
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/rabbitmq"
)

const IngestedEventPattern = "asset.ingested"

// CatalogPublisher tells the catalog that a batch of derivatives is ready.
type CatalogPublisher interface {
	PublishIngested(ctx context.Context, event IngestedEvent) error
}

// IngestedEvent is the payload of an IngestedEventPattern message.
type IngestedEvent struct {
	BatchID    string               `json:"batchId"`
	UploadedBy string               `json:"uploadedBy,omitempty"`
	Assets     []types.UploadResult `json:"assets"`
}

type RabbitCatalog struct {
	publisher *rabbitmq.Publisher
	queue     string
}

func NewRabbitCatalog(publisher *rabbitmq.Publisher, queue string) *RabbitCatalog {
	return &RabbitCatalog{publisher: publisher, queue: queue}
}

func (c *RabbitCatalog) PublishIngested(ctx context.Context, event IngestedEvent) error {
	msg, err := rabbitmq.NewEvent(IngestedEventPattern, event)
	if err != nil {
		return err
	}
	return c.publisher.Publish(ctx, c.queue, msg)
}

type NoopCatalog struct{}

func (NoopCatalog) PublishIngested(context.Context, IngestedEvent) error {
	return nil
}
