package ports

import "context"

// RMQConsumer drains vault lifecycle events (user.registered,
// file.uploaded, file.deleted) from the broker.
type RMQConsumer interface {
	Connect(dsn string) error
	Init() error
	DeliveryWorker(ctx context.Context)
}
