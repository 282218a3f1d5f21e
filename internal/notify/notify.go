// Package notify delivers balance notifications through external messaging
// channels: an Apprise API gateway over HTTP and an AMQP exchange.
package notify

import (
	"context"
	"errors"
)

// Kind classifies a notification for channels that render severity.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
)

// Notification is one message to deliver.
type Notification struct {
	Title string
	Body  string
	Kind  Kind
}

// Notifier delivers a notification through one channel.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Multi fans a notification out to several channels and joins their errors;
// one failing channel does not stop the others.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, notifier := range m {
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
