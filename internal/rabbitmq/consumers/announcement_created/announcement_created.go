package announcementcreated

import (
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/logging"
	"classportal/internal/rabbitmq"
	"classportal/internal/rabbitmq/schema"
	"context"

	"github.com/r3labs/sse/v2"
	"github.com/rabbitmq/amqp091-go"
)

// StreamID is the SSE stream announcement events are forwarded to.
const StreamID = "announcements"

type Consumer struct {
	log       logging.Logger
	channel   *rabbitmq.Channel
	queue     string
	sseServer *sse.Server
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	sseServer *sse.Server,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Consumer{log: log, channel: channel, queue: queue, sseServer: sseServer}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			event := &schema.AnnouncementCreated{}
			if err := event.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal announcement event.",
					logging.Entry("err", err),
					logging.Entry("delivery", delivery),
				)
				c.Ack(delivery)
				continue
			}

			c.sseServer.Publish(StreamID, &sse.Event{
				Event: []byte("announcement-created"),
				Data:  delivery.Body,
			})
			c.log.Info(
				context.Background(),
				"Announcement event forwarded to subscribers.",
				logging.Entry("announcementID", event.ID),
			)
			c.Ack(delivery)
		}
	}()

	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.log.Error(
			context.Background(),
			"Could not ack the delivery.",
			logging.Entry("err", err),
			logging.Entry("delivery", delivery),
		)
	}
}
