package announcementevents

import (
	"classportal/internal/core/domain/announcement"
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/logging"
	"classportal/internal/rabbitmq"
	"classportal/internal/rabbitmq/schema"
	"context"

	"github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(
	log logging.Logger,
	channel *rabbitmq.Channel,
	exchange string,
	routingKey string,
) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (p *RabbitMQ) PublishCreated(ctx context.Context, a announcement.Announcement) error {
	event := schema.AnnouncementCreated{
		ID:        int64(a.ID),
		Title:     a.Title,
		Content:   a.Content,
		CreatedBy: int64(a.CreatedBy),
		CreatedAt: a.CreatedAt,
	}
	body, err := event.Marshal()
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("announcementID", a.ID))
		return err
	}
	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("announcementID", a.ID))
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", p.routingKey),
		logging.Entry("announcementID", a.ID),
	)
	return nil
}
