package consumers

import (
	"classportal/internal/app/deps"
	dl "classportal/internal/core/domain/logging"
	announcementcreated "classportal/internal/rabbitmq/consumers/announcement_created"
	"context"
)

func initAnnouncementCreatedConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqAnnouncementQueue
	announcementCreatedConsumer := announcementcreated.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.SseServer,
	)
	if err = announcementCreatedConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps) func() {
	shutdownAnnouncementCreatedConsumer := initAnnouncementCreatedConsumer(deps)

	return func() {
		shutdownAnnouncementCreatedConsumer()
	}
}
