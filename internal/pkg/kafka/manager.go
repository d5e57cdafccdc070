package kafka

import (
	"Lumen/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	likesConsumer sarama.ConsumerGroup
	likesHandler  sarama.ConsumerGroupHandler

	savesConsumer sarama.ConsumerGroup
	savesHandler  sarama.ConsumerGroupHandler

	commentsConsumer sarama.ConsumerGroup
	commentsHandler  sarama.ConsumerGroupHandler

	viewsConsumer sarama.ConsumerGroup
	viewsHandler  sarama.ConsumerGroupHandler
}

// NewConsumerManager 构造函数
func NewConsumerManager(cfg *config.Config) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	likesConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaLikeConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	likesHandler := NewLikesHandler()

	savesConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaSaveConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	savesHandler := NewSavesHandler()

	commentsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaCommentConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	commentsHandler := NewCommentsHandler()

	viewsConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaViewConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	viewsHandler := NewViewsHandler()

	return &ConsumerManager{
		likesConsumer:    likesConsumer,
		likesHandler:     likesHandler,
		savesConsumer:    savesConsumer,
		savesHandler:     savesHandler,
		commentsConsumer: commentsConsumer,
		commentsHandler:  commentsHandler,
		viewsConsumer:    viewsConsumer,
		viewsHandler:     viewsHandler,
	}, nil
}

// Start 启动所有消费者，阻塞直到 ctx 取消
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go m.consumeLoop(ctx, m.likesConsumer, m.likesHandler, cfg.KafkaLikeConsumer.Topic, "like")
	go m.consumeLoop(ctx, m.savesConsumer, m.savesHandler, cfg.KafkaSaveConsumer.Topic, "save")
	go m.consumeLoop(ctx, m.commentsConsumer, m.commentsHandler, cfg.KafkaCommentConsumer.Topic, "comment")
	go m.consumeLoop(ctx, m.viewsConsumer, m.viewsHandler, cfg.KafkaViewConsumer.Topic, "view")

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	for name, consumer := range map[string]sarama.ConsumerGroup{
		"like":    m.likesConsumer,
		"save":    m.savesConsumer,
		"comment": m.commentsConsumer,
		"view":    m.viewsConsumer,
	} {
		if err := consumer.Close(); err != nil {
			log.Error("Failed to close consumer", "name", name, "err", err)
		}
	}

	return nil
}

func (m *ConsumerManager) consumeLoop(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic, name string) {
	log.Info("consumer started", "name", name, "topic", topic)
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			log.Error("Error from consumer", "name", name, "err", err)
		}
		if ctx.Err() != nil {
			return
		}
	}
}
