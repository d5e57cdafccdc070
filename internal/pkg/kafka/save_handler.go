package kafka

import (
	"Lumen/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// SavesHandler 消费 saved_posts 表的 Canal 变更
type SavesHandler struct {
}

func NewSavesHandler() *SavesHandler {
	return &SavesHandler{}
}

func (s *SavesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post save consumer setup")
	return nil
}

func (s *SavesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post save consumer cleanup")
	return nil
}

func (s *SavesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-save consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-save process batch error", "err", err)
		return err
	}
	return nil
}

func (s *SavesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "saved_posts")
	if err != nil {
		return err
	}

	switch canalMsg.Type {
	case INSERT:
		return s.handleInsert(ctx, canalMsg)
	case DELETE:
		return s.handleDelete(ctx, canalMsg)
	default:
		return nil
	}
}

func (s *SavesHandler) handleInsert(ctx context.Context, msg *CanalMessage) error {
	postID := StrToUint64(msg.Data[0]["post_id"])

	ExecAction(ctx, ActionParams{
		TargetID:       postID,
		CountKeyPrefix: consts.PostSaveKey,
		DirtyKey:       consts.PostDirtyKey,
		IsIncrement:    true,
	})

	log.InfoContext(ctx, "post save inserted", "postID", postID)
	return nil
}

func (s *SavesHandler) handleDelete(ctx context.Context, msg *CanalMessage) error {
	postID := StrToUint64(msg.Data[0]["post_id"])

	ExecAction(ctx, ActionParams{
		TargetID:       postID,
		CountKeyPrefix: consts.PostSaveKey,
		DirtyKey:       consts.PostDirtyKey,
		IsIncrement:    false,
	})

	log.InfoContext(ctx, "post unsave processed", "postID", postID)
	return nil
}
