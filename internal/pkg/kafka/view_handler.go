package kafka

import (
	"Lumen/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ViewsHandler 消费 post_views 表的 Canal 变更
type ViewsHandler struct {
}

func NewViewsHandler() *ViewsHandler {
	return &ViewsHandler{}
}

func (s *ViewsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post view consumer setup")
	return nil
}

func (s *ViewsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post view consumer cleanup")
	return nil
}

func (s *ViewsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-view consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-view process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ViewsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "post_views")
	if err != nil {
		return err
	}

	// 浏览记录正常只有 INSERT，DELETE 只为维持计数平衡
	switch canalMsg.Type {
	case INSERT:
		return s.handleInsert(ctx, canalMsg)
	case DELETE:
		return s.handleDelete(ctx, canalMsg)
	default:
		return nil
	}
}

func (s *ViewsHandler) handleInsert(ctx context.Context, msg *CanalMessage) error {
	ExecAction(ctx, ActionParams{
		TargetID:       StrToUint64(msg.Data[0]["post_id"]),
		CountKeyPrefix: consts.PostViewKey,
		DirtyKey:       consts.PostDirtyKey,
		IsIncrement:    true,
	})
	return nil
}

func (s *ViewsHandler) handleDelete(ctx context.Context, msg *CanalMessage) error {
	postID := StrToUint64(msg.Data[0]["post_id"])

	ExecAction(ctx, ActionParams{
		TargetID:       postID,
		CountKeyPrefix: consts.PostViewKey,
		DirtyKey:       consts.PostDirtyKey,
		IsIncrement:    false,
	})

	log.InfoContext(ctx, "post view record deleted", "postID", postID)
	return nil
}
