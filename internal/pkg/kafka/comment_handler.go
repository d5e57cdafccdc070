package kafka

import (
	"Lumen/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// CommentsHandler 消费 comments 表的 Canal 变更
// 评论是软删除，删除会以 UPDATE is_deleted 的形式下发
type CommentsHandler struct {
}

func NewCommentsHandler() *CommentsHandler {
	return &CommentsHandler{}
}

func (s *CommentsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post comment consumer setup")
	return nil
}

func (s *CommentsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post comment consumer cleanup")
	return nil
}

func (s *CommentsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-comment consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-comment process batch error", "err", err)
		return err
	}
	return nil
}

func (s *CommentsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "comments")
	if err != nil {
		return err
	}

	switch canalMsg.Type {
	case INSERT:
		return s.handleInsert(ctx, canalMsg)
	case UPDATE:
		return s.handleUpdate(ctx, canalMsg)
	case DELETE:
		return s.handleDelete(ctx, canalMsg)
	default:
		return nil
	}
}

func (s *CommentsHandler) handleInsert(ctx context.Context, msg *CanalMessage) error {
	row := msg.Data[0]
	postID := StrToUint64(row["post_id"])
	if postID == 0 {
		return errors.Errorf("comment insert without post_id, table=%s", msg.Table)
	}

	ExecAction(ctx, ActionParams{
		TargetID:       postID,
		CountKeyPrefix: consts.PostCommentKey,
		DirtyKey:       consts.PostDirtyKey,
		IsIncrement:    true,
	})

	log.InfoContext(ctx, "post comment inserted", "postID", postID)
	return nil
}

// handleUpdate 软删除：is_deleted 从 0 翻到 1 时扣减计数
func (s *CommentsHandler) handleUpdate(ctx context.Context, msg *CanalMessage) error {
	row := msg.Data[0]
	if !flagFlippedOn(msg, "is_deleted") {
		return nil
	}

	postID := StrToUint64(row["post_id"])
	ExecAction(ctx, ActionParams{
		TargetID:       postID,
		CountKeyPrefix: consts.PostCommentKey,
		DirtyKey:       consts.PostDirtyKey,
		IsIncrement:    false,
	})

	log.InfoContext(ctx, "post comment soft deleted", "postID", postID)
	return nil
}

func (s *CommentsHandler) handleDelete(ctx context.Context, msg *CanalMessage) error {
	row := msg.Data[0]

	// 已软删的评论被物理清理时计数早已扣过
	if isTruthy(row["is_deleted"]) {
		return nil
	}

	postID := StrToUint64(row["post_id"])
	ExecAction(ctx, ActionParams{
		TargetID:       postID,
		CountKeyPrefix: consts.PostCommentKey,
		DirtyKey:       consts.PostDirtyKey,
		IsIncrement:    false,
	})

	log.InfoContext(ctx, "post comment deleted", "postID", postID)
	return nil
}

// flagFlippedOn 判断布尔列是否在本次 UPDATE 中由假变真
func flagFlippedOn(msg *CanalMessage, column string) bool {
	if !isTruthy(msg.Data[0][column]) {
		return false
	}
	if len(msg.Old) == 0 {
		return false
	}
	old, ok := msg.Old[0][column]
	if !ok {
		// Old 中没有该列说明本次没变
		return false
	}
	return !isTruthy(old)
}

func isTruthy(v interface{}) bool {
	switch val := v.(type) {
	case string:
		return val == "1" || val == "true"
	case bool:
		return val
	case float64:
		return val != 0
	default:
		return false
	}
}
