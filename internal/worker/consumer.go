package worker

import (
	"context"
	"encoding/json"

	"github.com/jipgi-intake/internal/logger"
	"github.com/jipgi-intake/internal/provider"
	"github.com/jipgi-intake/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 비동기 작업 소비자
type Consumer struct {
	*provider.Container
}

// NewConsumer 소비자 생성
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register 핸들러 등록
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskIntakeNotify, c.handleIntakeNotify)
}

func (c *Consumer) handleIntakeNotify(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.IntakeNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_intake_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.Message == "" {
		logger.Debugw("worker_intake_notify_skip_empty_message")
		return nil
	}
	// 전달 보장 없는 알림이므로 발송 실패도 작업 성공으로 처리한다.
	c.NotifyService.Send(ctx, payload.Message)
	return nil
}
