package queue

import (
	"encoding/json"

	"github.com/jipgi-intake/internal/constants"

	"github.com/hibiken/asynq"
)

// TaskIntakeNotify 입고 처리 알림 작업
const TaskIntakeNotify = constants.TaskIntakeNotify

// IntakeNotifyPayload 알림 작업 페이로드
type IntakeNotifyPayload struct {
	RequestID uint   `json:"request_id"`
	Message   string `json:"message"`
}

// NewIntakeNotifyTask 알림 작업 생성
func NewIntakeNotifyTask(payload IntakeNotifyPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskIntakeNotify, data), nil
}
