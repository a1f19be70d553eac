package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jipgi-intake/internal/config"
	"github.com/jipgi-intake/internal/logger"
	"github.com/jipgi-intake/internal/queue"
)

// Notifier 알림 발송 협력자. 전달 보장은 없다.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// LogNotifier 발송처가 없을 때의 기본 구현. 로그만 남긴다.
type LogNotifier struct{}

// Notify 메시지를 로그로 기록
func (LogNotifier) Notify(_ context.Context, message string) error {
	logger.Infow("notify_log_only", "message", message)
	return nil
}

// WebhookNotifier 설정된 URL로 메시지를 POST하는 구현
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier 웹훅 알림자 생성
func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Notify {"message": ...} JSON을 전송한다
func (n *WebhookNotifier) Notify(ctx context.Context, message string) error {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook status %d", resp.StatusCode)
	}
	return nil
}

// NewNotifierFromConfig 설정에 따라 알림자 선택
func NewNotifierFromConfig(cfg config.NotifyConfig) Notifier {
	url := strings.TrimSpace(cfg.WebhookURL)
	if url == "" {
		return LogNotifier{}
	}
	return NewWebhookNotifier(url, time.Duration(cfg.TimeoutMS)*time.Millisecond)
}

// NotifyService 전환 알림 디스패치. 큐가 켜져 있으면 비동기 작업으로 넘기고,
// 아니면 그 자리에서 최선 노력으로 보낸다. 어느 쪽이든 실패는 로그로만 남고
// 호출한 작업을 실패시키지 않는다.
type NotifyService struct {
	queueClient *queue.Client
	notifier    Notifier
}

// NewNotifyService 알림 서비스 생성
func NewNotifyService(queueClient *queue.Client, notifier Notifier) *NotifyService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &NotifyService{
		queueClient: queueClient,
		notifier:    notifier,
	}
}

// Dispatch 알림을 큐 또는 동기 경로로 내보낸다
func (s *NotifyService) Dispatch(requestID uint, message string) {
	if s == nil {
		return
	}
	if s.queueClient.Enabled() {
		payload := queue.IntakeNotifyPayload{RequestID: requestID, Message: message}
		if err := s.queueClient.EnqueueIntakeNotify(payload); err != nil {
			logger.Warnw("notify_enqueue_failed", "error", err, "request_id", requestID, "message", message)
		}
		return
	}
	s.Send(context.Background(), message)
}

// Send 알림자 호출. 워커와 동기 경로가 공유한다.
func (s *NotifyService) Send(ctx context.Context, message string) {
	if s == nil || s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, message); err != nil {
		logger.Warnw("notify_send_failed", "error", err, "message", message)
	}
}
