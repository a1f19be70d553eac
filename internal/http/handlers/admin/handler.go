package admin

import "github.com/jipgi-intake/internal/provider"

// Handler 데이터 관리 화면용 핸들러 묶음
type Handler struct {
	*provider.Container
}

// New 핸들러 생성
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
