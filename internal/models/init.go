package models

import (
	"strings"

	"github.com/jipgi-intake/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitAdminCredentials 관리자 비밀번호 슬롯 초기화.
// 값이 비어 있으면 해당 슬롯은 건드리지 않는다. 이미 존재하는 슬롯은
// 전달된 값으로 해시를 갱신한다 (비밀번호 교체 경로).
func InitAdminCredentials(general, destructive string) error {
	if err := upsertAdminCredential(AdminCredentialGeneral, general); err != nil {
		return err
	}
	return upsertAdminCredential(AdminCredentialDestructive, destructive)
}

func upsertAdminCredential(name, password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		var count int64
		DB.Model(&AdminCredential{}).Where("name = ?", name).Count(&count)
		if count == 0 {
			logger.Warnw("admin_credential_missing", "name", name)
		}
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var cred AdminCredential
	result := DB.Where("name = ?", name).First(&cred)
	if result.Error == nil {
		return DB.Model(&cred).Update("password_hash", string(hash)).Error
	}
	if err := DB.Create(&AdminCredential{Name: name, PasswordHash: string(hash)}).Error; err != nil {
		return err
	}
	logger.Infow("admin_credential_created", "name", name)
	return nil
}
