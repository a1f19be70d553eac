package service

import (
	"strings"

	"github.com/jipgi-intake/internal/constants"
)

// normalizePhone 연락처 정규화. 엄격 모드에서는 숫자 외 문자가 섞이면 거부하고,
// 아니면 하이픈 등 비숫자 문자를 전부 걷어낸다.
func normalizePhone(phone string, strict bool) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", ErrPhoneEmpty
	}

	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			continue
		}
		if strict {
			return "", ErrPhoneNotDigits
		}
	}
	if digits.Len() == 0 {
		return "", ErrPhoneEmpty
	}
	return digits.String(), nil
}

// normalizeStoreName 점포명 정규화. 끝의 지정자 문자("점")는 한 번만 제거한다.
// 엄격 모드에서는 지정자가 이미 붙어 있으면 거부한다.
func normalizeStoreName(name string, strict bool) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrStoreNameEmpty
	}

	trimmed, hadDesignator := strings.CutSuffix(name, constants.StoreNameDesignator)
	if !hadDesignator {
		return name, nil
	}
	if strict {
		return "", ErrStoreNameDesignator
	}
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return "", ErrStoreNameEmpty
	}
	return trimmed, nil
}

// validateOrgKey 조직 키 3종이 고정 선택지에 있는지 확인한다.
func validateOrgKey(department, region, salesTeam string) error {
	if !containsLabel(constants.Departments, department) {
		return ErrDepartmentInvalid
	}
	if !containsLabel(constants.Regions, region) {
		return ErrRegionInvalid
	}
	if !containsLabel(constants.SalesTeams, salesTeam) {
		return ErrSalesTeamInvalid
	}
	return nil
}

func containsLabel(labels []string, value string) bool {
	for _, label := range labels {
		if label == value {
			return true
		}
	}
	return false
}
