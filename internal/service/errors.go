package service

import "errors"

// 서비스 공통 오류
var (
	ErrInvalidCredentials = errors.New("자격 증명이 올바르지 않습니다")
	ErrRequestNotFound    = errors.New("문의를 찾을 수 없습니다")
	ErrForbiddenVendor    = errors.New("다른 업체의 문의는 처리할 수 없습니다")

	ErrDepartmentInvalid = errors.New("부문 값이 선택지에 없습니다")
	ErrRegionInvalid     = errors.New("지역팀 값이 선택지에 없습니다")
	ErrSalesTeamInvalid  = errors.New("영업팀 값이 선택지에 없습니다")
	ErrContactNameEmpty  = errors.New("담당자명이 비어 있습니다")
	ErrStoreNameEmpty    = errors.New("점포명이 비어 있습니다")
	ErrPhoneEmpty        = errors.New("연락처가 비어 있습니다")

	// 엄격 모드 전용: 자동 정규화 대신 거부한다.
	ErrPhoneNotDigits      = errors.New("연락처는 숫자만 입력해야 합니다")
	ErrStoreNameDesignator = errors.New("점포명에서 끝의 지정자를 빼고 입력해야 합니다")

	ErrScheduledDateInvalid = errors.New("예정입고일 형식이 올바르지 않습니다")
	ErrRoutingVendorEmpty   = errors.New("업체명이 비어 있습니다")
)
