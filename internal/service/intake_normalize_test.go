package service

import (
	"errors"
	"testing"
)

func TestNormalizePhoneStripsNonDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"010-1234-5678", "01012345678"},
		{"01012345678", "01012345678"},
		{" 010 1234 5678 ", "01012345678"},
		{"(02)123-4567", "021234567"},
	}
	for _, tc := range cases {
		got, err := normalizePhone(tc.in, false)
		if err != nil {
			t.Fatalf("normalize %q failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("normalize %q want %q got %q", tc.in, tc.want, got)
		}
	}
}

func TestNormalizePhoneStrictRejectsNonDigits(t *testing.T) {
	if _, err := normalizePhone("010-1234-5678", true); !errors.Is(err, ErrPhoneNotDigits) {
		t.Fatalf("strict mode want ErrPhoneNotDigits got %v", err)
	}
	got, err := normalizePhone("01012345678", true)
	if err != nil {
		t.Fatalf("strict digits-only failed: %v", err)
	}
	if got != "01012345678" {
		t.Fatalf("strict digits-only want unchanged got %q", got)
	}
}

func TestNormalizePhoneEmpty(t *testing.T) {
	if _, err := normalizePhone("  ", false); !errors.Is(err, ErrPhoneEmpty) {
		t.Fatalf("blank phone want ErrPhoneEmpty got %v", err)
	}
	// 숫자가 하나도 없으면 빈 값 취급
	if _, err := normalizePhone("---", false); !errors.Is(err, ErrPhoneEmpty) {
		t.Fatalf("digit-free phone want ErrPhoneEmpty got %v", err)
	}
}

func TestNormalizeStoreNameStripsDesignator(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"행복점", "행복"},
		{"행복", "행복"},
		{"중앙시장", "중앙시장"},
		{" 강변점 ", "강변"},
		// 지정자는 끝에서 한 번만 제거한다
		{"점포점", "점포"},
	}
	for _, tc := range cases {
		got, err := normalizeStoreName(tc.in, false)
		if err != nil {
			t.Fatalf("normalize %q failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("normalize %q want %q got %q", tc.in, tc.want, got)
		}
	}
}

func TestNormalizeStoreNameStrictRejectsDesignator(t *testing.T) {
	if _, err := normalizeStoreName("행복점", true); !errors.Is(err, ErrStoreNameDesignator) {
		t.Fatalf("strict mode want ErrStoreNameDesignator got %v", err)
	}
	got, err := normalizeStoreName("행복", true)
	if err != nil {
		t.Fatalf("strict plain name failed: %v", err)
	}
	if got != "행복" {
		t.Fatalf("strict plain name want 행복 got %q", got)
	}
}

func TestNormalizeStoreNameEmpty(t *testing.T) {
	if _, err := normalizeStoreName("  ", false); !errors.Is(err, ErrStoreNameEmpty) {
		t.Fatalf("blank name want ErrStoreNameEmpty got %v", err)
	}
	// 지정자만 있으면 제거 후 빈 값이 된다
	if _, err := normalizeStoreName("점", false); !errors.Is(err, ErrStoreNameEmpty) {
		t.Fatalf("designator-only name want ErrStoreNameEmpty got %v", err)
	}
}

func TestValidateOrgKey(t *testing.T) {
	if err := validateOrgKey("1부문", "1지역", "1팀"); err != nil {
		t.Fatalf("valid org key rejected: %v", err)
	}
	if err := validateOrgKey("6부문", "6지역", "9팀"); err != nil {
		t.Fatalf("boundary org key rejected: %v", err)
	}
	if err := validateOrgKey("7부문", "1지역", "1팀"); !errors.Is(err, ErrDepartmentInvalid) {
		t.Fatalf("bad department want ErrDepartmentInvalid got %v", err)
	}
	if err := validateOrgKey("1부문", "7지역", "1팀"); !errors.Is(err, ErrRegionInvalid) {
		t.Fatalf("bad region want ErrRegionInvalid got %v", err)
	}
	if err := validateOrgKey("1부문", "1지역", "10팀"); !errors.Is(err, ErrSalesTeamInvalid) {
		t.Fatalf("bad sales team want ErrSalesTeamInvalid got %v", err)
	}
	if err := validateOrgKey("", "", ""); err == nil {
		t.Fatal("empty org key must be rejected")
	}
}
