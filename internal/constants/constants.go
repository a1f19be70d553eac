package constants

// 문의 상태 상수
const (
	RequestStatusSubmitted = "submitted"
	RequestStatusScheduled = "scheduled"
	RequestStatusCompleted = "completed"
)

// VendorUnassigned 매칭 규칙이 없을 때 찍히는 업체명
const VendorUnassigned = "미지정"

// StoreNameDesignator 점포명 끝에 붙는 지정자 문자("행복점" -> "행복")
const StoreNameDesignator = "점"

// Departments 부문 선택지 (6개 고정)
var Departments = []string{"1부문", "2부문", "3부문", "4부문", "5부문", "6부문"}

// Regions 지역팀 선택지 (6개 고정)
var Regions = []string{"1지역", "2지역", "3지역", "4지역", "5지역", "6지역"}

// SalesTeams 영업팀 선택지 (9개 고정)
var SalesTeams = []string{"1팀", "2팀", "3팀", "4팀", "5팀", "6팀", "7팀", "8팀", "9팀"}

// 큐 이름 상수
const (
	QueueDefault = "default"
)

// 비동기 작업 이름 상수
const (
	TaskIntakeNotify = "intake:notify"
)

// DateLayout 예정입고일/완료일 표기 형식
const DateLayout = "2006-01-02"

// CreatedAtLayout 등록일 표기 형식
const CreatedAtLayout = "2006-01-02 15:04"
