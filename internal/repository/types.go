package repository

// RequestListFilter 문의 목록 조회 조건
type RequestListFilter struct {
	Page       int
	PageSize   int
	Status     string
	Vendor     string
	Department string
	Region     string
	SalesTeam  string
	StoreName  string // 부분 일치 검색
}

// ArchiveListFilter 보관 목록 조회 조건
type ArchiveListFilter struct {
	Page      int
	PageSize  int
	Vendor    string
	StoreName string
}
