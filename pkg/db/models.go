package db

// Assignment is a durable duty assignment record, created when a generated
// roster is published
type Assignment struct {
	ID       string
	MemberID string
	Role     string
	DutyDate string // 2006-01-02
}
