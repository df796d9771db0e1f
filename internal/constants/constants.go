package constants

// Audit action names.
const (
	Create      = "CREATE"
	Update      = "UPDATE"
	Delete      = "DELETE"
	ChangeState = "CHANGE_STATE"
	CreateLoan  = "CREATE_LOAN"
	ReturnLoan  = "RETURN_LOAN"
	ExtendLoan  = "EXTEND_LOAN"
	DeleteLoan  = "DELETE_LOAN"
)
