package api

type credentialsInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type registrationFormInput struct {
	Username        string `json:"username" form:"username"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	FullName        string `json:"full_name" form:"full_name"`
	Email           string `json:"email" form:"email"`
}

type profileFormInput struct {
	Age              string `json:"age" form:"age"`
	Income           string `json:"income" form:"income"`
	EmploymentStatus string `json:"employment_status" form:"employment_status"`
}

type loanApplicationInput struct {
	Amount     string `json:"amount" form:"amount"`
	TermMonths string `json:"term_months" form:"term_months"`
	Purpose    string `json:"purpose" form:"purpose"`
}

type paymentInput struct {
	Amount string `json:"amount" form:"amount"`
}

type loanStatusInput struct {
	Status string `json:"status" form:"status"`
}
