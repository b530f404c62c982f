package handler

type registerRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,min=6"`
}

type registerResponse struct {
	Msg    string `json:"msg"`
	UserID int64  `json:"user_id"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileResponse struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	SetupComplete bool   `json:"setup_complete"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

// setupRequest carries the one-time profile setup. Field values are stored
// as given: absent fields persist as zero values.
type setupRequest struct {
	MonthlyIncome float64            `json:"monthly_income"`
	Goal          string             `json:"goal"`
	FixedExpenses map[string]float64 `json:"fixed_expenses"`
}

type messageResponse struct {
	Msg string `json:"msg"`
}
