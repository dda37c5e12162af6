package handler

// errorResponse is the standard error envelope returned on most 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// validationResponse carries the full list of rule violations for a form.
type validationResponse struct {
	Errors []string `json:"errors"`
}

// --- Contact form ---

type contactRequest struct {
	Name    string `json:"name"    validate:"required,min=2"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"omitempty,min=10"`
	Subject string `json:"subject" validate:"required,min=3"`
	Message string `json:"message" validate:"required,min=10"`
}

type contactResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// --- Appointment booking ---

type appointmentRequest struct {
	Name         string `json:"name"          validate:"required,min=2"`
	Email        string `json:"email"         validate:"required,email"`
	Phone        string `json:"phone"         validate:"omitempty,min=10"`
	Date         string `json:"date"          validate:"required,datetime=2006-01-02"`
	Time         string `json:"time"          validate:"required"`
	PracticeArea string `json:"practice_area" validate:"required"`
	Notes        string `json:"notes"         validate:"omitempty,max=2000"`
}

type appointmentResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// --- Newsletter subscription ---

type subscribeRequest struct {
	Name  string `json:"name"  validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

type subscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
