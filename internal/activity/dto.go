package activity

type LogActivityDTO struct {
	Action  string  `json:"action"`
	Details *string `json:"details,omitempty"`
}

type LogActivityResponse struct {
	Message string `json:"message"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d LogActivityDTO) Validate() error {
	if d.Action == "" {
		return ValidationError{Msg: "action is required"}
	}
	return nil
}
