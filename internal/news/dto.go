package news

type CreateNewsDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateNewsDTO) Validate() error {
	if d.Title == "" {
		return ValidationError{Msg: "title is required"}
	}
	if d.Content == "" {
		return ValidationError{Msg: "content is required"}
	}
	return nil
}
