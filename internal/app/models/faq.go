package models

// FAQ represents a frequently asked question with its published answer.
type FAQ struct {
	ID       int64  `json:"id" db:"faq_id"`
	Question string `json:"question" db:"question"`
	Answer   string `json:"answer" db:"answer"`
	Category string `json:"category" db:"category"`
}
