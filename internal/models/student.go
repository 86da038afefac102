package models

// DefaultParentEmail подставляется, когда родительская почта не указана в
// запросе на старт урока.
const DefaultParentEmail = "parent@example.com"

type Student struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	ParentEmail string `json:"parent_email"`
	Avatar      string `json:"avatar,omitempty"`
	Level       int    `json:"level"`
}

// ApplyDefaults заполняет только отсутствующие поля; заданные значения
// никогда не перетираются.
func (s *Student) ApplyDefaults() {
	if s.ParentEmail == "" {
		s.ParentEmail = DefaultParentEmail
	}
	if s.Level == 0 {
		s.Level = 1
	}
}

func (s *Student) Validate() error {
	if s.Name == "" {
		return invalidField("name", "must not be empty")
	}
	if !validEmail(s.ParentEmail) {
		return invalidField("parent_email", "must be a valid email address")
	}
	if s.Level < 1 {
		return invalidField("level", "must be at least 1")
	}
	return nil
}
