package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// PersonalInfo is the hero block of the portfolio.
type PersonalInfo struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Tagline   string `json:"tagline"`
	Location  string `json:"location"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	HeroImage string `json:"heroImage"`
}

func (p PersonalInfo) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Email, validation.Required, is.Email),
	)
}

type AboutInfo struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	BackgroundImage string `json:"backgroundImage"`
}

type SkillCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

func (s SkillCategory) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Category, validation.Required),
		validation.Field(&s.Items, validation.Required),
	)
}

type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Type         string   `json:"type"`
	Period       string   `json:"period"`
	Location     string   `json:"location"`
	Achievements []string `json:"achievements"`
}

func (e Experience) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Company, validation.Required),
	)
}

type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Impact       string   `json:"impact"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
	Category     string   `json:"category"`
}

func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Description, validation.Required),
	)
}

// PortfolioData is the singleton portfolio document.
// Exactly one instance exists per deployment; PUT replaces it wholesale.
type PortfolioData struct {
	Personal   PersonalInfo    `json:"personal"`
	About      AboutInfo       `json:"about"`
	Skills     []SkillCategory `json:"skills"`
	Experience []Experience    `json:"experience"`
	Projects   []Project       `json:"projects"`
}

func (d PortfolioData) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Personal),
		validation.Field(&d.Skills, validation.Required),
		validation.Field(&d.Experience, validation.Required),
		validation.Field(&d.Projects, validation.Required),
	)
}
