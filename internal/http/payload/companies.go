package payload

import (
	"greenmint/internal/core"

	"github.com/jellydator/validation"
)

type RegisterCompanyRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p *RegisterCompanyRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Email, validation.Required, validation.Match(emailRegex)),
		validation.Field(&p.Password, validation.Required, validation.Length(8, 72)),
	)
}

func (p RegisterCompanyRequest) ToCoreInput() core.RegisterCompanyInput {
	return core.RegisterCompanyInput{
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p *LoginRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Email, validation.Required),
		validation.Field(&p.Password, validation.Required),
	)
}

func (p LoginRequest) ToCoreInput() core.LoginInput {
	return core.LoginInput{
		Email:    p.Email,
		Password: p.Password,
	}
}
