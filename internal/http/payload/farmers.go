package payload

import (
	"github.com/jellydator/validation"
)

type RegisterFarmerRequest struct {
	Name string `json:"name"`
}

func (p *RegisterFarmerRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 255)),
	)
}
