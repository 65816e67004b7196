package providers

import (
	"htbnotes/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (v *CnfValidator) Validate() error {
	res := validate.Struct(v.conf)
	if !res.Validate() {
		return res.Errors.OneError()
	}
	return nil
}
