package handlers

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// códigos aceitos: 7 dígitos (município) ou 2 dígitos (estado)
var padraoIBGE = regexp.MustCompile(`^(\d{7}|\d{2})$`)

var validate = novoValidador()

func novoValidador() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("codigo_ibge", func(fl validator.FieldLevel) bool {
		return padraoIBGE.MatchString(fl.Field().String())
	})
	return v
}

type pedidoIBGE struct {
	IBGE string `validate:"required,codigo_ibge"`
}

// validarIBGE limpa e valida o código informado
func validarIBGE(ibge string) (string, bool) {
	ibge = strings.TrimSpace(ibge)
	if err := validate.Struct(pedidoIBGE{IBGE: ibge}); err != nil {
		return "", false
	}
	return ibge, true
}
