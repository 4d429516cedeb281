package session

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Cities the storefront ships to. The signup form offers exactly these.
var Cities = []interface{}{"Madrid", "Barcelona", "Valencia", "Sevilla", "Zaragoza"}

var noSpaces = regexp.MustCompile(`^\S+$`)

// SignUpRequest carries the signup form fields.
type SignUpRequest struct {
	Username string `json:"usuario" binding:"required"`
	Password string `json:"contrasena" binding:"required"`
	Repeat   string `json:"repite" binding:"required"`
	City     string `json:"ciudad" binding:"required"`
}

func (r SignUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("rellena todos los campos"),
			validation.Length(3, 50).Error("el usuario debe tener al menos 3 caracteres"),
			validation.Match(noSpaces).Error("el usuario no puede contener espacios"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("rellena todos los campos"),
			validation.Length(6, 128).Error("la contraseña debe tener al menos 6 caracteres"),
		),
		validation.Field(&r.Repeat,
			validation.Required.Error("rellena todos los campos"),
			validation.By(func(interface{}) error {
				if r.Password != r.Repeat {
					return validation.NewError("validation_password_mismatch", "las contraseñas no coinciden")
				}
				return nil
			}),
		),
		validation.Field(&r.City,
			validation.Required.Error("rellena todos los campos"),
			validation.In(Cities...).Error("selecciona una ciudad válida"),
		),
	)
}

// SignInRequest carries the login form fields.
type SignInRequest struct {
	Username string `json:"usuario" binding:"required"`
	Password string `json:"contrasena" binding:"required"`
}

func (r SignInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}
