// Package validation checks configuration structs and command arguments.
//
// Struct tag validation goes through a shared go-playground validator.
// Field names in messages follow the mapstructure, yaml, then json tag and
// fall back to the snake_cased Go field name.
//
//	type Options struct {
//	    Output string `mapstructure:"output" validate:"oneof=text json"`
//	}
//	err := validation.Validate(opts)
//
// Arguments parsed outside a struct use the builder:
//
//	v := validation.New()
//	v.Min("size", size, 1)
//	err := v.Error()
package validation
