package handler

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance request payloads run their
// struct tags through. validator caches struct metadata internally, so
// one instance serves all handlers.
var validate = validator.New()
