package service

import (
	"errors"

	"github.com/webcraftstudio/webcraft/internal/contact"
	"github.com/webcraftstudio/webcraft/internal/repository"
)

// Sentinel errors for service layer
var (
	ErrValidation = contact.ErrValidation
	ErrNotFound   = repository.ErrNotFound
	ErrCaptcha    = errors.New("captcha verification failed")
)
