package service

import "fmt"

// Makine tarafından okunur doğrulama nedenleri
const (
	ReasonMissingFields = "missing_fields"
	ReasonInvalidPhone  = "invalid_phone"
)

// ValidationError istemci girdisi doğrulama kurallarına uymuyor (HTTP 400)
type ValidationError struct {
	Reason  string // örn. missing_fields, invalid_phone
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError başvurulan kayıt yok (HTTP 404)
type NotFoundError struct {
	Entity  string // örn. service, order
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// StorageError kalıcılık katmanı hatası (HTTP 500)
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
