package repository

import "errors"

// ErrNotFound возвращается, когда запрошенная строка отсутствует.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists возвращается при нарушении уникальности.
var ErrAlreadyExists = errors.New("already exists")
