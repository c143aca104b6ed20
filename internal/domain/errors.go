package domain

import "errors"

// ErrInvalidConfig - объект не может быть создан с такими параметрами.
// Конструкторы оборачивают её через %w, проверять через errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")
