package domain

import "reflect"

// IsNilActor ловит и nil-интерфейс, и nil-указатель внутри интерфейса (var op *Operative).
func IsNilActor(a Actor) bool {
	return a == nil || isNilPointer(a)
}

// IsNilItem - то же для предметов.
func IsNilItem(it Item) bool {
	return it == nil || isNilPointer(it)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
