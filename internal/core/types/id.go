package types

import (
	"fmt"
	"strconv"

	"tactical-sim/internal/core/types/enums"
)

// EntityID - 64-битный handle актора в реестре.
//
// Ячейки и списки уровня хранят только EntityID, а не указатели:
// уничтоженный актор не оставляет висячих ссылок, устаревший handle
// просто перестаёт разрешаться.
//
// Формат битов (от старших к младшим):
//
//	[ Reserved (8) | Kind (8) | Generation (16) | Index (32) ]
//
// Где:
//   - Kind - вид актора (enums.ActorKind)
//   - Generation - версия слота (защита от устаревших ссылок)
//   - Index - индекс слота в реестре
type EntityID uint64

// NilEntityID - нулевой идентификатор. Поколения в реестре начинаются с 1,
// поэтому выданный handle никогда не равен нулю.
const NilEntityID EntityID = 0

const (
	bitsIndex = 32
	bitsGen   = 16
	bitsKind  = 8

	shiftGen  = bitsIndex
	shiftKind = bitsIndex + bitsGen

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID собирает EntityID из составных частей.
// Диапазоны не проверяются.
func PackEntityID(kind enums.ActorKind, gen uint16, index uint32) EntityID {
	return EntityID(
		(uint64(kind) << shiftKind) |
			(uint64(gen) << shiftGen) |
			uint64(index),
	)
}

// Index возвращает индекс слота в реестре.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота.
func (id EntityID) Generation() uint16 {
	return uint16((id >> shiftGen) & maskGen)
}

// Kind возвращает вид актора.
func (id EntityID) Kind() enums.ActorKind {
	return enums.ActorKind((id >> shiftKind) & maskKind)
}

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String предназначен для логов и отладки.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf(
		"[kind=%s gen=%d idx=%d]",
		id.Kind(),
		id.Generation(),
		id.Index(),
	)
}

// MarshalJSON сериализует EntityID в JSON как строку,
// чтобы не терять точность uint64 в JS-клиентах.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON принимает и строковое, и числовое представление.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*id = EntityID(v)
	return nil
}
