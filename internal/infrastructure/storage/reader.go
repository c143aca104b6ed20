package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrBadMagic           = errors.New("invalid magic")
	ErrUnsupportedVersion = errors.New("unsupported version")
)

// ReadStateFile читает состояние из файла. Ошибка открытия возвращается как есть
// (обёрнутой), повторных попыток нет.
func ReadStateFile(path string) (SaveState, error) {
	f, err := os.Open(path)
	if err != nil {
		return SaveState{}, fmt.Errorf("open save file: %w", err)
	}
	defer f.Close()

	return ReadState(f)
}

func ReadState(r io.Reader) (SaveState, error) {
	var header SaveFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return SaveState{}, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return SaveState{}, fmt.Errorf("%w: %q", ErrBadMagic, header.Magic[:])
	}
	if header.Version != Version1 {
		return SaveState{}, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, header.Version, Version1)
	}

	return SaveState{
		Turn:           int(header.Turn),
		OperativesTurn: header.OperativesTurn != 0,
	}, nil
}
