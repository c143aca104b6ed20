package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	MagicHeader string = `TSAV` // 4 байта
	Version1    uint32 = 1

	// SaveExt - расширение файлов сохранения в каталоге SaveService.
	SaveExt = ".tsav"
	// TerrainSuffix - рельеф лежит рядом с сохранением: <path>.map
	TerrainSuffix = ".map"
)

// SaveFileHeader - точное представление файла сохранения в памяти.
// binary.Write пишет его целиком: только массивы и числа.
type SaveFileHeader struct {
	Magic          [4]byte // 4 байта
	Version        uint32  // 4 байта
	Turn           int64   // 8 байт
	OperativesTurn uint8   // 1 байт
}

// SaveState - то, что сохраняется о партии: счётчик ходов и чья очередь.
// Позиции, здоровье и снаряжение акторов не сохраняются.
type SaveState struct {
	Turn           int
	OperativesTurn bool
}

// TerrainPath - путь к файлу рельефа для сохранения по пути path.
func TerrainPath(path string) string {
	return path + TerrainSuffix
}

// SaveService раскладывает сохранения по каталогу.
type SaveService struct {
	SaveDir string
}

func NewSaveService(dir string) (*SaveService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir %s: %w", dir, err)
	}
	return &SaveService{SaveDir: dir}, nil
}

// PathFor строит путь сохранения по имени слота.
func (s *SaveService) PathFor(name string) string {
	return filepath.Join(s.SaveDir, name+SaveExt)
}

// WriteStateFile пишет состояние в файл по пути path.
func WriteStateFile(path string, st SaveState) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create save file: %w", err)
	}
	defer f.Close()

	if err := WriteState(f, st); err != nil {
		return err
	}
	return f.Close()
}

func WriteState(w io.Writer, st SaveState) error {
	header := SaveFileHeader{
		Version: Version1,
		Turn:    int64(st.Turn),
	}
	if st.OperativesTurn {
		header.OperativesTurn = 1
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}
