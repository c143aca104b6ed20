package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/sirupsen/logrus"

	"tactical-sim/pkg/grid"
	"tactical-sim/pkg/logger"
)

// Формат файла рельефа:
//
//	<height> <width>
//	. # G P S ...   (height строк по width символов через пробел)
//
// Сохраняется только рельеф: акторы и предметы на земле в файл не попадают.

// WriteTerrain пишет рельеф в текстовом формате.
func (l *Level) WriteTerrain(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", l.Height(), l.Width()); err != nil {
		return fmt.Errorf("write terrain header: %w", err)
	}

	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			c, _ := l.cells.Get(y, x)
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteRune(c.kind.Rune())
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write terrain: %w", err)
	}
	return nil
}

func (l *Level) SaveTerrain(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save terrain: %w", err)
	}
	defer f.Close()

	if err := l.WriteTerrain(f); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"path":      path,
		"width":     l.Width(),
		"height":    l.Height(),
	}).Debug("Terrain saved.")
	return f.Close()
}

// ReadTerrain заменяет карту прочитанной. Новые клетки пусты: все акторы
// снимаются с карты и из списков обхода, предметы на земле теряются.
func (l *Level) ReadTerrain(r io.Reader) error {
	cells, err := decodeTerrain(r)
	if err != nil {
		return err
	}
	l.cells = cells
	l.pruneActors()
	return nil
}

func (l *Level) LoadTerrain(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load terrain: %w", err)
	}
	defer f.Close()

	if err := l.ReadTerrain(f); err != nil {
		return fmt.Errorf("load terrain %s: %w", path, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "world",
		"path":      path,
		"width":     l.Width(),
		"height":    l.Height(),
	}).Info("Terrain loaded.")
	return nil
}

func decodeTerrain(r io.Reader) (*grid.Grid[Cell], error) {
	br := bufio.NewReader(r)

	var height, width int
	if _, err := fmt.Fscan(br, &height, &width); err != nil {
		return nil, fmt.Errorf("read terrain header: %w", err)
	}

	cells, err := grid.New[Cell](height, width)
	if err != nil {
		return nil, fmt.Errorf("terrain %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ch, err := nextSymbol(br)
			if err != nil {
				return nil, fmt.Errorf("terrain cell (%d,%d): %w", x, y, err)
			}
			c, _ := cells.At(y, x)
			c.kind = ParseCellType(ch)
		}
	}
	return cells, nil
}

// nextSymbol пропускает пробельные символы, как потоковое чтение по символу.
func nextSymbol(br *bufio.Reader) (rune, error) {
	for {
		ch, _, err := br.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if !unicode.IsSpace(ch) {
			return ch, nil
		}
	}
}
