package world

import "fmt"

// MapConfig - параметры построения карты.
type MapConfig struct {
	Width       int
	Height      int
	TerrainFile string // необязательный файл рельефа
}

// BuildMap приводит карту к размеру из конфига (сохраняя клетки, попавшие
// в новые границы) и затем, если задан файл, загружает из него рельеф.
func (l *Level) BuildMap(cfg MapConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("build map %dx%d: %w", cfg.Width, cfg.Height, ErrInvalidDimensions)
	}

	if cfg.Width != l.Width() || cfg.Height != l.Height() {
		if err := l.cells.Resize(cfg.Height, cfg.Width); err != nil {
			return fmt.Errorf("build map: %w", err)
		}
		l.pruneActors()
	}

	if cfg.TerrainFile != "" {
		return l.LoadTerrain(cfg.TerrainFile)
	}
	return nil
}
