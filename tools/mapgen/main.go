package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"tactical-sim/internal/domain"
	"tactical-sim/internal/world"
	"tactical-sim/pkg/dungeon"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "rooms":
		if len(os.Args) < 7 {
			fmt.Println("Usage: mapgen rooms <width> <height> <rooms> <seed> <out.map>")
			return
		}
		nums, err := parseInts(os.Args[2:6])
		if err != nil {
			fmt.Printf("Invalid number: %v\n", err)
			return
		}
		b := dungeon.NewLevel(nil).
			WithSize(nums[0], nums[1]).
			WithRooms(nums[2]).
			WithRand(rand.New(rand.NewSource(int64(nums[3]))))
		save(b, os.Args[6])
	case "arena":
		if len(os.Args) < 5 {
			fmt.Println("Usage: mapgen arena <width> <height> <out.map>")
			return
		}
		nums, err := parseInts(os.Args[2:4])
		if err != nil {
			fmt.Printf("Invalid number: %v\n", err)
			return
		}
		save(dungeon.NewLevel(nil).WithSize(nums[0], nums[1]).WithArena(), os.Args[4])
	case "show":
		if len(os.Args) < 3 {
			fmt.Println("Usage: mapgen show <file.map>")
			return
		}
		lvl, err := world.NewLevel(1, 1, domain.NewRegistry())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := lvl.LoadTerrain(os.Args[2]); err != nil {
			fmt.Printf("Invalid map: %v\n", err)
			return
		}
		if err := lvl.WriteTerrain(os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	default:
		printHelp()
	}
}

func save(b *dungeon.LevelBuilder, path string) {
	lvl, err := b.Build()
	if err != nil {
		fmt.Printf("Build failed: %v\n", err)
		return
	}
	if err := lvl.SaveTerrain(path); err != nil {
		fmt.Printf("Save failed: %v\n", err)
		return
	}
	fmt.Printf("%s: %dx%d, rooms: %d\n", path, lvl.Width(), lvl.Height(), len(b.Rooms()))
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func printHelp() {
	fmt.Println(`Map Generator - файлы рельефа для tactics
Commands:
  rooms <w> <h> <n> <seed> <out>  - комнаты и коридоры
  arena <w> <h> <out>             - открытая площадка со стеной по краю
  show <file>                     - проверить файл и напечатать карту`)
}
