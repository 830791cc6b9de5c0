// mazemesh is a CLI utility that converts ASCII maze maps into 3D meshes.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/mazemesh/internal/config"
	"github.com/Faultbox/mazemesh/internal/logger"
	"github.com/Faultbox/mazemesh/internal/scene"
	"github.com/Faultbox/mazemesh/pkg/maze"
	"github.com/Faultbox/mazemesh/pkg/mesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "convert":
		cmdConvert(args)
	case "info":
		cmdInfo(args)
	case "dump":
		cmdDump(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`mazemesh - ASCII maze to 3D mesh converter

Usage:
  mazemesh <command> [options]

Commands:
  convert [options] [maze.txt]  Convert a maze map to an OBJ mesh
  info [maze.txt]               Show map dimensions and tile statistics
  dump <file.tilemap.bin>       Print the grid stored in a tilemap snapshot

Convert options:
  -config path     Config file (default: ./mazemesh.yaml if present)
  -o path          Output mesh path
  -tilemap path    Output tilemap snapshot path
  -no-tilemap      Skip the tilemap snapshot
  -scale n         World-space edge length of one tile
  -no-optimize     Skip the vertex dedup pass
  -floor           Emit a floor plane (-floor=false disables)
  -ceiling         Emit a ceiling plane
  -zero-unknown    Zero unrecognized tile bytes in the snapshot

Examples:
  mazemesh convert maps/skarabrae.txt
  mazemesh convert -o town.obj -ceiling maps/town.txt
  mazemesh info maps/town.txt`)
}

func cmdConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	meshPath := fs.String("o", "", "Output mesh path")
	tilemapPath := fs.String("tilemap", "", "Output tilemap path")
	noTilemap := fs.Bool("no-tilemap", false, "Skip the tilemap snapshot")
	scale := fs.Float64("scale", 0, "Tile scale (0 keeps configured value)")
	noOptimize := fs.Bool("no-optimize", false, "Skip the vertex dedup pass")
	emitFloor := fs.Bool("floor", false, "Emit a floor plane")
	emitCeiling := fs.Bool("ceiling", false, "Emit a ceiling plane")
	zeroUnknown := fs.Bool("zero-unknown", false, "Zero unrecognized tiles")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Toggles default from config; only flags the user actually passed
	// override it, so "-floor=false" can switch a configured floor off.
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	mapPath := cfg.Input.MapPath
	if fs.NArg() > 0 {
		mapPath = fs.Arg(0)
	}

	m, err := maze.Load(mapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading map '%s': %v\n", mapPath, err)
		os.Exit(1)
	}
	logger.Info("loaded map",
		zap.String("path", mapPath),
		zap.Int("width", m.W),
		zap.Int("height", m.H),
	)

	opts := scene.Options{
		Scale:            cfg.Mesh.Scale,
		Optimize:         cfg.Mesh.Optimize && !*noOptimize,
		EmitFloor:        cfg.Mesh.EmitFloor,
		EmitCeiling:      cfg.Mesh.EmitCeiling,
		ZeroUnknownTiles: cfg.Mesh.ZeroUnknownTiles,
	}
	if set["floor"] {
		opts.EmitFloor = *emitFloor
	}
	if set["ceiling"] {
		opts.EmitCeiling = *emitCeiling
	}
	if set["zero-unknown"] {
		opts.ZeroUnknownTiles = *zeroUnknown
	}
	if *scale > 0 {
		opts.Scale = float32(*scale)
	}

	s := scene.Build(m, opts)
	for _, sm := range s.SubMeshes() {
		if !sm.Empty() {
			logger.Info("synthesized sub-mesh",
				zap.String("name", sm.Name),
				zap.Int("vertices", sm.VertexCount()),
				zap.Int("triangles", sm.TriangleCount()),
			)
		}
	}

	writeTilemap := cfg.Output.WriteTilemap && !*noTilemap
	outTilemap := cfg.Output.TilemapPath
	if *tilemapPath != "" {
		outTilemap = *tilemapPath
	}
	if writeTilemap {
		if err := m.WriteTilemap(outTilemap); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing tilemap '%s': %v\n", outTilemap, err)
			os.Exit(1)
		}
		logger.Info("wrote tilemap", zap.String("path", outTilemap))
	}

	outMesh := cfg.Output.MeshPath
	if *meshPath != "" {
		outMesh = *meshPath
	}
	if err := mesh.WriteOBJFile(outMesh, s.SubMeshes()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing mesh '%s': %v\n", outMesh, err)
		os.Exit(1)
	}
	logger.Info("wrote mesh", zap.String("path", outMesh))
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mapPath := cfg.Input.MapPath
	if fs.NArg() > 0 {
		mapPath = fs.Arg(0)
	}

	m, err := maze.Load(mapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading map '%s': %v\n", mapPath, err)
		os.Exit(1)
	}

	fmt.Printf("Map:    %s\n", mapPath)
	fmt.Printf("Size:   %dx%d (%d tiles)\n", m.W, m.H, m.W*m.H)
	fmt.Println()
	fmt.Println("Tiles by kind:")

	counts := m.CountByKind()
	kinds := make([]maze.TileKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Printf("  %-10s %d\n", k, counts[k])
	}

	boxes := counts[maze.TileWall] + counts[maze.TileBuilding]
	fmt.Println()
	fmt.Printf("Boxes:  %d (%d vertices, %d triangles before optimization)\n",
		boxes, boxes*mesh.BoxVertexCount, boxes*mesh.BoxIndexCount/3)
}

func cmdDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mazemesh dump <file.tilemap.bin>")
		os.Exit(1)
	}

	m, err := maze.LoadTilemap(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("; %dx%d tilemap from %s\n", m.W, m.H, fs.Arg(0))
	fmt.Print(m.String())
}
