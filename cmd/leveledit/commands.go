package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/iwanna/logger"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/google/uuid"
)

// errIssues is returned by validate when any level has findings.
var errIssues = errors.New("level has issues")

type command struct {
	usage string
	run   func(ctx context.Context, args []string, out io.Writer) error
}

var commands = map[string]command{
	"new":           {"new [-name N] [-width W] [-height H] <file>", cmdNew},
	"show":          {"show <file>", cmdShow},
	"add-tile":      {"add-tile -x X -y Y [-tile T] [-type Ground] <file>", cmdAddTile},
	"remove-tile":   {"remove-tile -x X -y Y <file>", cmdRemoveTile},
	"add-hazard":    {"add-hazard -x X -y Y [-type SpikeUp] [-rotation R] [-moving] [-pingpong] [-speed S] [-waypoints x,y;x,y] [-disabled] <file>", cmdAddHazard},
	"add-savepoint": {"add-savepoint -x X -y Y [-one-time] [-inactive] <file>", cmdAddSavePoint},
	"set-spawn":     {"set-spawn -x X -y Y <file>", cmdSetSpawn},
	"clear":         {"clear <file>", cmdClear},
	"validate":      {"validate <file>...", cmdValidate},
	"import-tmx":    {"import-tmx <in.tmx> <out.yaml>", cmdImportTMX},
	"watch":         {"watch <dir>...", cmdWatch},
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return errors.New("missing command")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
	return cmd.run(ctx, args[1:], out)
}

func usage(out io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "usage: leveledit <command> [flags] <args>")
	for _, name := range names {
		fmt.Fprintln(out, "  leveledit", commands[name].usage)
	}
}

// parseFlags parses args into fs and requires exactly n positional arguments.
func parseFlags(fs *flag.FlagSet, args []string, n int) ([]string, error) {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != n {
		return nil, fmt.Errorf("%s: expected %d argument(s), got %d", fs.Name(), n, fs.NArg())
	}
	return fs.Args(), nil
}

// edit loads the YAML level at path, applies fn and saves it back.
func edit(path string, fn func(lvl *leveldata.Level) error) error {
	lvl, err := leveldata.Load(path)
	if err != nil {
		return err
	}
	if err := fn(lvl); err != nil {
		return err
	}
	return leveldata.Save(path, lvl)
}

func warnOutside(lvl *leveldata.Level, cell leveldata.Cell) {
	if !lvl.IsValidPosition(cell) {
		logger.Log.WithField("cell", fmt.Sprintf("%d,%d", cell.X, cell.Y)).
			Warnf("Placement is outside the %dx%d grid", lvl.Width, lvl.Height)
	}
}

func cmdNew(_ context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	name := fs.String("name", "Untitled", "level name")
	width := fs.Int("width", leveldata.DefaultWidth, "width in cells")
	height := fs.Int("height", leveldata.DefaultHeight, "height in cells")
	rest, err := parseFlags(fs, args, 1)
	if err != nil {
		return err
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("new: size must be positive, got %dx%d", *width, *height)
	}

	lvl := leveldata.New(*name)
	lvl.ID = uuid.NewString()
	lvl.Width, lvl.Height = *width, *height
	if err := leveldata.Save(rest[0], lvl); err != nil {
		return err
	}
	fmt.Fprintf(out, "created %s (%s)\n", rest[0], lvl.ID)
	return nil
}

func cmdShow(_ context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	rest, err := parseFlags(fs, args, 1)
	if err != nil {
		return err
	}
	lvl, err := leveldata.LoadFile(rest[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "name:        %s\n", lvl.Name)
	if lvl.ID != "" {
		fmt.Fprintf(out, "id:          %s\n", lvl.ID)
	}
	if lvl.Description != "" {
		fmt.Fprintf(out, "description: %s\n", lvl.Description)
	}
	fmt.Fprintf(out, "size:        %dx%d cells of %dpx\n", lvl.Width, lvl.Height, lvl.TileSize)
	fmt.Fprintf(out, "spawn:       %g,%g\n", lvl.Spawn.X, lvl.Spawn.Y)
	fmt.Fprintf(out, "tiles:       %d\n", len(lvl.Tiles))
	fmt.Fprintf(out, "hazards:     %d\n", len(lvl.Hazards))
	for i, h := range lvl.Hazards {
		fmt.Fprintf(out, "  %d: %s at %g,%g", i, h.Type, h.Position.X, h.Position.Y)
		if h.Moving {
			fmt.Fprintf(out, " moving through %d waypoint(s)", len(h.Waypoints))
		}
		if h.Disabled {
			fmt.Fprint(out, " (disabled)")
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "save points: %d\n", len(lvl.SavePoints))
	for i, sp := range lvl.SavePoints {
		fmt.Fprintf(out, "  %d: %g,%g active=%t one-time=%t\n", i, sp.Position.X, sp.Position.Y, sp.Active, sp.OneTimeUse)
	}
	return nil
}

func cmdAddTile(_ context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add-tile", flag.ContinueOnError)
	x := fs.Int("x", 0, "cell column")
	y := fs.Int("y", 0, "cell row")
	tile := fs.String("tile", "block", "tile identifier")
	typeName := fs.String("type", "Ground", "Ground, Wall, Platform or Decoration")
	rest, err := parseFlags(fs, args, 1)
	if err != nil {
		return err
	}
	tileType, err := leveldata.ParseTileType(*typeName)
	if err != nil {
		return err
	}

	cell := leveldata.Cell{X: *x, Y: *y}
	return edit(rest[0], func(lvl *leveldata.Level) error {
		warnOutside(lvl, cell)
		lvl.AddTile(cell, *tile, tileType)
		fmt.Fprintf(out, "added %s tile at %d,%d\n", tileType, cell.X, cell.Y)
		return nil
	})
}

func cmdRemoveTile(_ context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("remove-tile", flag.ContinueOnError)
	x := fs.Int("x", 0, "cell column")
	y := fs.Int("y", 0, "cell row")
	rest, err := parseFlags(fs, args, 1)
	if err != nil {
		return err
	}

	cell := leveldata.Cell{X: *x, Y: *y}
	return edit(rest[0], func(lvl *leveldata.Level) error {
		n := lvl.RemoveTile(cell)
		fmt.Fprintf(out, "removed %d tile(s) at %d,%d\n", n, cell.X, cell.Y)
		return nil
	})
}

func cmdAddHazard(_ context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add-hazard", flag.ContinueOnError)
	x := fs.Float64("x", 0, "world x")
	y := fs.Float64("y", 0, "world y")
	typeName := fs.String("type", "SpikeUp", "hazard type")
	rotation := fs.Float64("rotation", 0, "rotation in degrees")
	moving := fs.Bool("moving", false, "follow waypoints")
	pingPong := fs.Bool("pingpong", false, "reverse at the path ends instead of looping")
	speed := fs.Float64("speed", 0, "pixels per second (0 = default)")
	waypoints := fs.String("waypoints", "", "semicolon separated x,y pairs")
	disabled := fs.Bool("disabled", false, "place the hazard switched off")
	rest, err := parseFlags(fs, args, 1)
	if err != nil {
		return err
	}
	hazardType, err := leveldata.ParseHazardType(*typeName)
	if err != nil {
		return err
	}
	points, err := parsePoints(*waypoints)
	if err != nil {
		return err
	}

	pos := leveldata.Point{X: *x, Y: *y}
	return edit(rest[0], func(lvl *leveldata.Level) error {
		warnOutside(lvl, lvl.CellAt(pos))
		h := lvl.AddHazard(pos, hazardType, *rotation)
		h.Moving = h.Moving || *moving
		h.PingPong = *pingPong
		h.Speed = *speed
		h.Waypoints = points
		h.Disabled = *disabled
		fmt.Fprintf(out, "added %s at %g,%g\n", hazardType, pos.X, pos.Y)
		return nil
	})
}

func cmdAddSavePoint(_ context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add-savepoint", flag.ContinueOnError)
	x := fs.Float64("x", 0, "world x")
	y := fs.Float64("y", 0, "world y")
	oneTime := fs.Bool("one-time", false, "activate only once per attempt")
	inactive := fs.Bool("inactive", false, "place the save point switched off")
	rest, err := parseFlags(fs, args, 1)
	if err != nil {
		return err
	}

	pos := leveldata.Point{X: *x, Y: *y}
	return edit(rest[0], func(lvl *leveldata.Level) error {
		warnOutside(lvl, lvl.CellAt(pos))
		sp := lvl.AddSavePoint(pos)
		sp.OneTimeUse = *oneTime
		sp.Active = !*inactive
		fmt.Fprintf(out, "added save point at %g,%g\n", pos.X, pos.Y)
		return nil
	})
}

func cmdSetSpawn(_ context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("set-spawn", flag.ContinueOnError)
	x := fs.Float64("x", 0, "world x")
	y := fs.Float64("y", 0, "world y")
	rest, err := parseFlags(fs, args, 1)
	if err != nil {
		return err
	}

	pos := leveldata.Point{X: *x, Y: *y}
	return edit(rest[0], func(lvl *leveldata.Level) error {
		lvl.SetSpawn(pos)
		fmt.Fprintf(out, "spawn set to %g,%g\n", pos.X, pos.Y)
		return nil
	})
}

func cmdClear(_ context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	rest, err := parseFlags(fs, args, 1)
	if err != nil {
		return err
	}
	return edit(rest[0], func(lvl *leveldata.Level) error {
		lvl.Clear()
		fmt.Fprintf(out, "cleared %s\n", rest[0])
		return nil
	})
}

func cmdValidate(_ context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("validate: expected at least one file")
	}
	failed := false
	for _, path := range args {
		ok, err := validateFile(path, out)
		if err != nil {
			return err
		}
		failed = failed || !ok
	}
	if failed {
		return errIssues
	}
	return nil
}

// validateFile prints the findings for one level and reports whether it was clean.
func validateFile(path string, out io.Writer) (bool, error) {
	lvl, err := leveldata.LoadFile(path)
	if err != nil {
		return false, err
	}
	issues := lvl.Validate()
	if len(issues) == 0 {
		fmt.Fprintf(out, "%s: ok\n", path)
		return true, nil
	}
	for _, issue := range issues {
		fmt.Fprintf(out, "%s: %s\n", path, issue)
	}
	return false, nil
}

func cmdImportTMX(_ context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("import-tmx", flag.ContinueOnError)
	rest, err := parseFlags(fs, args, 2)
	if err != nil {
		return err
	}
	if !strings.EqualFold(filepath.Ext(rest[0]), ".tmx") {
		return fmt.Errorf("import-tmx: %s is not a .tmx file", rest[0])
	}

	lvl, err := leveldata.LoadFile(rest[0])
	if err != nil {
		return err
	}
	if lvl.ID == "" {
		lvl.ID = uuid.NewString()
	}
	if err := leveldata.Save(rest[1], lvl); err != nil {
		return err
	}
	fmt.Fprintf(out, "imported %s to %s: %d tiles, %d hazards, %d save points\n",
		rest[0], rest[1], len(lvl.Tiles), len(lvl.Hazards), len(lvl.SavePoints))
	return nil
}

// parsePoints reads "x,y;x,y" into points. An empty string is no points.
func parsePoints(s string) ([]leveldata.Point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var points []leveldata.Point
	for _, pair := range strings.Split(s, ";") {
		xs, ys, ok := strings.Cut(strings.TrimSpace(pair), ",")
		if !ok {
			return nil, fmt.Errorf("waypoint %q: want x,y", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("waypoint %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("waypoint %q: %w", pair, err)
		}
		points = append(points, leveldata.Point{X: x, Y: y})
	}
	return points, nil
}
