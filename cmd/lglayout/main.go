// Command lglayout reads a graph in LGL or NCOL format and writes out a
// force-directed layout: final coordinates, one "<id> <coords...>" line per
// vertex, plus optional companion files for the guiding tree's root and
// per-edge reveal level. Flags mirror the original lglayout.C options.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lglayout/lglayout/config"
	"github.com/lglayout/lglayout/engine"
	"github.com/lglayout/lglayout/ioformat"
	"github.com/lglayout/lglayout/vecmath"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "lglayout:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("lglayout", flag.ContinueOnError)

	dim := fs.Int("dim", 2, "layout dimension (2 or 3)")
	ncol := fs.Bool("ncol", false, "read the input file as NCOL instead of LGL")
	out := fs.String("o", "lgl.out", "output coordinates file")
	initPosFile := fs.String("x", "", "file of initial positions to seed from")
	initMassFile := fs.String("m", "", "file of initial per-vertex masses")
	massFlag := fs.Float64("M", 0, "uniform mass for vertices with none given (0 = config default)")
	anchorsFile := fs.String("a", "", "file listing anchor vertex ids, one per line")
	root := fs.String("z", "", "root vertex id (default: computed 1-median)")
	threadCount := fs.Int("t", 0, "worker thread count (0 = config default)")
	maxIter := fs.Int("i", 0, "iteration cap per layer (0 = config default)")
	timeStep := fs.Float64("T", 0, "integration time step (0 = config default)")
	cutoff := fs.Float64("c", 0, "convergence cutoff precision (0 = config default)")
	nbhdRadius := fs.Float64("r", 0, "repulsion equilibrium radius (0 = config default)")
	eqDistance := fs.Float64("q", 0, "attraction equilibrium distance (0 = config default)")
	nodeRadius := fs.Float64("S", 0, "node display radius (0 = config default)")
	outerRadius := fs.Float64("R", 0, "initial scatter radius (0 = computed from vertex count)")
	placementDistance := fs.Float64("u", 0, "child placement distance (0 = dimension-aware formula)")
	placementRadius := fs.Float64("v", 0, "child placement scatter radius (0 = config default)")
	casualSpring := fs.Float64("k", 0, "repulsion spring constant (0 = config default)")
	specialSpring := fs.Float64("s", 0, "attraction spring constant (0 = config default)")
	writeInterval := fs.Int("W", 0, "snapshot every N iterations (0 = disabled)")
	layoutTreeOnly := fs.Bool("y", false, "activate only guiding-tree edges, not the full graph")
	useOriginalWeights := fs.Bool("O", false, "build the guiding tree from input edge weights")
	placeLeafsClose := fs.Bool("L", false, "seed leaf children closer to their parent")
	disregardDisconnected := fs.Bool("D", false, "drop components unreachable from the root")
	silent := fs.Bool("I", false, "suppress progress output")
	writeEdgeLevels := fs.Bool("l", false, "also write <out>.levels with each MST edge's reveal level")
	writeRoot := fs.Bool("e", false, "also write <out>.root with the guiding tree's root id")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: lglayout [flags] <graph-file>")
	}

	opts := []config.Option{config.WithRoot(*root)}
	if *threadCount > 0 {
		opts = append(opts, config.WithThreadCount(*threadCount))
	}
	if *maxIter > 0 {
		opts = append(opts, config.WithMaxIterations(*maxIter))
	}
	if *timeStep > 0 {
		opts = append(opts, config.WithTimeStep(*timeStep))
	}
	if *cutoff > 0 {
		opts = append(opts, config.WithCutoffPrecision(*cutoff))
	}
	if *nbhdRadius > 0 {
		opts = append(opts, config.WithNbhdRadius(*nbhdRadius))
	}
	if *eqDistance > 0 {
		opts = append(opts, config.WithEqDistance(*eqDistance))
	}
	if *nodeRadius > 0 {
		opts = append(opts, config.WithNodeRadius(*nodeRadius))
	}
	if *massFlag > 0 {
		opts = append(opts, config.WithMass(*massFlag))
	}
	if *outerRadius > 0 {
		opts = append(opts, config.WithOuterRadius(*outerRadius))
	}
	if *placementDistance > 0 {
		opts = append(opts, config.WithPlacementDistance(*placementDistance))
	}
	if *placementRadius > 0 {
		opts = append(opts, config.WithPlacementRadius(*placementRadius))
	}
	if *casualSpring > 0 {
		opts = append(opts, config.WithCasualSpringConstant(*casualSpring))
	}
	if *specialSpring > 0 {
		opts = append(opts, config.WithSpecialSpringConstant(*specialSpring))
	}
	if *writeInterval > 0 {
		opts = append(opts, config.WithWriteInterval(*writeInterval))
	}
	if *layoutTreeOnly {
		opts = append(opts, config.WithLayoutTreeOnly(true))
	}
	if *useOriginalWeights {
		opts = append(opts, config.WithUseOriginalWeights(true))
	}
	if *placeLeafsClose {
		opts = append(opts, config.WithPlaceLeafsClose(true))
	}
	if *disregardDisconnected {
		opts = append(opts, config.WithDisregardDisconnected(true))
	}
	if *silent {
		opts = append(opts, config.WithSilent(true))
	}

	cfg := config.New(*dim, opts...)

	graphFile, err := os.Open(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("opening graph file: %w", err)
	}
	defer graphFile.Close()

	parse := ioformat.ReadLGL
	if *ncol {
		parse = ioformat.ReadNCOL
	}
	g, err := parse(graphFile)
	if err != nil {
		return fmt.Errorf("reading graph: %w", err)
	}

	input := engine.Input{Graph: g}
	if *initPosFile != "" {
		input.InitPositions, err = readPositionsFile(*initPosFile)
		if err != nil {
			return err
		}
	}
	if *initMassFile != "" {
		input.InitMasses, err = readMassesFile(*initMassFile)
		if err != nil {
			return err
		}
	}
	if *anchorsFile != "" {
		input.Anchors, err = readIDListFile(*anchorsFile)
		if err != nil {
			return err
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	d, err := engine.New(cfg, input, rng, os.Stderr)
	if err != nil {
		return fmt.Errorf("initializing layout: %w", err)
	}
	defer d.Close()

	result, err := d.Run()
	if err != nil {
		return fmt.Errorf("running layout: %w", err)
	}

	outFile, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()
	if err := ioformat.WritePositions(outFile, result.Positions); err != nil {
		return fmt.Errorf("writing positions: %w", err)
	}

	if *writeRoot {
		if err := writeCompanionFile(*out+".root", func(f *os.File) error {
			return ioformat.WriteRoot(f, result.Tree)
		}); err != nil {
			return err
		}
	}
	if *writeEdgeLevels {
		if err := writeCompanionFile(*out+".levels", func(f *os.File) error {
			return ioformat.WriteEdgeLevels(f, result.Tree)
		}); err != nil {
			return err
		}
	}

	if len(result.Dropped) > 0 && !cfg.Silent {
		fmt.Fprintf(os.Stderr, "dropped %d disconnected vertices\n", len(result.Dropped))
	}

	return nil
}

func writeCompanionFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

func readPositionsFile(path string) (map[string]vecmath.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening position file: %w", err)
	}
	defer f.Close()

	positions, err := ioformat.ReadPositions(f)
	if err != nil {
		return nil, fmt.Errorf("reading position file: %w", err)
	}

	return positions, nil
}

func readMassesFile(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mass file: %w", err)
	}
	defer f.Close()

	masses := make(map[string]float64)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: mass file line %q", ioformat.ErrInputFormat, line)
		}
		m, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: mass file line %q: %v", ioformat.ErrInputFormat, line, err)
		}
		masses[fields[0]] = m
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mass file: %w", err)
	}

	return masses, nil
}

func readIDListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening anchors file: %w", err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ids = append(ids, strings.Fields(line)[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading anchors file: %w", err)
	}

	return ids, nil
}
