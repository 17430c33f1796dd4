package engine

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"

	"github.com/lglayout/lglayout/config"
	"github.com/lglayout/lglayout/core"
	"github.com/lglayout/lglayout/guidetree"
	"github.com/lglayout/lglayout/interaction"
	"github.com/lglayout/lglayout/schedule"
	"github.com/lglayout/lglayout/seed"
	"github.com/lglayout/lglayout/simparticle"
	"github.com/lglayout/lglayout/spatialgrid"
	"github.com/lglayout/lglayout/vecmath"
	"github.com/lglayout/lglayout/workerpool"
)

// ErrDuplicateAnchor is fatal per spec.md §4.9: an id appearing more than
// once in the caller's anchor list.
var ErrDuplicateAnchor = errors.New("engine: duplicate anchor id")

// Input bundles the graph and the optional per-vertex data a caller may
// supply before a run (spec.md §6's "inputs consumed by the core").
type Input struct {
	Graph         *core.Graph
	InitPositions map[string]vecmath.Vector
	InitMasses    map[string]float64
	Anchors       []string
}

// Result is what Run returns: final positions plus the guiding tree
// metadata a caller may want to serialize (root id, MST, levels).
type Result struct {
	Positions map[string]vecmath.Vector
	Tree      *guidetree.Tree
	Dropped   []string
}

// SnapshotFunc is invoked on a configured write interval with the current
// positions. seq is a monotonic counter distinguishing snapshots that land
// on the same iteration number across different layers (spec.md §9's
// filename-collision open question — resolved by carrying both numbers).
type SnapshotFunc func(level, iteration, seq int, positions map[string]vecmath.Vector)

// Driver runs the per-layer simulation pipeline described in spec.md §4.4.
type Driver struct {
	cfg config.Config

	full   *core.Graph
	layout *core.Graph
	added  map[[2]string]bool

	container *simparticle.Container
	grid      *spatialgrid.Grid
	tree      *guidetree.Tree
	handler   *interaction.Handler
	pool      *workerpool.Pool
	scheduler *schedule.Scheduler
	threads   int
	rng       *rand.Rand
	out       io.Writer

	childrenOf map[string][]string
	byLevel    map[int][]string
	totalLevel int

	allInitialized bool
	dropped        []string
	snapshotSeq    int

	OnSnapshot SnapshotFunc
}

// withoutVertices returns a copy of g with the given vertices (and every
// edge touching them) removed, preserving g's weighted/directed/loop
// options. Used after disregardDisconnected drops wholly-uninitialized
// components from the particle container, so the guiding tree is built
// over the same vertex set the simulation actually carries.
func withoutVertices(g *core.Graph, drop []string) *core.Graph {
	dropped := make(map[string]bool, len(drop))
	for _, id := range drop {
		dropped[id] = true
	}

	opts := []core.GraphOption{core.WithWeighted()}
	if g.Directed() {
		opts = append(opts, core.WithDirected(true))
	}
	if g.Looped() {
		opts = append(opts, core.WithLoops())
	}
	if g.Multigraph() {
		opts = append(opts, core.WithMultiEdges())
	}

	out := core.NewGraph(opts...)
	for _, id := range g.Vertices() {
		if dropped[id] {
			continue
		}
		_ = out.AddVertex(id)
	}
	for _, e := range g.Edges() {
		if dropped[e.From] || dropped[e.To] {
			continue
		}
		_, _ = out.AddEdge(e.From, e.To, e.Weight)
	}

	return out
}

func edgeKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}

	return [2]string{a, b}
}

// New constructs a Driver: loads/interpolates initial state, computes the
// guiding tree, and builds the spatial grid and worker pool. g's vertices
// are copied into a fresh particle container; g itself is left untouched.
func New(cfg config.Config, input Input, rng *rand.Rand, out io.Writer) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if out == nil {
		out = io.Discard
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	g := input.Graph
	dim := cfg.Dim

	container := simparticle.NewContainer(dim)
	for _, id := range g.Vertices() {
		p, err := container.Add(id)
		if err != nil {
			return nil, fmt.Errorf("engine: building particle container: %w", err)
		}
		p.Mass = cfg.Mass
		p.Radius = cfg.NodeRadius
	}

	seenAnchor := make(map[string]bool, len(input.Anchors))
	for _, id := range input.Anchors {
		if seenAnchor[id] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAnchor, id)
		}
		seenAnchor[id] = true
	}

	seed.LoadMasses(container, input.InitMasses)
	seed.LoadPositions(container, input.InitPositions)
	seed.LoadAnchors(container, input.Anchors)

	if _, err := seed.Interpolate(g, container); err != nil {
		return nil, fmt.Errorf("engine: interpolating positions: %w", err)
	}

	var dropped []string
	if cfg.DisregardDisconnected {
		var err error
		dropped, err = seed.PruneDisconnected(g, container)
		if err != nil {
			return nil, fmt.Errorf("engine: pruning disconnected components: %w", err)
		}
		if len(dropped) > 0 {
			g = withoutVertices(g, dropped)
		}
	}

	tree, err := guidetree.Build(g, cfg.Root, cfg.UseOriginalWeights)
	if err != nil {
		return nil, fmt.Errorf("engine: building guiding tree: %w", err)
	}

	childrenOf := make(map[string][]string, len(tree.Vertices))
	byLevel := make(map[int][]string, len(tree.Vertices))
	totalLevel := 0
	for _, id := range tree.Vertices {
		lvl := tree.Level[id]
		byLevel[lvl] = append(byLevel[lvl], id)
		if lvl > totalLevel {
			totalLevel = lvl
		}
		if id == tree.Root {
			continue
		}
		p := tree.Parent[id]
		childrenOf[p] = append(childrenOf[p], id)
	}
	for lvl := range byLevel {
		sort.Strings(byLevel[lvl])
	}
	for p := range childrenOf {
		sort.Strings(childrenOf[p])
	}

	outerRadius := cfg.OuterRadius
	if outerRadius <= 0 {
		n := float64(g.VertexCount())
		if n < 1 {
			n = 1
		}
		outerRadius = math.Pow(n, 1/float64(dim))
	}
	gridMin := vecmath.Constant(dim, -outerRadius)
	gridMax := vecmath.Constant(dim, outerRadius)
	grid := spatialgrid.Build(dim, gridMin, gridMax, cfg.NbhdRadius)

	threads := schedule.ThreadCheck(cfg.ThreadCount, grid)
	var sched *schedule.Scheduler
	if threads > 1 {
		sched = schedule.GenerateMT(grid)
	} else {
		sched = schedule.GenerateST(grid)
	}

	handler := interaction.New(cfg.CasualSpringConstant, cfg.EqDistance, rng)
	handler.EllipseFactors = interaction.NormalizeEllipseFactors(interaction.EllipseFactors(cfg.EllipseFactors), dim)
	handler.NoiseAmplitude = cfg.NodeRadius
	handler.ForceConstraint = cfg.ForceLimit()
	handler.TimeStep = cfg.TimeStep

	layout := core.NewGraph(core.WithWeighted())
	for _, id := range g.Vertices() {
		_ = layout.AddVertex(id)
	}

	allInitialized := len(input.InitPositions) >= g.VertexCount() && g.VertexCount() > 0

	d := &Driver{
		cfg:            cfg,
		full:           g,
		layout:         layout,
		added:          make(map[[2]string]bool),
		container:      container,
		grid:           grid,
		tree:           tree,
		handler:        handler,
		pool:           workerpool.New(threads),
		scheduler:      sched,
		threads:        threads,
		rng:            rng,
		out:            out,
		childrenOf:     childrenOf,
		byLevel:        byLevel,
		totalLevel:     totalLevel,
		allInitialized: allInitialized,
		dropped:        dropped,
	}

	return d, nil
}

// Close releases the driver's worker pool. Safe to call more than once.
func (d *Driver) Close() {
	d.pool.Shutdown()
}

func (d *Driver) logf(format string, args ...interface{}) {
	if d.cfg.Silent {
		return
	}
	fmt.Fprintf(d.out, format, args...)
}
