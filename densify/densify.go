package densify

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arraykit/raggedense/dense"
	"github.com/arraykit/raggedense/ragged"
	"github.com/arraykit/raggedense/shape"
)

// ToDense converts a ragged array into a dense array.
//
// Algorithm Outline:
//  1. Compute the bounding shape from the row boundaries and dense tail.
//  2. Resolve the output shape: each target entry if concrete, else the
//     bounding value; concrete dense-tail entries must match exactly.
//  3. Validate the default value against the dense tail
//     (rank strictly below the flat values' rank, suffix-broadcastable).
//  4. Allocate the output and fill it with the broadcast default:
//     one tail-sized tile, replicated by doubling copies. Skipped
//     entirely when the default is the zero value of T.
//  5. Walk the ragged structure level by level, copying each row's real
//     elements into its slot, cropped to the output shape. Positions
//     beyond the real data keep the default fill.
//  6. Return the output; its Shape() is exact, never merely compatible.
//
// The input is never mutated and the result shares no storage with it.
// With opts.Workers > 1 step 5 runs outer rows concurrently; rows write
// disjoint ranges, the fill of step 4 completes beforehand, and all
// workers are joined before ToDense returns, so the result is
// identical to the sequential one.
//
// Errors: ErrNilArray, ErrRankMismatch, ErrTailMismatch,
// ErrDefaultRank, ErrDefaultShape, or shape.ErrNegativeDim for a
// negative non-Unconstrained target dimension — all raised before
// allocation.
//
// Complexity: O(output elements + real elements) time,
// O(output elements) memory.
func ToDense[T comparable](a *ragged.Array[T], opts *Options[T]) (*dense.Dense[T], error) {
	if a == nil {
		return nil, ErrNilArray
	}
	o := DefaultOptions[T]()
	if opts != nil {
		o = *opts
	}

	raggedRank := a.RaggedRank()
	tail := a.DenseTail()
	bound := a.BoundingShape()

	outShape, err := resolveShape(bound, o.Shape, raggedRank)
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	tile, err := buildTile(o.Default, tail)
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}

	out, err := dense.New[T](outShape)
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	data := out.Data()

	// Step 4: broadcast fill. A nil tile means zero-value padding, which
	// the fresh allocation already provides.
	if tile != nil && len(data) > 0 {
		copy(data, tile)
		for filled := len(tile); filled < len(data); filled *= 2 {
			copy(data[filled:], data[:filled])
		}
	}

	// Step 5: copy real rows over the fill.
	w := &rowWalker[T]{
		splits:   make([][]int, raggedRank),
		flat:     a.FlatValues().Data(),
		data:     data,
		outShape: outShape,
		strides:  outShape.Strides(),
		tailSize: tail.NumElements(),
		last:     raggedRank - 1,
	}
	for level := 0; level < raggedRank; level++ {
		// The copies keep the walker independent of the input array.
		sp, err := a.RowSplits(level)
		if err != nil {
			return nil, fmt.Errorf("ToDense: %w", err)
		}
		w.splits[level] = sp
	}

	top := a.NumRows()
	if lim := outShape[0]; top > lim {
		top = lim
	}
	if o.Workers > 1 {
		g := new(errgroup.Group)
		g.SetLimit(o.Workers)
		for i := 0; i < top; i++ {
			row, off := i, i*w.strides[0]
			g.Go(func() error {
				w.fillRow(0, row, off)

				return nil
			})
		}
		// Workers never fail; Wait is the completion barrier required
		// before handing the buffer to the caller.
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("ToDense: %w", err)
		}
	} else {
		for i := 0; i < top; i++ {
			w.fillRow(0, i, i*w.strides[0])
		}
	}

	return out, nil
}

// resolveShape merges the caller's target shape with the bounding
// shape: Unconstrained entries take the bounding value, ragged entries
// pass through, and concrete dense-tail entries must match the
// intrinsic tail exactly.
func resolveShape(bound, target shape.Shape, raggedRank int) (shape.Shape, error) {
	if target == nil {
		return bound, nil
	}
	if target.Rank() != bound.Rank() {
		return nil, fmt.Errorf("input rank is %d but target rank is %d: %w",
			bound.Rank(), target.Rank(), ErrRankMismatch)
	}
	// A negative non-Unconstrained entry keeps its shape-level class so
	// callers can distinguish a bad dimension from a bad rank.
	if err := shape.ValidateTarget(target); err != nil {
		return nil, err
	}
	out := make(shape.Shape, bound.Rank())
	for i, d := range target {
		if d == shape.Unconstrained {
			out[i] = bound[i]

			continue
		}
		// Positions past the ragged dimensions are the dense tail.
		if i > raggedRank && d != bound[i] {
			return nil, fmt.Errorf("tail dim %d is %d but target is %d: %w",
				i, bound[i], d, ErrTailMismatch)
		}
		out[i] = d
	}

	return out, nil
}

// buildTile validates the default value against the dense tail and
// broadcasts it into one tail-sized tile, the unit the fill step
// replicates. A nil default means zero-value padding: no tile needed.
func buildTile[T comparable](def *dense.Dense[T], tail shape.Shape) ([]T, error) {
	if def == nil {
		return nil, nil
	}
	ds := def.Shape()
	if ds.Rank() > tail.Rank() {
		return nil, fmt.Errorf("default rank %d must be less than flat values rank %d: %w",
			ds.Rank(), tail.Rank()+1, ErrDefaultRank)
	}
	if err := shape.SuffixBroadcastable(ds, tail); err != nil {
		return nil, fmt.Errorf("%s: %w", err, ErrDefaultShape)
	}

	n := tail.NumElements()
	tile := make([]T, n)
	if n == 0 {
		return tile, nil
	}

	// Right-aligned source strides; 0 where the default broadcasts
	// (missing axes and size-1 axes).
	rank := tail.Rank()
	srcStride := make([]int, rank)
	defStrides := ds.Strides()
	for axis := 0; axis < rank; axis++ {
		d := axis - (rank - ds.Rank())
		if d >= 0 && ds[d] != 1 {
			srcStride[axis] = defStrides[d]
		}
	}

	src := def.Data()
	idx := make([]int, rank)
	for p := 0; p < n; p++ {
		off := 0
		for axis, v := range idx {
			off += v * srcStride[axis]
		}
		tile[p] = src[off]
		for axis := rank - 1; axis >= 0; axis-- {
			idx[axis]++
			if idx[axis] < tail[axis] {
				break
			}
			idx[axis] = 0
		}
	}

	return tile, nil
}

// rowWalker carries the flat arenas of the copy step so the recursion
// passes only (level, row, offset). All fields are read-only during the
// walk except data, where distinct rows write disjoint ranges.
type rowWalker[T comparable] struct {
	splits   [][]int
	flat     []T
	data     []T
	outShape shape.Shape
	strides  []int
	tailSize int
	last     int // innermost ragged level
}

// fillRow copies row `row` of ragged level `level` into the output
// slot starting at off, cropping the child count to the output shape.
// At the innermost level the children are flat value rows, contiguous
// in both arenas, so one copy moves the whole cropped row.
func (w *rowWalker[T]) fillRow(level, row, off int) {
	sp := w.splits[level]
	first, last := sp[row], sp[row+1]

	n := last - first
	if lim := w.outShape[level+1]; n > lim {
		n = lim
	}
	if level == w.last {
		if n > 0 {
			copy(w.data[off:off+n*w.tailSize], w.flat[first*w.tailSize:(first+n)*w.tailSize])
		}

		return
	}
	for j := 0; j < n; j++ {
		w.fillRow(level+1, first+j, off+j*w.strides[level+1])
	}
}
