// Package lvmat is a small, dependency-light toolkit for dense float64
// matrices.
//
// Layout:
//
//	matrix/     the Matrix interface, the row-major Dense type and its kernels:
//	            Add, Sub, Hadamard, Mul, Transpose, HoriCat, Kronecker,
//	            and the in-place MulByScalar and Invert
//	render/     read-only views: fixed-width text dump and gonum/plot heat maps
//	cmd/lvmat/  command line front end (demo, eval, version)
//
// Every kernel validates its operands before allocating, reports failures as
// sentinel errors from the matrix package (match with errors.Is) and never
// returns a partially built result. Dimensions are uint32; result sizes that
// would not fit are rejected with matrix.ErrOverflow, and allocations above a
// configurable ceiling with matrix.ErrAllocationFailure.
//
// Quick start:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewIdentity(2)
//	k, err := matrix.Kronecker(a, b) // 4x4
//	if err != nil {
//		return err
//	}
//	_ = render.Text(os.Stdout, k)
package lvmat
