package ring

import (
	"fmt"
	"unsafe"
)

// AddVec evaluates p3 = p1 + p2.
// p1, p2, p3 must be of the same size.
func AddVec(p1, p2, p3 []Complex) {

	N := len(p1)

	if len(p2) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p3)=%d", N, len(p2), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]Complex)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		y := (*[8]Complex)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]Complex)(unsafe.Pointer(&p3[j]))

		z[0] = x[0].Add(y[0])
		z[1] = x[1].Add(y[1])
		z[2] = x[2].Add(y[2])
		z[3] = x[3].Add(y[3])
		z[4] = x[4].Add(y[4])
		z[5] = x[5].Add(y[5])
		z[6] = x[6].Add(y[6])
		z[7] = x[7].Add(y[7])
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = p1[i].Add(p2[i])
	}
}

// SubVec evaluates p3 = p1 - p2.
// p1, p2, p3 must be of the same size.
func SubVec(p1, p2, p3 []Complex) {

	N := len(p1)

	if len(p2) != N || len(p3) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d len(p3)=%d", N, len(p2), len(p3)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]Complex)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		y := (*[8]Complex)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]Complex)(unsafe.Pointer(&p3[j]))

		z[0] = x[0].Sub(y[0])
		z[1] = x[1].Sub(y[1])
		z[2] = x[2].Sub(y[2])
		z[3] = x[3].Sub(y[3])
		z[4] = x[4].Sub(y[4])
		z[5] = x[5].Sub(y[5])
		z[6] = x[6].Sub(y[6])
		z[7] = x[7].Sub(y[7])
	}

	for i := N - (N & 7); i < N; i++ {
		p3[i] = p1[i].Sub(p2[i])
	}
}

// NegVec evaluates p2 = -p1.
// p1 and p2 must be of the same size.
func NegVec(p1, p2 []Complex) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for i := range p1 {
		p2[i] = p1[i].Neg()
	}
}

// MulScalarVec evaluates p2 = p1 * scalar.
// p1 and p2 must be of the same size.
func MulScalarVec(p1 []Complex, scalar Complex, p2 []Complex) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for i := range p1 {
		p2[i] = p1[i].Mul(scalar)
	}
}

// MulScalarThenAddVec evaluates p2 = p2 + p1 * scalar.
// p1 and p2 must be of the same size.
func MulScalarThenAddVec(p1 []Complex, scalar Complex, p2 []Complex) {

	N := len(p1)

	if len(p2) != N {
		panic(fmt.Errorf("len(p1)=%d len(p2)=%d", N, len(p2)))
	}

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]Complex)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]Complex)(unsafe.Pointer(&p2[j]))

		z[0] = z[0].Add(x[0].Mul(scalar))
		z[1] = z[1].Add(x[1].Mul(scalar))
		z[2] = z[2].Add(x[2].Mul(scalar))
		z[3] = z[3].Add(x[3].Mul(scalar))
		z[4] = z[4].Add(x[4].Mul(scalar))
		z[5] = z[5].Add(x[5].Mul(scalar))
		z[6] = z[6].Add(x[6].Mul(scalar))
		z[7] = z[7].Add(x[7].Mul(scalar))
	}

	for i := N - (N & 7); i < N; i++ {
		p2[i] = p2[i].Add(p1[i].Mul(scalar))
	}
}

// convolveThenAdd evaluates acc = acc + p1 * p2 mod X^N - 1, or mod X^N + 1 if negacyclic is true.
// acc must be of size at least min(N, len(p1)+len(p2)-1).
func convolveThenAdd(p1, p2, acc []Complex, N int, negacyclic bool) {
	for i, c := range p1 {
		for j := 0; j < len(p2); {
			k := i + j
			slot := k % N
			n := min(len(p2)-j, N-slot)

			if negacyclic && (k/N)&1 == 1 {
				MulScalarThenAddVec(p2[j:j+n], c.Neg(), acc[slot:slot+n])
			} else {
				MulScalarThenAddVec(p2[j:j+n], c, acc[slot:slot+n])
			}

			j += n
		}
	}
}

// foldThenAdd evaluates acc = acc + p1 mod X^N - 1, or mod X^N + 1 if negacyclic is true.
// acc must be of size at least min(N, len(p1)).
func foldThenAdd(p1, acc []Complex, N int, negacyclic bool) {
	for j := 0; j < len(p1); j += N {
		n := min(len(p1)-j, N)
		if negacyclic && (j/N)&1 == 1 {
			SubVec(acc[:n], p1[j:j+n], acc[:n])
		} else {
			AddVec(acc[:n], p1[j:j+n], acc[:n])
		}
	}
}
