// Package structs implements helpers to generalize vectors of structs.
package structs

type Equatable[T any] interface {
	Equal(*T) bool
}

type Cloner[V any] interface {
	Clone() *V
}

type Copyer[V any] interface {
	Copy(*V)
}
