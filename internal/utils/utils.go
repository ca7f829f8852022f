package utils

import (
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Float | constraints.Integer
}

func SumSlice[T Number](arr []T) (r T) {
	for i := range arr {
		r += arr[i]
	}
	return
}

func Average[T Number](s []T) (mean float64) {
	if len(s) == 0 {
		return 0
	}
	for i := range s {
		mean += float64(s[i])
	}
	mean /= float64(len(s))
	return
}
