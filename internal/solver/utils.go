package solver

import "slices"

type void struct{}

type set[T comparable] map[T]void

func (s set[T]) has(v T) bool {
	_, ok := s[v]
	return ok
}

// sorted returns the members of s in ascending order.
func sorted(s set[int]) []int {
	result := make([]int, 0, len(s))
	for k := range s {
		result = append(result, k)
	}
	slices.Sort(result)
	return result
}

func Intersect[T comparable](a, b []T) (result []T) {
	var hash = make(set[T])
	for _, v := range a {
		hash[v] = void{}
	}
	for _, v := range b {
		if _, ok := hash[v]; ok {
			result = append(result, v)
		}
	}
	return
}

// Complement returns the elements of b that are not in a.
func Complement[T comparable](a, b []T) (result []T) {
	var hash = make(set[T])
	for _, v := range a {
		hash[v] = void{}
	}
	for _, v := range b {
		if _, ok := hash[v]; !ok {
			result = append(result, v)
		}
	}
	return
}
