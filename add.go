package main

// Addable covers the types the + operator combines: all numeric kinds
// and strings.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Add returns a + b. For strings this is concatenation.
func Add[T Addable](a, b T) T {
	return a + b
}
