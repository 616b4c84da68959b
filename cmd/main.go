package main

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/baxromumarov/fixedvec"
)

func main() {
	vec := fixedvec.New[int](1_000_000)
	for i := 0; i < vec.Cap(); i++ {
		vec.Push(i)
	}

	p, _ := vec.GetRef(0)
	fmt.Printf("slot 0 at %p holds %d after %d pushes\n", p, *p, vec.Len())

	now := time.Now()
	sum := 0
	for x := range vec.Values() {
		sum += x
	}
	fmt.Println("sequential sum:", sum, "in", time.Since(now))

	now = time.Now()
	var total atomic.Int64
	err := fixedvec.ForEach(context.Background(), vec,
		func(ctx context.Context, x *int) error {
			total.Add(int64(*x))
			return nil
		},
		fixedvec.WithWorkers(8),
	)
	if err != nil {
		fmt.Println("Final error:", err)
		return
	}
	fmt.Println("parallel sum:  ", total.Load(), "in", time.Since(now))
}
