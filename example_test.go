package lru_test

import (
	"context"
	"fmt"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
	"github.com/veartutop/lru"
)

func ExampleNew() {
	// Create cache instance.
	c := lru.New[string, []int](lru.Config[string]{
		Name:     "dogs",
		Capacity: 100,
		Logger:   &ctxd.LoggerMock{},
		Stats:    &stats.TrackerMock{},
	})

	// Insert value.
	c.Insert("my-key", []int{1, 2, 3})

	// Get value back, promoting the entry.
	val, found := c.Get("my-key")
	fmt.Println(val, found)

	// Output:
	// [1 2 3] true
}

func ExampleNewExpiring() {
	c := lru.NewExpiring[string, string](13*time.Minute, lru.Config[string]{
		Name:     "sessions",
		Capacity: 1000,
	})

	c.Insert("token", "abc")

	val, found := c.Get("token")
	fmt.Println(val, found)

	// Output:
	// abc true
}

func ExampleNewShared() {
	// Shared wraps any Cache behind an exclusive lock, the pointer is a
	// handle that can be copied across goroutines.
	c := lru.NewShared[string, int](lru.New[string, int]())

	c.Insert("a", 1)

	done := make(chan struct{})

	go func() {
		defer close(done)

		val, _ := c.Get("a")
		fmt.Println(val)
	}()

	<-done

	// Output:
	// 1
}

func ExampleNewLoader() {
	l := lru.NewLoader[string, string](
		lru.NewShared[string, string](lru.New[string, string]()),
		lru.LoaderConfig{Name: "answers"},
	)

	val, _ := l.Get(context.Background(), "answer", func(ctx context.Context) (string, error) {
		// Built once, concurrent getters of the same key wait for this result.
		return "42", nil
	})
	fmt.Println(val)

	// Output:
	// 42
}
