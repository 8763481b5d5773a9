package utils

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestGroupWorkParallel(t *testing.T) {
	sumWork := func(totalSize int) int64 {
		var sum int64
		var groups int
		err := GroupWorkParallel(
			context.Background(),
			totalSize,
			func(numGroups int) { groups = numGroups },
			func(groupNum, groupSize, from, to int) (MemberWorkFunc, GroupWorkDoneFunc) {
				var local int64
				return func(memberNum, workNum int) {
						local += int64(workNum)
					}, func() {
						atomic.AddInt64(&sum, local)
					}
			},
		)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, groups, test.ShouldBeLessThanOrEqualTo, ParallelFactor)
		return sum
	}

	expected := func(n int) int64 { return int64(n) * int64(n-1) / 2 }

	test.That(t, sumWork(0), test.ShouldEqual, 0)
	test.That(t, sumWork(1), test.ShouldEqual, expected(1))
	// fewer items than workers
	test.That(t, sumWork(3), test.ShouldEqual, expected(3))
	// uneven split leaves the remainder with the last group
	test.That(t, sumWork(1001), test.ShouldEqual, expected(1001))
}

func TestRunInParallel(t *testing.T) {
	t.Run("all functions run", func(t *testing.T) {
		var count int64
		fs := make([]SimpleFunc, 10)
		for i := range fs {
			fs[i] = func(ctx context.Context) error {
				atomic.AddInt64(&count, 1)
				return nil
			}
		}
		_, err := RunInParallel(context.Background(), fs)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, count, test.ShouldEqual, 10)
	})

	t.Run("errors are combined and cancel the context", func(t *testing.T) {
		canceled := make(chan struct{})
		fs := []SimpleFunc{
			func(ctx context.Context) error {
				return errors.New("one bad worker")
			},
			func(ctx context.Context) error {
				<-ctx.Done()
				close(canceled)
				return ctx.Err()
			},
		}
		_, err := RunInParallel(context.Background(), fs)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "one bad worker")
		<-canceled
	})

	t.Run("panics surface as errors", func(t *testing.T) {
		fs := []SimpleFunc{
			func(ctx context.Context) error {
				panic("boom")
			},
		}
		_, err := RunInParallel(context.Background(), fs)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "panic")
	})
}
