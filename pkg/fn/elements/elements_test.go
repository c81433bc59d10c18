package elements

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fcomp/pkg/fn"
	"github.com/ib-77/fcomp/pkg/fn/compose"
)

var square = fn.Lift(func(v int) int { return v * v })

func failAt(bad int, seen *[]int) fn.Func[int, int] {
	return func(v int) (int, error) {
		*seen = append(*seen, v)
		if v == bad {
			return 0, errors.New("bad element " + strconv.Itoa(v))
		}
		return v, nil
	}
}

func TestApply_OrderPreserved(t *testing.T) {
	t.Parallel()

	in := []int{3, 1, 2}
	out, err := Apply(in, square)

	require.NoError(t, err)
	if diff := cmp.Diff([]int{9, 1, 4}, out); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{3, 1, 2}, in, "input must not be mutated")
}

func TestApply_ChangesType(t *testing.T) {
	t.Parallel()

	out, err := Apply([]int{1, 22, 333}, fn.Lift(strconv.Itoa))

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "22", "333"}, out)
}

func TestApply_EmptyAndNil(t *testing.T) {
	t.Parallel()

	out, err := Apply([]int{}, square)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out, err = Apply[int, int](nil, square)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestApply_FailFast(t *testing.T) {
	t.Parallel()

	var seen []int
	out, err := Apply([]int{1, 2, 3, 4}, failAt(2, &seen))

	require.Error(t, err)
	assert.Nil(t, out, "no partial output on failure")
	assert.Equal(t, []int{1, 2}, seen, "later elements must not be processed")

	var ee *ElementError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 1, ee.Index)
	assert.Equal(t, "element 1: bad element 2", err.Error())
}

func TestApply_NilFunc(t *testing.T) {
	t.Parallel()

	_, err := Apply([]int{1}, fn.Func[int, int](nil))
	assert.ErrorIs(t, err, fn.ErrNilFunc)
}

func TestPartial_Equivalence(t *testing.T) {
	t.Parallel()

	inputs := [][]int{nil, {}, {1}, {4, -2, 7}}
	p := Partial(square)

	for _, in := range inputs {
		want, wantErr := Apply(in, square)
		got, gotErr := p(in)
		assert.Equal(t, wantErr, gotErr)
		assert.Equal(t, want, got)
	}
}

func TestPartial_DelayedEvaluation(t *testing.T) {
	t.Parallel()

	var calls int32
	counting := fn.Func[int, int](func(v int) (int, error) {
		atomic.AddInt32(&calls, 1)
		return v, nil
	})

	p := Partial(counting)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	_, err := p([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestPartial_Composes(t *testing.T) {
	t.Parallel()

	sum := fn.Lift(func(l []int) int {
		total := 0
		for _, v := range l {
			total += v
		}
		return total
	})

	sumOfSquares := compose.Once(sum, Partial(square))
	out, err := sumOfSquares([]int{1, 2, 3})

	require.NoError(t, err)
	assert.Equal(t, 14, out)
}

func TestApplyConcurrent_IndexAligned(t *testing.T) {
	t.Parallel()

	ctx := WithWorkerOptions(context.Background(), 3)
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}

	out, err := ApplyConcurrent(ctx, in, square)

	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestApplyConcurrent_RespectsWorkerLimit(t *testing.T) {
	t.Parallel()

	ctx := WithWorkerOptions(context.Background(), 2)
	var running, peak int32

	slow := fn.Func[int, int](func(v int) (int, error) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return v, nil
	})

	_, err := ApplyConcurrent(ctx, []int{1, 2, 3, 4, 5, 6}, slow)

	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestApplyConcurrent_Failure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := fn.Func[int, int](func(v int) (int, error) {
		if v == 3 {
			return 0, boom
		}
		return v, nil
	})

	out, err := ApplyConcurrent(WithWorkerOptions(context.Background(), 1), []int{1, 2, 3, 4}, f)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, boom)

	var ee *ElementError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 2, ee.Index)
}

func TestApplyConcurrent_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := ApplyConcurrent(ctx, []int{1, 2, 3}, square)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetWorkerMaxCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 5, GetWorkerMaxCount(ctx, 5))
	assert.Equal(t, 2, GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 5))
}
