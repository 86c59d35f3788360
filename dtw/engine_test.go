package dtw_test

import (
	"bytes"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/timewarp/dtw"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InitialResult(t *testing.T) {
	s1, s2 := mustSeq(t, signal1...), mustSeq(t, signal2...)
	eng, err := dtw.New(s1, s2)
	require.NoError(t, err)

	want, err := dtw.Compute(s1, s2, nil)
	require.NoError(t, err)
	assert.Equal(t, want, eng.Result())
	assert.Equal(t, want.Path, eng.WarpingPath())
	assert.Equal(t, want.Distance, eng.WarpingDistance())
	assert.False(t, eng.Stale())
	assert.Same(t, s1, eng.Sample())
	assert.Same(t, s2, eng.Template())
}

func TestNew_InvalidInputs(t *testing.T) {
	s := mustSeq(t, 1, 2, 3)
	vec, err := dtw.NewVectorSequence([][]float64{{1, 2}})
	require.NoError(t, err)

	cases := []struct {
		name     string
		sample   *dtw.Sequence
		template *dtw.Sequence
		cause    error
	}{
		{"nil sample", nil, s, dtw.ErrNilSequence},
		{"nil template", s, nil, dtw.ErrNilSequence},
		{"empty sample", &dtw.Sequence{}, s, dtw.ErrEmptySequence},
		{"empty template", s, &dtw.Sequence{}, dtw.ErrEmptySequence},
		{"dimension mismatch", s, vec, dtw.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eng, err := dtw.New(tc.sample, tc.template)
			require.Error(t, err)
			assert.Nil(t, eng)
			assert.ErrorIs(t, err, dtw.ErrNoResult)
			assert.ErrorIs(t, err, tc.cause)
		})
	}
}

func TestNew_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	_, err := dtw.New(nil, mustSeq(t, 1), dtw.WithLogger(zerolog.New(&buf)))
	require.ErrorIs(t, err, dtw.ErrNoResult)

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "no result, check input data")
}

// TestEngine_SetTemplateRecompute walks the s1/s2 → s1/s3 scenario.
func TestEngine_SetTemplateRecompute(t *testing.T) {
	s1, s3 := mustSeq(t, signal1...), mustSeq(t, signal3...)
	eng, err := dtw.New(s1, mustSeq(t, signal2...))
	require.NoError(t, err)

	require.NoError(t, eng.SetTemplate(s3, true))
	assert.False(t, eng.Stale())
	assert.Equal(t, dtw.Path{{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 3}, {5, 3}, {6, 3}, {7, 4}}, eng.WarpingPath())
	assert.InDelta(t, 3.312353625, eng.WarpingDistance(), 1e-9)

	fresh, err := dtw.New(s1, s3)
	require.NoError(t, err)
	assert.Equal(t, fresh.Result(), eng.Result())
}

func TestEngine_SetSampleRecompute(t *testing.T) {
	eng, err := dtw.New(mustSeq(t, signal1...), mustSeq(t, signal3...))
	require.NoError(t, err)

	require.NoError(t, eng.SetSample(mustSeq(t, signal2...), true))
	assert.Equal(t, dtw.Path{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {3, 4}}, eng.WarpingPath())
	assert.InDelta(t, 0.338, eng.WarpingDistance(), 1e-12)
}

// TestEngine_DeferredRecompute checks recompute=false leaves the result stale.
func TestEngine_DeferredRecompute(t *testing.T) {
	s1 := mustSeq(t, signal1...)
	eng, err := dtw.New(s1, mustSeq(t, signal2...))
	require.NoError(t, err)
	before := eng.Result()

	require.NoError(t, eng.SetTemplate(mustSeq(t, signal3...), false))
	assert.True(t, eng.Stale())
	assert.Equal(t, before, eng.Result())

	// Compute previews the new alignment without committing it.
	preview, err := eng.Compute()
	require.NoError(t, err)
	assert.InDelta(t, 3.312353625, preview.Distance, 1e-9)
	assert.Equal(t, before, eng.Result())

	require.NoError(t, eng.Recompute())
	assert.False(t, eng.Stale())
	assert.Equal(t, preview, eng.Result())
}

// TestEngine_FailedRecomputeKeepsResult checks that failures never tear the committed pair.
func TestEngine_FailedRecomputeKeepsResult(t *testing.T) {
	eng, err := dtw.New(mustSeq(t, signal1...), mustSeq(t, signal2...))
	require.NoError(t, err)
	before := eng.Result()

	err = eng.SetTemplate(&dtw.Sequence{}, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, dtw.ErrNoResult)
	assert.ErrorIs(t, err, dtw.ErrEmptySequence)
	assert.True(t, eng.Stale())
	assert.Equal(t, before, eng.Result())

	require.NoError(t, eng.SetTemplate(mustSeq(t, signal2...), false))
	err = eng.SetDistance(func(dtw.Element, dtw.Element) float64 { return -1 }, true)
	assert.ErrorIs(t, err, dtw.ErrNoResult)
	assert.ErrorIs(t, err, dtw.ErrInvalidCost)
	assert.True(t, eng.Stale())
	assert.Equal(t, before, eng.Result())

	// Restoring valid inputs clears the stale flag.
	require.NoError(t, eng.SetDistance(nil, true))
	assert.False(t, eng.Stale())
	assert.Equal(t, before, eng.Result())
}

func TestEngine_SetDistance(t *testing.T) {
	s1, s2 := mustSeq(t, signal1...), mustSeq(t, signal2...)
	eng, err := dtw.New(s1, s2)
	require.NoError(t, err)

	require.NoError(t, eng.SetDistance(dtw.AbsoluteDistance, true))
	want, err := dtw.Compute(s1, s2, dtw.AbsoluteDistance)
	require.NoError(t, err)
	assert.Equal(t, want, eng.Result())

	// A per-call override does not change the engine.
	sq, err := eng.ComputeWith(dtw.DistanceBetween)
	require.NoError(t, err)
	assert.InDelta(t, 2.220353625, sq.Distance, 1e-9)
	assert.Equal(t, want, eng.Result())
}

func TestEngine_WithDistanceOption(t *testing.T) {
	s1, s2 := mustSeq(t, signal1...), mustSeq(t, signal2...)
	eng, err := dtw.New(s1, s2, dtw.WithDistance(dtw.EuclideanDistance))
	require.NoError(t, err)

	want, err := dtw.Compute(s1, s2, dtw.EuclideanDistance)
	require.NoError(t, err)
	assert.Equal(t, want, eng.Result())
}

func TestEngine_WarpingPathIsACopy(t *testing.T) {
	eng, err := dtw.New(mustSeq(t, 1, 2, 3), mustSeq(t, 1, 2, 3))
	require.NoError(t, err)

	p := eng.WarpingPath()
	p[0] = dtw.Coord{I: 9, J: 9}
	assert.Equal(t, dtw.Coord{}, eng.WarpingPath()[0])
}

func TestEngine_String(t *testing.T) {
	eng, err := dtw.New(mustSeq(t, 3), mustSeq(t, 5))
	require.NoError(t, err)

	assert.Equal(t, "Warping Distance: 4\nWarping Path: (0,0)", eng.String())
}

// TestEngine_ConcurrentReaders races setters against readers; run with -race.
func TestEngine_ConcurrentReaders(t *testing.T) {
	s1 := mustSeq(t, signal1...)
	templates := []*dtw.Sequence{mustSeq(t, signal2...), mustSeq(t, signal3...)}
	eng, err := dtw.New(s1, templates[0])
	require.NoError(t, err)

	expected := make(map[float64]int, len(templates))
	for _, tpl := range templates {
		res, err := dtw.Compute(s1, tpl, nil)
		require.NoError(t, err)
		expected[res.Distance] = res.Path.Len()
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				_ = eng.SetTemplate(templates[(w+k)%2], true)
			}
		}(w)
	}

	errs := make(chan string, 200)
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				res := eng.Result()
				if n, ok := expected[res.Distance]; !ok || n != res.Path.Len() || math.IsNaN(res.Distance) {
					errs <- res.Path.String()
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for torn := range errs {
		t.Errorf("torn result observed: %s", torn)
	}
}
