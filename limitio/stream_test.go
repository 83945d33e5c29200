package limitio_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"testing"
	"time"

	"github.com/creativeprojects/mailwatch/limitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const burst = 1024 // 1KB of burst

func getRates() []float64 {
	return []float64{
		128 * 1024,  // 128KB/sec
		512 * 1024,  // 512KB/sec
		1024 * 1024, // 1MB/sec
	}
}

func getSources() []*bytes.Reader {
	return []*bytes.Reader{
		bytes.NewReader(bytes.Repeat([]byte{10}, 64*1024)),  // 64KB
		bytes.NewReader(bytes.Repeat([]byte{11}, 256*1024)), // 256KB
	}
}

func TestReadWithoutLimit(t *testing.T) {
	src := bytes.Repeat([]byte{42}, 64*1024)
	sio := limitio.NewReader(context.Background(), bytes.NewReader(src))
	buffer, err := io.ReadAll(sio)
	require.NoError(t, err)
	assert.Equal(t, src, buffer)
}

func TestZeroRateMeansNoLimit(t *testing.T) {
	src := bytes.Repeat([]byte{42}, 64*1024)
	sio := limitio.NewReader(context.Background(), bytes.NewReader(src))
	sio.SetRateLimit(0, burst)
	buffer, err := io.ReadAll(sio)
	require.NoError(t, err)
	assert.Equal(t, src, buffer)
}

func TestReadStopsWhenContextIsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := bytes.Repeat([]byte{42}, 64*1024)
	sio := limitio.NewReader(ctx, bytes.NewReader(src))
	sio.SetRateLimit(1024, burst) // 64 seconds to read it all

	buffer := make([]byte, burst)
	n, err := sio.Read(buffer)
	require.NoError(t, err)
	assert.Equal(t, burst, n)

	cancel()
	_, err = io.ReadAll(sio)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRead(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	for _, limit := range getRates() {
		for _, src := range getSources() {
			limit := limit
			data, err := io.ReadAll(src)
			require.NoError(t, err)
			t.Run(fmt.Sprintf("Read %s at %s/sec", iBytes(uint64(len(data))), iBytes(uint64(limit))), func(t *testing.T) {
				t.Parallel()
				sio := limitio.NewReader(context.Background(), bytes.NewReader(data))
				sio.SetRateLimit(limit, burst)
				start := time.Now()
				n, err := io.Copy(io.Discard, sio)
				elapsed := time.Since(start)
				require.NoError(t, err)
				assert.Equal(t, int64(len(data)), n)

				// the first burst is free
				expected := float64(n-burst) / limit
				assert.InDelta(t, expected, elapsed.Seconds(), expected*0.05+0.01)
				t.Logf(
					"read %s / %s: Limit %s/sec.",
					iBytes(uint64(n)),
					elapsed,
					iBytes(uint64(limit)),
				)
			})
		}
	}
}

func iBytes(s uint64) string {
	var base float64 = 1024
	sizes := []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

	if s < 10 {
		return fmt.Sprintf("%d B", s)
	}
	e := math.Floor(logn(float64(s), base))
	suffix := sizes[int(e)]
	val := math.Floor(float64(s)/math.Pow(base, e)*10+0.5) / 10
	f := "%.0f %s"
	if val < 10 {
		f = "%.1f %s"
	}

	return fmt.Sprintf(f, val, suffix)
}

func logn(n, b float64) float64 {
	return math.Log(n) / math.Log(b)
}
