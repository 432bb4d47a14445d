package statusline

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhuynh06/motion-indicator/internal/domain"
	"github.com/rhuynh06/motion-indicator/internal/ports"
)

func TestWriter_WriteLine(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteLine(domain.Banner))
	require.NoError(t, w.WriteLine(domain.TokenLeft))

	assert.Equal(t, "Started!\r\n1\r\n", buf.String())
}

// The indicator must not wait on a plain writer at startup
func TestWriter_NotReadier(t *testing.T) {
	var sink ports.StatusSink = NewWriter(&bytes.Buffer{})
	_, ok := sink.(ports.Readier)
	assert.False(t, ok)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("port gone") }

func TestWriter_WriteError(t *testing.T) {
	err := NewWriter(failingWriter{}).WriteLine("1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port gone")
}

func TestParse(t *testing.T) {
	tests := []struct {
		line    string
		want    domain.State
		wantErr error
	}{
		{line: "1", want: domain.StateLeft},
		{line: "2", want: domain.StateCenter},
		{line: "3", want: domain.StateRight},
		{line: "left", want: domain.StateLeft},
		{line: "right", want: domain.StateRight},
		{line: " 3\r", want: domain.StateRight},
		{line: "Started!", want: domain.StateIdle, wantErr: ErrBanner},
		{line: "4", want: domain.StateIdle, wantErr: ErrUnknownStatus},
		{line: "garbage", want: domain.StateIdle, wantErr: ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every token the classifier can emit must decode back to the same state
func TestParse_AgreesWithClassify(t *testing.T) {
	for _, v := range []domain.Variant{domain.VariantCenter, domain.VariantLeftFirst} {
		for _, r := range []domain.Reading{
			domain.NewReading(true, false),
			domain.NewReading(false, true),
			domain.NewReading(true, true),
		} {
			ind := domain.Classify(r, v)
			require.True(t, ind.HasStatus)

			var buf bytes.Buffer
			require.NoError(t, NewWriter(&buf).WriteLine(ind.Status))

			got, err := Parse(buf.String())
			require.NoError(t, err)
			assert.Equal(t, ind.State, got, "variant %v reading %+v", v, r)
		}
	}
}

func TestScanner(t *testing.T) {
	input := "Started!\r\n1\r\n\r\n3\r\n2\r\nnoise\r\nleft\n"
	sc := NewScanner(strings.NewReader(input))

	var events []Event
	for sc.Scan() {
		events = append(events, sc.Event())
	}
	require.NoError(t, sc.Err())
	require.Len(t, events, 6)

	assert.ErrorIs(t, events[0].Err, ErrBanner)
	assert.Equal(t, domain.StateLeft, events[1].State)
	assert.Equal(t, domain.StateRight, events[2].State)
	assert.Equal(t, domain.StateCenter, events[3].State)
	assert.ErrorIs(t, events[4].Err, ErrUnknownStatus)
	assert.Equal(t, "noise", events[4].Raw)
	assert.Equal(t, domain.StateLeft, events[5].State)
}
