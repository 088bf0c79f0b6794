package fakers

import (
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededSequencesRepeat(t *testing.T) {
	a, b := New(42), New(42)

	assert.Equal(t, a.LastName(), b.LastName())
	assert.Equal(t, a.Sentence(), b.Sentence())
	assert.Equal(t, a.Integer(), b.Integer())
}

func TestEmail(t *testing.T) {
	f := New(1)

	first, second := f.Email(), f.Email()
	assert.NotEqual(t, first, second)
	assert.Contains(t, first, "@")

	custom := f.Email("example.com")
	assert.True(t, strings.HasSuffix(custom, "@example.com"), custom)
}

func TestRanges(t *testing.T) {
	f := New(7)

	for i := 0; i < 200; i++ {
		maxScore := f.MaxScore()
		assert.GreaterOrEqual(t, maxScore, 50)
		assert.LessOrEqual(t, maxScore, 100)

		minScore := f.MinScore()
		assert.GreaterOrEqual(t, minScore, 1)
		assert.LessOrEqual(t, minScore, 30)

		n := f.Integer(5, 6)
		assert.Contains(t, []int{5, 6}, n)
	}
}

func TestEstimatedTime(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^\d+ weeks$`), New(3).EstimatedTime())
}

func TestUUIDAndPassword(t *testing.T) {
	f := New(9)

	_, err := uuid.Parse(f.UUID())
	require.NoError(t, err)
	assert.Len(t, f.Password(), 12)
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = Default.Email()
				_ = Default.Text()
			}
		}()
	}
	wg.Wait()
}
