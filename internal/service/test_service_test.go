package service

import (
	"testing"

	"github.com/antikleya/USEHelper/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSplitAmounts(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		themeCount int
		want       []int
	}{
		{"整除", 20, 4, []int{5, 5, 5, 5}},
		{"有余数时前面的主题多一题", 20, 3, []int{7, 7, 6}},
		{"单主题", 20, 1, []int{20}},
		{"主题数大于题数", 3, 5, []int{1, 1, 1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitAmounts(tt.total, tt.themeCount))
		})
	}
}

func TestSplitAmounts_Properties(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for themeCount := 1; themeCount <= 10; themeCount++ {
			amounts := splitAmounts(total, themeCount)

			sum, minA, maxA := 0, amounts[0], amounts[0]
			for _, a := range amounts {
				sum += a
				if a < minA {
					minA = a
				}
				if a > maxA {
					maxA = a
				}
			}

			assert.Equal(t, total, sum, "total=%d themeCount=%d", total, themeCount)
			assert.LessOrEqual(t, maxA-minA, 1, "total=%d themeCount=%d", total, themeCount)
		}
	}
}

func makePool(n int) []model.Question {
	pool := make([]model.Question, n)
	for i := range pool {
		pool[i].ID = uint(i + 1)
	}
	return pool
}

func TestSampleQuestions(t *testing.T) {
	pool := makePool(10)

	sampled := sampleQuestions(pool, 4)
	assert.Len(t, sampled, 4)

	// 无放回：不会出现重复题目
	seen := make(map[uint]bool)
	for _, q := range sampled {
		assert.False(t, seen[q.ID], "question %d sampled twice", q.ID)
		seen[q.ID] = true
	}
}

func TestSampleQuestions_PoolSmallerThanAmount(t *testing.T) {
	pool := makePool(3)

	sampled := sampleQuestions(pool, 7)
	assert.Len(t, sampled, 3)
}

func TestSampleQuestions_EmptyPool(t *testing.T) {
	sampled := sampleQuestions(nil, 5)
	assert.Empty(t, sampled)
}

func TestSampleQuestions_DoesNotMutatePool(t *testing.T) {
	pool := makePool(10)

	sampleQuestions(pool, 5)
	for i, q := range pool {
		assert.Equal(t, uint(i+1), q.ID)
	}
}
