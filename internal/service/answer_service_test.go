package service

import (
	"testing"

	"github.com/antikleya/USEHelper/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestComputeMark_SingleAnswer(t *testing.T) {
	question := &model.Question{Answer: "Paris", MaxMark: 1}

	assert.Equal(t, 1, ComputeMark(question, "Paris"))
	assert.Equal(t, 0, ComputeMark(question, "paris"), "单答案题大小写敏感")
	assert.Equal(t, 0, ComputeMark(question, "London"))
	assert.Equal(t, 0, ComputeMark(question, ""))
}

func TestComputeMark_MultiAnswer(t *testing.T) {
	tests := []struct {
		name        string
		answer      string
		givenAnswer string
		want        int
	}{
		{"全对", "A; B; C", "A; B; C", 3},
		{"部分正确", "A; B; C", "A; B", 2},
		{"全错", "A; B; C", "X; Y", 0},
		{"多答抵消全部得分", "A; B", "A; B; C; D", 0},
		{"多答一项", "A; B; C", "A; B; C; D", 2},
		{"顺序无关", "A; B; C", "C; A; B", 3},
		{"重复项只计一次", "A; B; C", "A; A; B", 2},
		{"空作答", "A; B; C", "", 0},
		{"分隔符必须带空格", "A; B; C", "A;B;C", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			question := &model.Question{Answer: tt.answer, MaxMark: 3}
			assert.Equal(t, tt.want, ComputeMark(question, tt.givenAnswer))
		})
	}
}

func TestComputeMark_NeverNegative(t *testing.T) {
	question := &model.Question{Answer: "A", MaxMark: 2}

	// 罚分超过交集得分时钳为 0
	mark := ComputeMark(question, "A; B; C; D; E; F")
	assert.Equal(t, 0, mark)
}

func TestComputeMark_Deterministic(t *testing.T) {
	question := &model.Question{Answer: "A; B; C", MaxMark: 3}

	first := ComputeMark(question, "A; C")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeMark(question, "A; C"))
	}
}
