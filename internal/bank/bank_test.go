package bank

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func q(id int, category string, correct int) Question {
	return Question{
		ID:           id,
		Category:     category,
		Prompt:       "prompt",
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: correct,
	}
}

func TestLoad_EmbeddedBankPasses(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 39, b.Len())
	assert.Equal(t, []string{
		"Traffic Laws & Rules of the Road",
		"Road Signs & Traffic Signals",
		"Traffic Lights & Signals",
		"Alcohol & Drug Awareness",
		"Driver Safety & Vehicle Operation",
		"Pedestrian & Special Situations",
		"Fines & Penalties",
	}, b.Categories())
}

func TestMustLoad_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { MustLoad() })
}

func TestByCategory_FirstSeenNaturalOrder(t *testing.T) {
	b, err := New([]Question{
		q(10, "A", 0),
		q(20, "B", 1),
		q(11, "A", 2),
		q(21, "B", 3),
		q(12, "A", 0),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, b.Categories())

	groups := b.ByCategory()
	require.Len(t, groups, 2)

	var idsA []int
	for _, e := range groups["A"] {
		idsA = append(idsA, e.ID)
		assert.Equal(t, e.ID, e.Question.ID)
		assert.Equal(t, "A", e.Question.Category)
	}
	assert.Equal(t, []int{10, 11, 12}, idsA)
	assert.Len(t, groups["B"], 2)
	assert.Equal(t, []int{20, 21}, b.CategoryIDs("B"))
}

func TestBank_AccessorsReturnCopies(t *testing.T) {
	b, err := New([]Question{q(1, "A", 0), q(2, "A", 1)})
	require.NoError(t, err)

	got, ok := b.Question(1)
	require.True(t, ok)
	got.Options[0] = "mutated"

	again, _ := b.Question(1)
	assert.Equal(t, "a", again.Options[0])

	cats := b.Categories()
	cats[0] = "mutated"
	assert.Equal(t, []string{"A"}, b.Categories())

	idx := b.CategoryIndex()
	idx["A"][0] = 99
	assert.Equal(t, []int{1, 2}, b.CategoryIDs("A"))

	_, ok = b.Question(404)
	assert.False(t, ok)
	assert.True(t, b.HasCategory("A"))
	assert.False(t, b.HasCategory("Z"))
}

func TestNew_DetectsDuplicateID(t *testing.T) {
	_, err := New([]Question{q(1, "A", 0), q(1, "B", 0)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNew_DetectsCorrectIndexOutOfRange(t *testing.T) {
	bad := q(1, "A", 4)
	_, err := New([]Question{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "correct index 4")

	short := Question{ID: 2, Category: "A", Prompt: "p", Options: []string{"x", "y"}, CorrectIndex: 3}
	_, err = New([]Question{short})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range for 2 options")
}

func TestNew_DetectsTooFewOptions(t *testing.T) {
	one := Question{ID: 1, Category: "A", Prompt: "p", Options: []string{"only"}, CorrectIndex: 0}
	_, err := New([]Question{one})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 options")
}

func TestNew_ReportsAllProblems(t *testing.T) {
	_, err := New([]Question{
		{ID: 1, Category: "", Prompt: "", Options: []string{"x"}, CorrectIndex: -1},
		q(1, "A", 0),
	})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.GreaterOrEqual(t, len(verr.Problems), 5)
}

func TestNew_EmptyBank(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no questions")
}

func TestParse_SchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"questions": [`},
		{"missing questions", `{"version": 1}`},
		{"unknown field", `{"questions": [{"id": 1, "category": "A", "question": "p", "options": ["a", "b"], "correct": 0, "extra": true}]}`},
		{"correct above 3", `{"questions": [{"id": 1, "category": "A", "question": "p", "options": ["a", "b", "c", "d"], "correct": 7}]}`},
		{"one option", `{"questions": [{"id": 1, "category": "A", "question": "p", "options": ["a"], "correct": 0}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)

			var serr *SchemaError
			assert.True(t, errors.As(err, &serr))
		})
	}
}

func TestParse_SemanticViolationAfterSchema(t *testing.T) {
	raw := `{"questions": [
		{"id": 1, "category": "A", "question": "p", "options": ["a", "b"], "correct": 0},
		{"id": 1, "category": "A", "question": "p", "options": ["a", "b"], "correct": 1}
	]}`
	_, err := Parse([]byte(raw))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "duplicate question ID: 1")
}

func TestParse_Valid(t *testing.T) {
	raw := `{"version": 1, "questions": [
		{"id": 7, "category": "Signs", "question": "Octagon?", "options": ["Yield", "Stop"], "correct": 1, "explanation": "Stop sign."}
	]}`
	b, err := Parse([]byte(raw))
	require.NoError(t, err)

	got, ok := b.Question(7)
	require.True(t, ok)
	assert.Equal(t, "Octagon?", got.Prompt)
	assert.True(t, got.IsCorrect(1))
	assert.False(t, got.IsCorrect(0))
	assert.Equal(t, "Stop sign.", got.Explanation)
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "A", OptionLabel(0))
	assert.Equal(t, "D", OptionLabel(3))
	assert.Equal(t, "?", OptionLabel(-1))
}
