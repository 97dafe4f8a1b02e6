package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name string
		sel  StudySelection
		want string
	}{
		{
			name: "empty selection",
			sel:  StudySelection{},
			want: "Untitled study",
		},
		{
			name: "typical single-topic plan",
			sel: StudySelection{
				TimeFrame: TimeFrame1Week,
				TopicMode: TopicSingle,
				Priority:  Priority1,
			},
			want: "1 Week | Single | Priority 1",
		},
		{
			name: "multiple topics with count",
			sel: StudySelection{
				TimeFrame:  TimeFrame1Month,
				TopicMode:  TopicMultiple,
				TopicCount: 4,
				Priority:   Priority2,
			},
			want: "1 Month | Multiple (4) | Priority 2",
		},
		{
			name: "multiple topics without count",
			sel:  StudySelection{TopicMode: TopicMultiple},
			want: "Multiple (?)",
		},
		{
			name: "date range both set",
			sel: StudySelection{
				TimeFrame: TimeFrame1Day,
				StartDate: "01/09/2026",
				EndDate:   "02/09/2026",
			},
			want: "1 Day | 01/09/2026 to 02/09/2026",
		},
		{
			name: "missing end date filled with question mark",
			sel:  StudySelection{StartDate: "01/09/2026"},
			want: "01/09/2026 to ?",
		},
		{
			name: "missing start date filled with question mark",
			sel:  StudySelection{EndDate: "02/09/2026"},
			want: "? to 02/09/2026",
		},
		{
			name: "topics trimmed and capped at three",
			sel: StudySelection{
				TimeFrame:  TimeFrame1Week,
				TopicsText: " algebra , calculus,, geometry, trig ",
			},
			want: "1 Week | Topics: algebra, calculus, geometry",
		},
		{
			name: "topics text of only separators ignored",
			sel:  StudySelection{TimeFrame: TimeFrame1Day, TopicsText: " , , "},
			want: "1 Day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.Summary())
		})
	}
}

func TestSummaryIsDeterministic(t *testing.T) {
	sel := StudySelection{
		TimeFrame:  TimeFrame1Week,
		TopicMode:  TopicMultiple,
		TopicCount: 3,
		TopicsText: "a,b,c,d",
		Priority:   Priority3,
	}
	first := sel.Summary()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, sel.Summary())
	}
}

func TestValidateOrder(t *testing.T) {
	requireMissing := func(t *testing.T, err error, want string) {
		t.Helper()
		var incomplete *IncompleteSelectionError
		require.ErrorAs(t, err, &incomplete)
		assert.Contains(t, incomplete.Missing, want)
	}

	requireMissing(t, StudySelection{}.Validate(), "Time Frame")
	requireMissing(t, StudySelection{TimeFrame: TimeFrame1Day}.Validate(), "Single or Multiple")
	requireMissing(t, StudySelection{
		TimeFrame: TimeFrame1Day,
		TopicMode: TopicMultiple,
	}.Validate(), "2 or more")
	requireMissing(t, StudySelection{
		TimeFrame:  TimeFrame1Day,
		TopicMode:  TopicMultiple,
		TopicCount: 1,
	}.Validate(), "2 or more")
	requireMissing(t, StudySelection{
		TimeFrame: TimeFrame1Day,
		TopicMode: TopicSingle,
	}.Validate(), "Priority")

	assert.NoError(t, StudySelection{
		TimeFrame: TimeFrame1Day,
		TopicMode: TopicSingle,
		Priority:  Priority1,
	}.Validate())
	assert.NoError(t, StudySelection{
		TimeFrame:  TimeFrame1Week,
		TopicMode:  TopicMultiple,
		TopicCount: 2,
		Priority:   Priority2,
	}.Validate())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, StudySelection{}.IsEmpty())
	assert.False(t, StudySelection{TimeFrame: TimeFrame1Day}.IsEmpty())
}

func TestCompleted(t *testing.T) {
	assert.False(t, SavedStudy{}.Completed())
	assert.False(t, SavedStudy{DurationSeconds: 10}.Completed(), "plans have no end time")
	assert.False(t, SavedStudy{EndedAt: 1}.Completed())
	assert.True(t, SavedStudy{DurationSeconds: 10, EndedAt: 1}.Completed())
}
