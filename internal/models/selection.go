package models

import (
	"fmt"
	"strconv"
	"strings"
)

// StudySelection is the draft configuration of a study plan. The zero value
// is an empty draft; empty strings and a zero TopicCount mean "unset".
type StudySelection struct {
	TimeFrame   string `json:"timeFrame"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	TopicMode   string `json:"topicMode"`
	TopicCount  int    `json:"topicCount"`
	TopicsText  string `json:"topicsText"`
	CoursesText string `json:"coursesText"`
	Priority    string `json:"priority"`
}

// IsEmpty reports whether nothing has been configured yet.
func (s StudySelection) IsEmpty() bool {
	return s == StudySelection{}
}

// Summary derives a short human-readable title from the non-empty parts of
// the selection. It is pure: the same selection always yields the same string.
func (s StudySelection) Summary() string {
	var parts []string

	if s.TimeFrame != "" {
		parts = append(parts, s.TimeFrame)
	}

	if s.StartDate != "" || s.EndDate != "" {
		start, end := s.StartDate, s.EndDate
		if start == "" {
			start = "?"
		}
		if end == "" {
			end = "?"
		}
		parts = append(parts, start+" to "+end)
	}

	switch s.TopicMode {
	case TopicSingle:
		parts = append(parts, TopicSingle)
	case TopicMultiple:
		count := "?"
		if s.TopicCount > 0 {
			count = strconv.Itoa(s.TopicCount)
		}
		parts = append(parts, fmt.Sprintf("Multiple (%s)", count))
	}

	if s.Priority != "" {
		parts = append(parts, s.Priority)
	}

	if topics := shortTopics(s.TopicsText); topics != "" {
		parts = append(parts, "Topics: "+topics)
	}

	if len(parts) == 0 {
		return "Untitled study"
	}
	return strings.Join(parts, " | ")
}

// shortTopics keeps the first three comma-separated topics.
func shortTopics(text string) string {
	var topics []string
	for _, t := range strings.Split(text, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
		if len(topics) == 3 {
			break
		}
	}
	return strings.Join(topics, ", ")
}

// Validate checks the fields required before a plan can be saved.
// The first missing requirement wins.
func (s StudySelection) Validate() error {
	if s.TimeFrame == "" {
		return &IncompleteSelectionError{Missing: "pick a Study Time Frame"}
	}
	if s.TopicMode == "" {
		return &IncompleteSelectionError{Missing: "choose Single or Multiple topics"}
	}
	if s.TopicMode == TopicMultiple && s.TopicCount < 2 {
		return &IncompleteSelectionError{Missing: "enter a valid number for Multiple topics (2 or more)"}
	}
	if s.Priority == "" {
		return &IncompleteSelectionError{Missing: "pick a Priority Level"}
	}
	return nil
}
