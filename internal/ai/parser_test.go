package ai

import "testing"

func TestParseReply(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		answer   string
		followUp string
	}{
		{
			name:     "labeled answer and follow-up",
			raw:      "Answer: A\nFollow-up Question: B",
			answer:   "A",
			followUp: "B",
		},
		{
			name:     "no marker",
			raw:      "A only",
			answer:   "A only",
			followUp: "",
		},
		{
			name:     "empty input",
			raw:      "",
			answer:   "",
			followUp: "",
		},
		{
			name:     "missing answer label",
			raw:      "plain text\nFollow-up Question: next?",
			answer:   "plain text",
			followUp: "next?",
		},
		{
			name:     "splits on first marker only",
			raw:      "Answer: A\nFollow-up Question: B\nFollow-up Question: C",
			answer:   "A",
			followUp: "B\nFollow-up Question: C",
		},
		{
			name:     "marker is case sensitive",
			raw:      "Answer: A\nfollow-up question: B",
			answer:   "Answer: A\nfollow-up question: B",
			followUp: "",
		},
		{
			name:     "marker at start",
			raw:      "Follow-up Question: B",
			answer:   "",
			followUp: "B",
		},
		{
			name:     "whitespace around segments",
			raw:      "Answer:   spaced answer  \n Follow-up Question:  spaced question \n",
			answer:   "spaced answer",
			followUp: "spaced question",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseReply(tc.raw)
			if got.Answer != tc.answer {
				t.Fatalf("answer: got %q want %q", got.Answer, tc.answer)
			}
			if got.FollowUp != tc.followUp {
				t.Fatalf("follow-up: got %q want %q", got.FollowUp, tc.followUp)
			}
		})
	}
}
