package verdict

import (
	"reflect"
	"testing"
)

func TestParseModeration(t *testing.T) {
	def := Moderation{Approved: true, Reason: "Content approved"}

	tests := []struct {
		name string
		raw  string
		want Moderation
	}{
		{
			name: "approved with reason",
			raw:  "APPROVED: true\nREASON: xyz",
			want: Moderation{Approved: true, Reason: "xyz"},
		},
		{
			name: "rejected",
			raw:  "APPROVED: false\nREASON: contains profanity",
			want: Moderation{Approved: false, Reason: "contains profanity"},
		},
		{
			name: "no markers keeps defaults",
			raw:  "I cannot help with that request.",
			want: def,
		},
		{
			name: "marker matched mid-line",
			raw:  "Here is my verdict. APPROVED: true\nand REASON: looks fine",
			want: Moderation{Approved: true, Reason: "looks fine"},
		},
		{
			name: "lowercase markers",
			raw:  "approved: true\nreason: ok",
			want: Moderation{Approved: true, Reason: "ok"},
		},
		{
			name: "garbled boolean is false",
			raw:  "APPROVED: yes\nREASON: sure",
			want: Moderation{Approved: false, Reason: "sure"},
		},
		{
			name: "true substring anywhere after marker",
			raw:  "APPROVED: the answer is true I think",
			want: Moderation{Approved: true, Reason: "Content approved"},
		},
		{
			name: "last write wins",
			raw:  "APPROVED: true\nAPPROVED: false\nREASON: first\nREASON: second",
			want: Moderation{Approved: false, Reason: "second"},
		},
		{
			name: "empty reply keeps defaults",
			raw:  "",
			want: def,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseModeration(tt.raw, def)
			if got != tt.want {
				t.Errorf("ParseModeration(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseClaimReviewConfidence(t *testing.T) {
	def := ClaimReview{Approved: false, Confidence: 0, Reason: "Unable to verify claim"}

	tests := []struct {
		raw  string
		want int
	}{
		{"CONFIDENCE: 85%", 85},
		{"CONFIDENCE: abc", 0},
		{"CONFIDENCE: 123456", 123},
		{"CONFIDENCE: 0", 0},
		{"CONFIDENCE:100", 100},
		{"CONFIDENCE: about 7 out of 10", 710}, // digits are collected, not ranges
		{"no confidence line", 0},
	}
	for _, tt := range tests {
		got := ParseClaimReview(tt.raw, def)
		if got.Confidence != tt.want {
			t.Errorf("ParseClaimReview(%q).Confidence = %d, want %d", tt.raw, got.Confidence, tt.want)
		}
	}
}

func TestParseClaimReviewFull(t *testing.T) {
	def := ClaimReview{Reason: "Unable to verify claim"}
	got := ParseClaimReview("APPROVED: true\nCONFIDENCE: 92\nREASON: details match the listing", def)
	want := ClaimReview{Approved: true, Confidence: 92, Reason: "details match the listing"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseValue(t *testing.T) {
	def := Value{HighValue: false, Reason: "Item evaluated"}

	got := ParseValue("HIGH_VALUE: true\nREASON: electronics", def)
	if !got.HighValue || got.Reason != "electronics" {
		t.Errorf("got %+v", got)
	}

	got = ParseValue("nothing useful here", def)
	if got != def {
		t.Errorf("expected defaults, got %+v", got)
	}
}

func TestParseSearch(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		query string
		want  Search
	}{
		{
			name:  "corrected and matches",
			raw:   "CORRECTED: bottle\nMATCHES: id1, id2 ,id3",
			query: "botle",
			want:  Search{Corrected: "bottle", MatchIDs: []string{"id1", "id2", "id3"}},
		},
		{
			name:  "none means empty",
			raw:   "CORRECTED: bottle\nMATCHES: none",
			query: "botle",
			want:  Search{Corrected: "bottle"},
		},
		{
			name:  "no markers keeps query",
			raw:   "I could not find anything.",
			query: "hoodie",
			want:  Search{Corrected: "hoodie"},
		},
		{
			name:  "markers must start the line",
			raw:   "The CORRECTED: thing\nwell MATCHES: id1",
			query: "hoodie",
			want:  Search{Corrected: "hoodie"},
		},
		{
			name:  "empty tokens dropped",
			raw:   "MATCHES: id1,,  ,id2",
			query: "q",
			want:  Search{Corrected: "q", MatchIDs: []string{"id1", "id2"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSearch(tt.raw, tt.query)
			if got.Corrected != tt.want.Corrected || !reflect.DeepEqual(got.MatchIDs, tt.want.MatchIDs) {
				t.Errorf("ParseSearch(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}
