package corpus

import (
	"errors"
	"testing"

	"github.com/dadaromeo/bayes-dap/internal/filter"
	"github.com/dadaromeo/bayes-dap/internal/normalize"
	"github.com/dadaromeo/bayes-dap/internal/tokenize"
)

// newTestCorpus wires the standard pipeline around the given documents:
// French normalization, tweet tokenization, and the built-in exclusion
// sources.
func newTestCorpus(t *testing.T, docs []string) *Corpus {
	t.Helper()
	set, err := filter.NewSetBuilder().
		AddLanguage("french").
		AddPunctuation().
		AddEmoticons().
		ScanEmoji(docs).
		Build()
	if err != nil {
		t.Fatalf("building exclusion set: %v", err)
	}
	return New(docs, normalize.Normalize, tokenize.NewTweetTokenizer(), set)
}

// collect materializes one full pass over Vectors.
func collect(c *Corpus) map[int]Vector {
	out := make(map[int]Vector)
	for i, vec := range c.Vectors() {
		out[i] = vec
	}
	return out
}

func TestVocabularyIDs(t *testing.T) {
	voc := NewVocabulary()

	first, err := voc.ID("chat")
	if err != nil {
		t.Fatalf("ID() error = %v", err)
	}
	if first != 0 {
		t.Errorf("first id = %d, want 0", first)
	}

	second, _ := voc.ID("dort")
	if second != 1 {
		t.Errorf("second id = %d, want 1", second)
	}

	again, _ := voc.ID("chat")
	if again != first {
		t.Errorf("repeated ID(%q) = %d, want %d", "chat", again, first)
	}

	if voc.Size() != 2 {
		t.Errorf("Size() = %d, want 2", voc.Size())
	}

	word, ok := voc.Token(1)
	if !ok || word != "dort" {
		t.Errorf("Token(1) = %q, %v, want %q, true", word, ok, "dort")
	}
	if _, ok := voc.Token(5); ok {
		t.Error("Token(5) ok = true, want false for out-of-range id")
	}
}

func TestVocabularyInvalidToken(t *testing.T) {
	voc := NewVocabulary()
	for _, token := range []string{"", "   ", "\t"} {
		if _, err := voc.ID(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ID(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestCorpusVectors(t *testing.T) {
	docs := []string{
		"Le chat dort",
		"Un chat miaule et le chat dort",
	}
	c := newTestCorpus(t, docs)

	if c.VocabularySize() != 0 {
		t.Errorf("VocabularySize() before iteration = %d, want 0", c.VocabularySize())
	}

	vectors := collect(c)

	// surviving tokens: d0 = [chat dort], d1 = [chat miaule chat dort]
	want := map[int]Vector{
		0: {{ID: 0, Count: 1}, {ID: 1, Count: 1}},
		1: {{ID: 0, Count: 2}, {ID: 2, Count: 1}, {ID: 1, Count: 1}},
	}
	if len(vectors) != len(want) {
		t.Fatalf("got %d vectors, want %d", len(vectors), len(want))
	}
	for i, wv := range want {
		gv := vectors[i]
		if len(gv) != len(wv) {
			t.Fatalf("vector %d = %v, want %v", i, gv, wv)
		}
		for j := range wv {
			if gv[j] != wv[j] {
				t.Errorf("vector %d entry %d = %v, want %v", i, j, gv[j], wv[j])
			}
		}
	}

	if c.DocumentCount() != 2 {
		t.Errorf("DocumentCount() = %d, want 2", c.DocumentCount())
	}
	if c.VocabularySize() != 3 {
		t.Errorf("VocabularySize() = %d, want 3", c.VocabularySize())
	}
}

// The count sum of each vector must equal the number of tokens that
// survived the filter for that document.
func TestVectorCountSum(t *testing.T) {
	docs := []string{
		"@user la belle finale de #TheVoice est superbe :)",
		"belle voix belle émotion belle soirée",
		"https://t.co/abc",
	}
	c := newTestCorpus(t, docs)

	wantSums := map[int]int{
		0: 3, // belle finale superbe
		1: 6, // belle voix belle émotion belle soirée
		2: 0,
	}
	for i, vec := range c.Vectors() {
		sum := 0
		for _, e := range vec {
			sum += e.Count
		}
		if sum != wantSums[i] {
			t.Errorf("document %d count sum = %d, want %d", i, sum, wantSums[i])
		}
	}
}

func TestEmptyDocumentYieldsEmptyVector(t *testing.T) {
	docs := []string{"https://t.co/abc 😀", "superbe soirée"}
	c := newTestCorpus(t, docs)

	vectors := collect(c)
	if len(vectors[0]) != 0 {
		t.Errorf("vector 0 = %v, want empty", vectors[0])
	}
	if c.DocumentCount() != 2 {
		t.Errorf("DocumentCount() = %d, want 2", c.DocumentCount())
	}
	if len(c.Errs()) != 0 {
		t.Errorf("Errs() = %v, want none", c.Errs())
	}
}

// Processing the same document sequence from fresh corpora must assign
// identical token ids; ids are dense and first-seen ordered.
func TestDeterministicIDAssignment(t *testing.T) {
	docs := []string{
		"la voix de la finale",
		"finale superbe ce soir",
		"la voix revient demain soir",
	}

	a := newTestCorpus(t, docs)
	b := newTestCorpus(t, docs)
	collect(a)
	collect(b)

	if a.VocabularySize() != b.VocabularySize() {
		t.Fatalf("vocabulary sizes differ: %d vs %d", a.VocabularySize(), b.VocabularySize())
	}
	for id := 0; id < a.VocabularySize(); id++ {
		at, _ := a.Vocabulary().Token(id)
		bt, _ := b.Vocabulary().Token(id)
		if at != bt {
			t.Errorf("id %d maps to %q and %q", id, at, bt)
		}
	}
}

func TestSharedTokenSharesID(t *testing.T) {
	docs := []string{"belle finale", "finale superbe"}
	c := newTestCorpus(t, docs)
	vectors := collect(c)

	// "finale" appears in both documents; find its id in each vector
	id0 := vectors[0][1].ID
	id1 := vectors[1][0].ID
	if id0 != id1 {
		t.Errorf("shared token ids differ: %d vs %d", id0, id1)
	}
}

func TestDocumentFrequency(t *testing.T) {
	docs := []string{
		"finale finale finale",
		"belle finale",
		"belle soirée",
	}
	c := newTestCorpus(t, docs)
	collect(c)

	tests := []struct {
		token string
		want  int
	}{
		{token: "finale", want: 2}, // repeats within a document count once
		{token: "belle", want: 2},
		{token: "soirée", want: 1},
		{token: "absent", want: 0},
	}
	for _, tt := range tests {
		if got := c.Vocabulary().DocFrequency(tt.token); got != tt.want {
			t.Errorf("DocFrequency(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}

// Re-iterating Vectors must not reassign ids or change vector content.
func TestVectorsRestartable(t *testing.T) {
	docs := []string{"la voix superbe", "belle voix"}
	c := newTestCorpus(t, docs)

	first := collect(c)
	sizeAfterFirst := c.VocabularySize()
	second := collect(c)

	if c.VocabularySize() != sizeAfterFirst {
		t.Errorf("VocabularySize() after re-iteration = %d, want %d", c.VocabularySize(), sizeAfterFirst)
	}
	for i := range first {
		if len(first[i]) != len(second[i]) {
			t.Fatalf("vector %d changed across iterations: %v vs %v", i, first[i], second[i])
		}
		for j := range first[i] {
			if first[i][j] != second[i][j] {
				t.Errorf("vector %d entry %d changed: %v vs %v", i, j, first[i][j], second[i][j])
			}
		}
	}
}

func TestWithTermFilters(t *testing.T) {
	docs := []string{"running jumps", "running fast"}
	set, err := filter.NewSetBuilder().AddLanguage("english").Build()
	if err != nil {
		t.Fatalf("building exclusion set: %v", err)
	}
	c := New(docs, normalize.Normalize, tokenize.NewTweetTokenizer(), set,
		WithTermFilters(filter.Stem("english")))
	collect(c)

	if got := c.Vocabulary().DocFrequency("run"); got != 2 {
		t.Errorf("DocFrequency(%q) = %d, want 2", "run", got)
	}
	if got := c.Vocabulary().DocFrequency("running"); got != 0 {
		t.Errorf("DocFrequency(%q) = %d, want 0", "running", got)
	}
}
