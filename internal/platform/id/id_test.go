package id

import (
	"strings"
	"sync"
	"testing"
)

func TestSequenceIsOrderedAndUnique(t *testing.T) {
	t.Parallel()
	seq := NewSequence()
	first, second := seq.New(), seq.New()
	if first >= second {
		t.Fatalf("expected %s < %s", first, second)
	}
	if !strings.HasPrefix(second, strings.SplitN(first, "-", 2)[0]+"-") {
		t.Fatalf("ids from one sequence must share a prefix: %s %s", first, second)
	}

	seen := sync.Map{}
	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, dup := seen.LoadOrStore(seq.New(), struct{}{}); dup {
				t.Errorf("duplicate id")
			}
		}()
	}
	wg.Wait()
}
