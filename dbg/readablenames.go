package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary keys into random readable names. It leaks memory
// but generates the names lazily, so it's not a problem unless you're
// actually using it. The scene loader uses it to give shapes without an id
// something more memorable than an element index.

var (
	memoMu sync.Mutex
	memo   = make(map[interface{}]string)
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the readable name for key, the same one every time within a
// run. The key must be comparable. A nil key is named "Ø".
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
