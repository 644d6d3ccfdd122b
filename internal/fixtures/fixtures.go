// Package fixtures makes random test sequences.
package fixtures

import (
	"sync"

	"github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
)

// randomdata shares a single unguarded source
var mutex sync.Mutex

// Word returns a random human readable word.
func Word() string {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.SillyName()
}

// Words returns n random words.
func Words(n int) []string {
	var ws = make([]string, 0, n)
	for i := 0; i < n; i++ {
		ws = append(ws, Word())
	}
	return ws
}

// Token returns a unique string, for values that must not repeat in a sequence.
func Token() string {
	return uuid.NewV4().String()
}

// Tokens returns n unique strings.
func Tokens(n int) []string {
	var ts = make([]string, 0, n)
	for i := 0; i < n; i++ {
		ts = append(ts, Token())
	}
	return ts
}

// Ints returns n random integers in [0, max).
func Ints(n, max int) []int {
	mutex.Lock()
	defer mutex.Unlock()
	var is = make([]int, 0, n)
	for i := 0; i < n; i++ {
		is = append(is, randomdata.Number(max))
	}
	return is
}

// IntBetween returns a random integer in [min, max].
func IntBetween(min, max int) int {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Number(min, max+1)
}
