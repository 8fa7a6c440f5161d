package ioformat_test

import (
	"fmt"
	"strings"

	"github.com/kirollos21/mazeroute/ioformat"
)

// ExampleParse parses scenario S1's input line.
func ExampleParse() {
	sess, _ := ioformat.Parse(strings.NewReader("3,3,5,2\nnet1 (1,0,0) (1,2,0)\n"))
	fmt.Println(sess.Width, sess.Height, sess.ViaPenalty, sess.WrongPenalty, len(sess.Nets))
	// Output: 3 3 5 2 1
}
