package main

import (
	"os"
	"testing"

	aprsobj "github.com/doismellburning/aprsobj/src"
)

func Test_main_version(t *testing.T) {
	var oldArgs = os.Args
	defer func() {
		os.Args = oldArgs
	}()

	os.Args = []string{"objectd", "--version"}

	aprsobj.AssertOutputContains(t, main, "objectd - Version ")
}
