/* Keep APRS objects and items on the air */
package main

import (
	"os"

	aprsobj "github.com/doismellburning/aprsobj/src"
)

func main() {
	if err := aprsobj.ObjectdMain(); err != nil {
		os.Exit(1)
	}
}
