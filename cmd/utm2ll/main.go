/* UTM to Latitude / Longitude conversion */
package main

import (
	aprsobj "github.com/doismellburning/aprsobj/src"
)

func main() {
	aprsobj.UTM2LLMain()
}
