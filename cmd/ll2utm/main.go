/* Latitude / Longitude to UTM conversion */
package main

import (
	aprsobj "github.com/doismellburning/aprsobj/src"
)

func main() {
	aprsobj.LL2UTMMain()
}
