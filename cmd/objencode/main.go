/* Build or explain APRS object and item packets */
package main

import (
	aprsobj "github.com/doismellburning/aprsobj/src"
)

func main() {
	aprsobj.ObjEncodeMain()
}
