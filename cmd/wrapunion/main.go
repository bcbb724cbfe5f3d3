// Command wrapunion is a linter that checks wrap/unwrap declaration consistency.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/wrapunion/wrapunion"
)

func main() {
	singlechecker.Main(wrapunion.Analyzer)
}
