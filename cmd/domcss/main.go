/*
Command domcss reads and writes CSS properties of elements in HTML files.

	domcss get page.html '#main p' font-size width
	domcss set page.html '#main p' width=120 opacity=.5 > out.html
	domcss tree page.html display font-size

Configuration is read from a YAML file (default `.domcss.yaml`), from
environment variables with prefix `DOMCSS_` and from command line flags,
later sources overriding earlier ones. Example:

	stylesheets:
	  - base.css
	detach: false
	tracelevel:
	  root: Error
	  domcss:
	    css: Debug

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "domcss: %v\n", err)
		os.Exit(1)
	}
}
