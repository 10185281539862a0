// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command logicsim evaluates logic gates, adders and subtractors from the
// command line.
//
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Debugf("%+v", err)
		os.Exit(1)
	}
}
